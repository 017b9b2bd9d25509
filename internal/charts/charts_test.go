package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/diewo77/factures/internal/reports"
)

func TestRenderSalesPage(t *testing.T) {
	totals := []reports.ProductTotal{
		{Product: "Savon", Amount: 130},
		{Product: "Huile", Amount: 50},
	}
	points := []reports.Point{
		{Date: "2026-03-01", Product: "Savon", Amount: 100},
		{Date: "2026-03-02", Product: "Huile", Amount: 50},
		{Date: "2026-03-03", Product: "Savon", Amount: 30},
	}

	var buf bytes.Buffer
	if err := RenderSalesPage(&buf, totals, points); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"Savon", "Huile", "2026-03-01", "Répartition des ventes par produit", "Évolution des ventes par produit"} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestSalesByProductPreservesOrder(t *testing.T) {
	totals := []reports.ProductTotal{
		{Product: "Mangue", Amount: 70},
		{Product: "Ananas", Amount: 10},
	}
	bar := SalesByProduct(totals)
	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	if strings.Index(html, "Mangue") > strings.Index(html, "Ananas") {
		t.Error("bar chart must keep the aggregator's largest-first order")
	}
}
