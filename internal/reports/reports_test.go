package reports

import (
	"testing"
	"time"

	"github.com/diewo77/factures/internal/models"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestByProduct(t *testing.T) {
	sales := []models.Sale{
		{Date: day(1), Product: "A", Amount: 100},
		{Date: day(2), Product: "B", Amount: 50},
		{Date: day(3), Product: "A", Amount: 30},
	}
	totals := ByProduct(sales)
	want := []ProductTotal{{"A", 130}, {"B", 50}}
	if len(totals) != len(want) {
		t.Fatalf("got %d groups, want %d", len(totals), len(want))
	}
	for i := range want {
		if totals[i] != want[i] {
			t.Errorf("group %d = %+v, want %+v", i, totals[i], want[i])
		}
	}
}

func TestByProductOrdering(t *testing.T) {
	sales := []models.Sale{
		{Date: day(1), Product: "Zèbre", Amount: 10},
		{Date: day(1), Product: "Ananas", Amount: 10},
		{Date: day(1), Product: "Mangue", Amount: 70},
	}
	totals := ByProduct(sales)
	// Largest total first, ties broken by product name.
	want := []string{"Mangue", "Ananas", "Zèbre"}
	for i, product := range want {
		if totals[i].Product != product {
			t.Errorf("position %d = %s, want %s", i, totals[i].Product, product)
		}
	}
}

func TestByProductEmpty(t *testing.T) {
	if got := ByProduct(nil); len(got) != 0 {
		t.Errorf("expected no groups, got %+v", got)
	}
}

func TestByProductOverTime(t *testing.T) {
	sales := []models.Sale{
		{Date: day(1), Product: "A", Amount: 100},
		{Date: day(2), Product: "B", Amount: 50},
	}
	points := ByProductOverTime(sales)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Date != "2026-03-01" || points[1].Date != "2026-03-02" {
		t.Errorf("dates not normalized: %+v", points)
	}
	if points[0].Product != "A" || points[0].Amount != 100 {
		t.Errorf("point 0 = %+v", points[0])
	}
}
