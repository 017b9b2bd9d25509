package billing

import (
	"fmt"

	"github.com/diewo77/factures/internal/models"
)

// Fixed tax rates applied to every invoice in this domain.
const (
	RateTVA = 0.18
	RateCSS = 0.01
)

// Totals carries the aggregate amounts of an invoice.
type Totals struct {
	HT  float64
	TVA float64
	CSS float64
	TTC float64
}

// ComputeTotals aggregates line items into HT, TVA, CSS and TTC amounts.
// Pure; no rounding is applied here. Rounding to two decimals is a
// presentation concern handled by FormatAmount when displaying or
// printing, never when persisting.
func ComputeTotals(items []models.LineItem) Totals {
	var t Totals
	for _, item := range items {
		t.HT += item.Amount
	}
	t.TVA = t.HT * RateTVA
	t.CSS = t.HT * RateCSS
	t.TTC = t.HT + t.TVA + t.CSS
	return t
}

// FormatAmount renders an amount to two decimals with the FCFA suffix.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f FCFA", v)
}
