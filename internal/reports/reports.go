package reports

import (
	"sort"

	"github.com/diewo77/factures/internal/models"
)

// ProductTotal is the summed sales amount for one product.
type ProductTotal struct {
	Product string
	Amount  float64
}

// Point is one sale reshaped for the time-series chart: the date in
// display form, the product as the series discriminator, and the amount.
type Point struct {
	Date    string
	Product string
	Amount  float64
}

// ByProduct groups sale records by product and sums their amounts.
// Results are ordered largest total first, ties broken by product name,
// matching the display convention of the sales chart.
func ByProduct(sales []models.Sale) []ProductTotal {
	sums := make(map[string]float64, len(sales))
	for _, sale := range sales {
		sums[sale.Product] += sale.Amount
	}
	totals := make([]ProductTotal, 0, len(sums))
	for product, amount := range sums {
		totals = append(totals, ProductTotal{Product: product, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Product < totals[j].Product
	})
	return totals
}

// ByProductOverTime reshapes sale records into chart points, one per
// sale, with dates normalized to YYYY-MM-DD text.
func ByProductOverTime(sales []models.Sale) []Point {
	points := make([]Point, 0, len(sales))
	for _, sale := range sales {
		points = append(points, Point{
			Date:    sale.Date.Format("2006-01-02"),
			Product: sale.Product,
			Amount:  sale.Amount,
		})
	}
	return points
}
