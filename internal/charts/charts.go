package charts

import (
	"io"
	"sort"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/diewo77/factures/internal/reports"
)

// SalesByProduct builds the bar chart of summed sales per product.
// Input order is preserved, so the aggregator's largest-first ordering
// carries through to the x axis.
func SalesByProduct(totals []reports.ProductTotal) *echarts.Bar {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Répartition des ventes par produit"}),
	)
	names := make([]string, 0, len(totals))
	values := make([]opts.BarData, 0, len(totals))
	for _, t := range totals {
		names = append(names, t.Product)
		values = append(values, opts.BarData{Value: t.Amount})
	}
	bar.SetXAxis(names).AddSeries("Montant (FCFA)", values)
	return bar
}

// SalesOverTime builds the line chart of sales over time, one series
// per product. Dates missing for a product render as gaps.
func SalesOverTime(points []reports.Point) *echarts.Line {
	line := echarts.NewLine()
	line.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Évolution des ventes par produit"}),
	)

	dateSet := make(map[string]struct{})
	perProduct := make(map[string]map[string]float64)
	for _, p := range points {
		dateSet[p.Date] = struct{}{}
		if perProduct[p.Product] == nil {
			perProduct[p.Product] = make(map[string]float64)
		}
		perProduct[p.Product][p.Date] += p.Amount
	}
	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	products := make([]string, 0, len(perProduct))
	for p := range perProduct {
		products = append(products, p)
	}
	sort.Strings(products)

	line.SetXAxis(dates)
	for _, product := range products {
		values := make([]opts.LineData, 0, len(dates))
		for _, d := range dates {
			if amount, ok := perProduct[product][d]; ok {
				values = append(values, opts.LineData{Value: amount})
			} else {
				values = append(values, opts.LineData{Value: nil})
			}
		}
		line.AddSeries(product, values)
	}
	return line
}

// RenderSalesPage writes the analytics page holding both charts to w.
func RenderSalesPage(w io.Writer, totals []reports.ProductTotal, points []reports.Point) error {
	page := components.NewPage()
	page.PageTitle = "Analyse des Données"
	page.AddCharts(SalesByProduct(totals), SalesOverTime(points))
	return page.Render(w)
}
