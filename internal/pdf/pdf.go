package pdf

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/diewo77/factures/internal/billing"
	"github.com/diewo77/factures/internal/models"
)

// Document is the printable shape of a finalized invoice: header
// fields, priced line items and the four totals. The renderer never
// recomputes anything from it.
type Document struct {
	ClientName string
	Kind       models.InvoiceKind
	Items      []models.LineItem
	Totals     billing.Totals
}

// StoredDocument maps a persisted invoice to its printable shape. The
// totals are taken from the stored columns as-is.
func StoredDocument(invoice *models.Invoice, items []models.LineItem) Document {
	return Document{
		ClientName: invoice.ClientName,
		Kind:       invoice.Kind,
		Items:      items,
		Totals: billing.Totals{
			HT:  invoice.TotalHT,
			TVA: invoice.TVA,
			CSS: invoice.CSS,
			TTC: invoice.TotalTTC,
		},
	}
}

// Renderer produces invoice PDFs with a fixed company letterhead.
type Renderer struct {
	companyLines []string
}

// NewRenderer builds a renderer printing the given lines centered at
// the top of every page.
func NewRenderer(companyLines ...string) *Renderer {
	return &Renderer{companyLines: companyLines}
}

// Invoice renders doc into a PDF and returns its bytes.
func (r *Renderer) Invoice(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		Build()
	m := maroto.New(cfg)

	if err := m.RegisterHeader(r.headerRows()...); err != nil {
		return nil, fmt.Errorf("register header: %w", err)
	}

	m.AddRow(8, text.NewCol(12, "Client : "+doc.ClientName, props.Text{
		Style: fontstyle.Bold,
		Size:  12,
	}))
	m.AddRow(6, text.NewCol(12, "Facture "+string(doc.Kind), props.Text{Size: 10}))
	m.AddRow(4)

	m.AddRows(tableRows(doc)...)

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return document.GetBytes(), nil
}

func (r *Renderer) headerRows() []core.Row {
	rows := make([]core.Row, 0, len(r.companyLines)+1)
	for i, line := range r.companyLines {
		style := props.Text{Align: align.Center, Size: 12}
		if i == 0 {
			style.Style = fontstyle.Bold
		}
		rows = append(rows, text.NewRow(7, line, style))
	}
	rows = append(rows, row.New(6))
	return rows
}

func tableRows(doc Document) []core.Row {
	cell := &props.Cell{BorderType: border.Full}
	head := props.Text{Style: fontstyle.Bold, Size: 10, Left: 1, Top: 1}
	body := props.Text{Size: 10, Left: 1, Top: 1}

	rows := []core.Row{
		row.New(8).Add(
			text.NewCol(5, "Description", head).WithStyle(cell),
			text.NewCol(2, "Quantité", head).WithStyle(cell),
			text.NewCol(2, "Prix Unitaire", head).WithStyle(cell),
			text.NewCol(3, "Montant", head).WithStyle(cell),
		),
	}
	for _, item := range doc.Items {
		rows = append(rows, row.New(8).Add(
			text.NewCol(5, item.Name, body).WithStyle(cell),
			text.NewCol(2, strconv.Itoa(item.Quantity), body).WithStyle(cell),
			text.NewCol(2, fmt.Sprintf("%.2f", item.UnitPrice), body).WithStyle(cell),
			text.NewCol(3, fmt.Sprintf("%.2f", item.Amount), body).WithStyle(cell),
		))
	}
	summary := []struct {
		label  string
		amount float64
	}{
		{"Total HT", doc.Totals.HT},
		{"TVA (18%)", doc.Totals.TVA},
		{"CSS (1%)", doc.Totals.CSS},
		{"Total TTC", doc.Totals.TTC},
	}
	for _, line := range summary {
		rows = append(rows, row.New(8).Add(
			text.NewCol(9, line.label, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Right: 1,
				Top:   1,
			}),
			text.NewCol(3, billing.FormatAmount(line.amount), body).WithStyle(cell),
		))
	}
	return rows
}
