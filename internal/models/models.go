package models

import "time"

// InvoiceKind distinguishes non-binding drafts from final invoices.
type InvoiceKind string

const (
	KindProforma   InvoiceKind = "Proforma"
	KindDefinitive InvoiceKind = "Définitive"
)

// Valid reports whether k is one of the closed set of invoice kinds.
func (k InvoiceKind) Valid() bool {
	return k == KindProforma || k == KindDefinitive
}

// Invoice is a persisted invoice record. The four monetary columns are
// written at creation time and never recomputed on read, so the tax
// rates in effect when the invoice was saved are preserved verbatim.
// The tax columns stay nullable at schema level: databases migrated
// from the pre-tax layout gain them via ALTER TABLE, which SQLite only
// allows without NOT NULL. Save always writes all four.
type Invoice struct {
	ID            uint        `gorm:"primaryKey"`
	Kind          InvoiceKind `gorm:"size:20;not null"`
	ClientName    string      `gorm:"size:255;not null"`
	LineItemsBlob string      `gorm:"type:text;not null"`
	TotalHT       float64
	TVA           float64
	CSS           float64
	TotalTTC      float64
}

// InvoiceSummary is the flattened row shown on the history screen.
// Monetary fields are coalesced to 0 at query level for legacy rows
// created before the tax columns existed; the stored values themselves
// are never rewritten.
type InvoiceSummary struct {
	ID         uint
	Kind       InvoiceKind
	ClientName string
	TotalHT    float64
	TVA        float64
	CSS        float64
	TotalTTC   float64
}

// Sale is one independent sale fact, fanned out from an invoice's line
// items at save time. There is deliberately no back-reference to the
// invoice: reporting reads sales on their own.
type Sale struct {
	ID      uint      `gorm:"primaryKey"`
	Date    time.Time `gorm:"type:date;not null;index"`
	Product string    `gorm:"size:255;not null"`
	Amount  float64   `gorm:"not null"`
}
