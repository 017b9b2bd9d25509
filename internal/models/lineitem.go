package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/diewo77/factures/internal/validation"
)

// LineItem is one product entry of a working or stored invoice.
// It is not a database entity of its own: pending items live in the
// session and saved items travel inside the invoice's serialized blob.
type LineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Amount    float64 `json:"amount"`
}

// BuildLineItem validates raw operator input and derives the line amount.
// Quantity is clamped to a minimum of 1; name and unit price are hard
// requirements and yield a Violations error when missing.
func BuildLineItem(name string, quantity int, unitPrice float64) (LineItem, error) {
	v := make(validation.Violations)
	validation.Required("name", name, v)
	validation.PositiveFloat("unit_price", unitPrice, v)
	if !v.Empty() {
		return LineItem{}, v
	}
	if quantity < 1 {
		quantity = 1
	}
	return LineItem{
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Amount:    float64(quantity) * unitPrice,
	}, nil
}

// ParseError reports malformed stored line-item data. Dropped counts
// entries that were skipped from an otherwise readable blob; a blob
// that is not a JSON array at all drops everything.
type ParseError struct {
	Dropped int
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line items blob: %v", e.Err)
	}
	return fmt.Sprintf("line items blob: %d malformed entries skipped", e.Dropped)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EncodeLineItems serializes items for storage inside an invoice row.
func EncodeLineItems(items []LineItem) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode line items: %w", err)
	}
	return string(b), nil
}

// DecodeLineItems parses a stored blob back into structured line items.
// The parse is strict: the blob must be a JSON array of objects with
// exactly the known fields, and content is never evaluated. Entries
// that fail to decode or carry impossible values are skipped; the
// returned *ParseError (if any) says how many were dropped so the
// caller can log the anomaly instead of silently masking it.
func DecodeLineItems(blob string) ([]LineItem, error) {
	if blob == "" {
		return nil, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, &ParseError{Err: err}
	}
	items := make([]LineItem, 0, len(raw))
	dropped := 0
	for _, entry := range raw {
		dec := json.NewDecoder(bytes.NewReader(entry))
		dec.DisallowUnknownFields()
		var item LineItem
		if err := dec.Decode(&item); err != nil {
			dropped++
			continue
		}
		if item.Name == "" || item.Quantity < 1 || item.UnitPrice < 0 {
			dropped++
			continue
		}
		items = append(items, item)
	}
	if dropped > 0 {
		return items, &ParseError{Dropped: dropped}
	}
	return items, nil
}
