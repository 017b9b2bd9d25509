package models

import (
	"errors"
	"testing"

	"github.com/diewo77/factures/internal/validation"
)

func TestBuildLineItem(t *testing.T) {
	tests := []struct {
		name      string
		product   string
		quantity  int
		unitPrice float64
		wantErr   bool
		wantQty   int
		wantAmt   float64
	}{
		{"valid", "Savon", 3, 500, false, 3, 1500},
		{"quantity clamped to 1", "Savon", 0, 500, false, 1, 500},
		{"negative quantity clamped", "Savon", -4, 500, false, 1, 500},
		{"empty name", "", 2, 500, true, 0, 0},
		{"blank name", "   ", 2, 500, true, 0, 0},
		{"zero price", "Savon", 2, 0, true, 0, 0},
		{"negative price", "Savon", 2, -10, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := BuildLineItem(tt.product, tt.quantity, tt.unitPrice)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", item)
				}
				var v validation.Violations
				if !errors.As(err, &v) {
					t.Fatalf("expected Violations, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.Quantity != tt.wantQty {
				t.Errorf("Quantity = %d, want %d", item.Quantity, tt.wantQty)
			}
			if item.Amount != tt.wantAmt {
				t.Errorf("Amount = %f, want %f", item.Amount, tt.wantAmt)
			}
		})
	}
}

func TestLineItemsRoundTrip(t *testing.T) {
	items := []LineItem{
		{Name: "Savon", Quantity: 3, UnitPrice: 500, Amount: 1500},
		{Name: "Huile", Quantity: 1, UnitPrice: 1250.5, Amount: 1250.5},
	}
	blob, err := EncodeLineItems(items)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeLineItems(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(items) {
		t.Fatalf("decoded %d items, want %d", len(decoded), len(items))
	}
	for i := range items {
		if decoded[i] != items[i] {
			t.Errorf("item %d = %+v, want %+v", i, decoded[i], items[i])
		}
	}
}

func TestDecodeLineItemsStrict(t *testing.T) {
	t.Run("not an array", func(t *testing.T) {
		items, err := DecodeLineItems(`{"name":"x"}`)
		if len(items) != 0 {
			t.Errorf("expected no items, got %+v", items)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("expected ParseError, got %v", err)
		}
	})

	t.Run("unknown fields skipped", func(t *testing.T) {
		blob := `[{"name":"Savon","quantity":1,"unit_price":500,"amount":500},` +
			`{"name":"Huile","quantity":1,"unit_price":100,"amount":100,"exec":"rm -rf"}]`
		items, err := DecodeLineItems(blob)
		if len(items) != 1 || items[0].Name != "Savon" {
			t.Errorf("expected only the clean entry, got %+v", items)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Dropped != 1 {
			t.Fatalf("expected ParseError with 1 dropped entry, got %v", err)
		}
	})

	t.Run("impossible values skipped", func(t *testing.T) {
		blob := `[{"name":"","quantity":1,"unit_price":500,"amount":500},` +
			`{"name":"Savon","quantity":0,"unit_price":500,"amount":0},` +
			`{"name":"Huile","quantity":2,"unit_price":100,"amount":200}]`
		items, err := DecodeLineItems(blob)
		if len(items) != 1 || items[0].Name != "Huile" {
			t.Errorf("expected only the valid entry, got %+v", items)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Dropped != 2 {
			t.Fatalf("expected ParseError with 2 dropped entries, got %v", err)
		}
	})

	t.Run("empty blob", func(t *testing.T) {
		items, err := DecodeLineItems("")
		if err != nil || items != nil {
			t.Errorf("expected nil, nil; got %+v, %v", items, err)
		}
	})
}

func TestInvoiceKindValid(t *testing.T) {
	if !KindProforma.Valid() || !KindDefinitive.Valid() {
		t.Error("known kinds must be valid")
	}
	if InvoiceKind("Brouillon").Valid() {
		t.Error("unknown kind must not be valid")
	}
}
