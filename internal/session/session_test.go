package session

import (
	"testing"

	"github.com/diewo77/factures/internal/models"
)

func TestSessionWorkingSet(t *testing.T) {
	s := New()
	s.SetHeader(models.KindDefinitive, "Mme Diallo")
	s.AddItem(models.LineItem{Name: "Savon", Quantity: 2, UnitPrice: 500, Amount: 1000})
	s.AddItem(models.LineItem{Name: "Huile", Quantity: 1, UnitPrice: 2500, Amount: 2500})

	kind, client := s.Header()
	if kind != models.KindDefinitive || client != "Mme Diallo" {
		t.Errorf("header = %s/%s", kind, client)
	}
	if got := len(s.Items()); got != 2 {
		t.Fatalf("items = %d, want 2", got)
	}
	if totals := s.Totals(); totals.HT != 3500 {
		t.Errorf("HT = %f, want 3500", totals.HT)
	}
}

func TestSessionItemsReturnsCopy(t *testing.T) {
	s := New()
	s.AddItem(models.LineItem{Name: "Savon", Quantity: 1, UnitPrice: 500, Amount: 500})
	items := s.Items()
	items[0].Name = "mutated"
	if s.Items()[0].Name != "Savon" {
		t.Error("Items must return a copy of the working set")
	}
}

func TestSessionReset(t *testing.T) {
	s := New()
	s.SetHeader(models.KindDefinitive, "Mme Diallo")
	s.AddItem(models.LineItem{Name: "Savon", Quantity: 1, UnitPrice: 500, Amount: 500})
	s.SetPage(3)
	s.ShowForm(true)

	s.Reset()

	kind, client := s.Header()
	if kind != models.KindProforma || client != "" {
		t.Errorf("header after reset = %s/%s", kind, client)
	}
	if len(s.Items()) != 0 {
		t.Error("items must be cleared on reset")
	}
	if s.Page() != 1 {
		t.Errorf("page after reset = %d, want 1", s.Page())
	}
	if s.FormVisible() {
		t.Error("form must be hidden after reset")
	}
}

func TestSessionRejectsInvalidKind(t *testing.T) {
	s := New()
	s.SetHeader(models.InvoiceKind("Brouillon"), "Mme Diallo")
	kind, _ := s.Header()
	if kind != models.KindProforma {
		t.Errorf("invalid kind must be ignored, got %s", kind)
	}
}

func TestSessionPageFloor(t *testing.T) {
	s := New()
	s.SetPage(-2)
	if s.Page() != 1 {
		t.Errorf("page = %d, want 1", s.Page())
	}
}
