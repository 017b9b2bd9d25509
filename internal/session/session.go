package session

import (
	"sync"

	"github.com/diewo77/factures/internal/billing"
	"github.com/diewo77/factures/internal/models"
)

// Session holds the operator's in-progress invoice and transient view
// state: accumulated line items, the history page counter and the
// add-product form toggle. It is owned by the presentation shell and
// passed into handlers on each request; nothing here is persisted.
type Session struct {
	mu sync.Mutex

	kind        models.InvoiceKind
	clientName  string
	items       []models.LineItem
	page        int
	formVisible bool
}

// New returns an empty session positioned on page 1.
func New() *Session {
	return &Session{kind: models.KindProforma, page: 1}
}

// SetHeader records the invoice kind and client name chosen so far.
func (s *Session) SetHeader(kind models.InvoiceKind, clientName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kind.Valid() {
		s.kind = kind
	}
	s.clientName = clientName
}

// Header returns the current invoice kind and client name.
func (s *Session) Header() (models.InvoiceKind, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind, s.clientName
}

// AddItem appends a validated line item to the working set.
func (s *Session) AddItem(item models.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	s.formVisible = false
}

// Items returns a copy of the working line items.
func (s *Session) Items() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Totals computes the live totals of the working invoice.
func (s *Session) Totals() billing.Totals {
	return billing.ComputeTotals(s.Items())
}

// Reset clears the working invoice for a new one. The page counter and
// form visibility reset as well.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kind = models.KindProforma
	s.clientName = ""
	s.items = nil
	s.page = 1
	s.formVisible = false
}

// Page returns the current history page number.
func (s *Session) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// SetPage stores the history page number. Clamping against the page
// count happens in the handler, which knows the total.
func (s *Session) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.page = page
}

// ShowForm toggles the add-product form.
func (s *Session) ShowForm(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formVisible = visible
}

// FormVisible reports whether the add-product form is open.
func (s *Session) FormVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formVisible
}
