package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/diewo77/factures/internal/models"
	"github.com/diewo77/factures/internal/pdf"
	"github.com/diewo77/factures/internal/session"
	"github.com/diewo77/factures/internal/store"
	"github.com/diewo77/factures/internal/view"
)

const invoicesPerPage = 10

// HistoryHandler serves the paginated invoice history and single
// invoice lookups.
type HistoryHandler struct {
	store    *store.Store
	sess     *session.Session
	renderer *pdf.Renderer
	log      *zap.Logger
}

func NewHistoryHandler(st *store.Store, sess *session.Session, renderer *pdf.Renderer, log *zap.Logger) *HistoryHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HistoryHandler{store: st, sess: sess, renderer: renderer, log: log}
}

// List shows one page of the invoice history. The page number sticks in
// the session; requests outside [1, total] are clamped, not rejected.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.store.FetchAll()
	if err != nil {
		h.log.Error("list invoices", zap.Error(err))
		http.Error(w, "Failed to load invoices", http.StatusInternalServerError)
		return
	}

	page := h.sess.Page()
	if raw := r.URL.Query().Get("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			page = p
		}
	}
	totalPages := store.TotalPages(len(invoices), invoicesPerPage)
	page = store.ClampPage(page, totalPages)
	h.sess.SetPage(page)

	data := map[string]any{
		"Invoices":   store.Paginate(invoices, page, invoicesPerPage),
		"Page":       page,
		"TotalPages": totalPages,
		"Warning":    r.URL.Query().Get("warning"),
	}
	if err := view.Render(w, "history.html", data); err != nil {
		h.log.Error("render history screen", zap.Error(err))
	}
}

// Find redirects the search form to the invoice detail route.
func (h *HistoryHandler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id < 1 {
		redirectWarning(w, r, "/invoices", "Aucune facture correspondante")
		return
	}
	http.Redirect(w, r, "/invoices/"+strconv.Itoa(id), http.StatusSeeOther)
}

// View shows one stored invoice with its decoded line items.
func (h *HistoryHandler) View(w http.ResponseWriter, r *http.Request) {
	invoice, items, _ := h.fetch(w, r)
	if invoice == nil {
		return
	}

	data := map[string]any{
		"Invoice": invoice,
		"Items":   items,
	}
	if err := view.Render(w, "detail.html", data); err != nil {
		h.log.Error("render detail screen", zap.Error(err))
	}
}

// PDF serves the stored invoice as a downloadable document. Totals come
// from the persisted columns, never recomputed, so the document shows
// the rates in effect when the invoice was created.
func (h *HistoryHandler) PDF(w http.ResponseWriter, r *http.Request) {
	invoice, items, _ := h.fetch(w, r)
	if invoice == nil {
		return
	}

	doc := pdf.StoredDocument(invoice, items)
	data, err := h.renderer.Invoice(doc)
	if err != nil {
		h.log.Error("generate pdf", zap.Error(err))
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("facture_%d.pdf", invoice.ID)))
	w.Write(data)
}

// fetch loads the invoice named in the path, writing the response
// itself when the invoice cannot be served.
func (h *HistoryHandler) fetch(w http.ResponseWriter, r *http.Request) (*models.Invoice, []models.LineItem, error) {
	id, convErr := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if convErr != nil {
		redirectWarning(w, r, "/invoices", "Aucune facture correspondante")
		return nil, nil, convErr
	}
	inv, decoded, fetchErr := h.store.FetchByID(uint(id))
	if fetchErr != nil {
		if errors.Is(fetchErr, store.ErrNotFound) {
			redirectWarning(w, r, "/invoices", "Aucune facture correspondante")
		} else {
			h.log.Error("fetch invoice", zap.Error(fetchErr))
			http.Error(w, "Failed to load invoice", http.StatusInternalServerError)
		}
		return nil, nil, fetchErr
	}
	return inv, decoded, nil
}
