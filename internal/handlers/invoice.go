package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/diewo77/factures/internal/models"
	"github.com/diewo77/factures/internal/pdf"
	"github.com/diewo77/factures/internal/session"
	"github.com/diewo77/factures/internal/store"
	"github.com/diewo77/factures/internal/validation"
	"github.com/diewo77/factures/internal/view"
)

// InvoiceHandler drives the create-invoice screen: the working line
// item set lives in the session, persistence goes through the store.
type InvoiceHandler struct {
	store    *store.Store
	sess     *session.Session
	renderer *pdf.Renderer
	log      *zap.Logger
}

func NewInvoiceHandler(st *store.Store, sess *session.Session, renderer *pdf.Renderer, log *zap.Logger) *InvoiceHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InvoiceHandler{store: st, sess: sess, renderer: renderer, log: log}
}

// Show renders the create-invoice screen with live totals.
func (h *InvoiceHandler) Show(w http.ResponseWriter, r *http.Request) {
	kind, clientName := h.sess.Header()
	data := map[string]any{
		"Kind":        kind,
		"ClientName":  clientName,
		"Kinds":       []models.InvoiceKind{models.KindProforma, models.KindDefinitive},
		"Items":       h.sess.Items(),
		"Totals":      h.sess.Totals(),
		"FormVisible": h.sess.FormVisible(),
		"Flash":       r.URL.Query().Get("flash"),
		"Warning":     r.URL.Query().Get("warning"),
	}
	if err := view.Render(w, "create.html", data); err != nil {
		h.log.Error("render create screen", zap.Error(err))
	}
}

// ShowItemForm opens the add-product form.
func (h *InvoiceHandler) ShowItemForm(w http.ResponseWriter, r *http.Request) {
	h.updateHeader(r)
	h.sess.ShowForm(true)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AddItem validates the submitted product and appends it to the
// working invoice.
func (h *InvoiceHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	h.updateHeader(r)

	quantity, _ := strconv.Atoi(r.FormValue("quantity"))
	unitPrice, _ := strconv.ParseFloat(r.FormValue("unit_price"), 64)
	item, err := models.BuildLineItem(r.FormValue("name"), quantity, unitPrice)
	if err != nil {
		redirectWarning(w, r, "/", "Veuillez remplir tous les champs correctement")
		return
	}
	h.sess.AddItem(item)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Save persists the working invoice and its sale rows. The working set
// is kept so the operator can still print the PDF; "Nouvelle Facture"
// clears it.
func (h *InvoiceHandler) Save(w http.ResponseWriter, r *http.Request) {
	h.updateHeader(r)
	kind, clientName := h.sess.Header()

	id, err := h.store.Save(kind, clientName, h.sess.Items())
	if err != nil {
		var v validation.Violations
		if errors.As(err, &v) {
			redirectWarning(w, r, "/", "Veuillez remplir tous les champs nécessaires")
			return
		}
		h.log.Error("save invoice", zap.Error(err))
		redirectWarning(w, r, "/", "Échec de l'enregistrement de la facture")
		return
	}
	redirectFlash(w, r, "/", fmt.Sprintf("Facture %s n°%d enregistrée avec succès !", kind, id))
}

// WorkingPDF renders the in-progress invoice as a downloadable PDF.
func (h *InvoiceHandler) WorkingPDF(w http.ResponseWriter, r *http.Request) {
	h.updateHeader(r)
	kind, clientName := h.sess.Header()
	items := h.sess.Items()

	if strings.TrimSpace(clientName) == "" {
		redirectWarning(w, r, "/", "Veuillez entrer le nom du client")
		return
	}
	if len(items) == 0 {
		redirectWarning(w, r, "/", "Veuillez ajouter au moins un produit")
		return
	}

	doc := pdf.Document{
		ClientName: clientName,
		Kind:       kind,
		Items:      items,
		Totals:     h.sess.Totals(),
	}
	h.servePDF(w, doc, fmt.Sprintf("facture_%s.pdf", strings.ToLower(string(kind))))
}

// Reset clears the working invoice.
func (h *InvoiceHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.sess.Reset()
	redirectFlash(w, r, "/", "Les données de la facture ont été réinitialisées. Vous pouvez créer une nouvelle facture.")
}

func (h *InvoiceHandler) servePDF(w http.ResponseWriter, doc pdf.Document, filename string) {
	data, err := h.renderer.Invoice(doc)
	if err != nil {
		h.log.Error("generate pdf", zap.Error(err))
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

func (h *InvoiceHandler) updateHeader(r *http.Request) {
	h.sess.SetHeader(models.InvoiceKind(r.FormValue("kind")), r.FormValue("client_name"))
}

func redirectFlash(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?flash="+url.QueryEscape(msg), http.StatusSeeOther)
}

func redirectWarning(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?warning="+url.QueryEscape(msg), http.StatusSeeOther)
}
