package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/diewo77/factures/internal/charts"
	"github.com/diewo77/factures/internal/reports"
	"github.com/diewo77/factures/internal/store"
	"github.com/diewo77/factures/internal/view"
)

// AnalyticsHandler serves the sales analysis screen.
type AnalyticsHandler struct {
	store *store.Store
	log   *zap.Logger
}

func NewAnalyticsHandler(st *store.Store, log *zap.Logger) *AnalyticsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalyticsHandler{store: st, log: log}
}

// Show renders the two sales charts, or an empty state when no sales
// have been recorded yet.
func (h *AnalyticsHandler) Show(w http.ResponseWriter, r *http.Request) {
	sales, err := h.store.FetchSales()
	if err != nil {
		h.log.Error("list sales", zap.Error(err))
		http.Error(w, "Failed to load sales", http.StatusInternalServerError)
		return
	}
	if len(sales) == 0 {
		if err := view.Render(w, "analytics.html", map[string]any{}); err != nil {
			h.log.Error("render analytics screen", zap.Error(err))
		}
		return
	}

	totals := reports.ByProduct(sales)
	points := reports.ByProductOverTime(sales)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.RenderSalesPage(w, totals, points); err != nil {
		h.log.Error("render sales charts", zap.Error(err))
	}
}
