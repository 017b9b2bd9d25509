package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/diewo77/factures/internal/handlers"
	"github.com/diewo77/factures/internal/pdf"
	"github.com/diewo77/factures/internal/session"
	"github.com/diewo77/factures/internal/store"
)

// App is the main application handler that sets up all routes. It owns
// the single operator session; everything else is stateless.
type App struct {
	mux  *http.ServeMux
	sess *session.Session
}

// NewApp creates the application with all routes configured.
func NewApp(st *store.Store, renderer *pdf.Renderer, log *zap.Logger) *App {
	app := &App{
		mux:  http.NewServeMux(),
		sess: session.New(),
	}

	ih := handlers.NewInvoiceHandler(st, app.sess, renderer, log)
	hh := handlers.NewHistoryHandler(st, app.sess, renderer, log)
	ah := handlers.NewAnalyticsHandler(st, log)

	// Create screen
	app.mux.HandleFunc("GET /{$}", ih.Show)
	app.mux.HandleFunc("POST /items/form", ih.ShowItemForm)
	app.mux.HandleFunc("POST /items", ih.AddItem)
	app.mux.HandleFunc("POST /invoices", ih.Save)
	app.mux.HandleFunc("POST /pdf", ih.WorkingPDF)
	app.mux.HandleFunc("POST /new", ih.Reset)

	// History screen
	app.mux.HandleFunc("GET /invoices", hh.List)
	app.mux.HandleFunc("GET /invoices/find", hh.Find)
	app.mux.HandleFunc("GET /invoices/{id}", hh.View)
	app.mux.HandleFunc("GET /invoices/{id}/pdf", hh.PDF)

	// Analysis screen
	app.mux.HandleFunc("GET /analytics", ah.Show)

	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}
