package view

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/diewo77/factures/internal/billing"
)

//go:embed templates/*.html
var templatesFS embed.FS

var tplCache = struct {
	sync.RWMutex
	m map[string]*template.Template
}{m: map[string]*template.Template{}}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"amount": billing.FormatAmount,
		"add":    func(a, b int) int { return a + b },
		"sub":    func(a, b int) int { return a - b },
	}
}

// Render executes the named page template inside the shared layout.
func Render(w http.ResponseWriter, name string, data any) error {
	tpl, err := load(name)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func load(name string) (*template.Template, error) {
	tplCache.RLock()
	tpl, ok := tplCache.m[name]
	tplCache.RUnlock()
	if ok {
		return tpl, nil
	}

	tpl, err := template.New(name).Funcs(funcMap()).
		ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	tplCache.Lock()
	tplCache.m[name] = tpl
	tplCache.Unlock()
	return tpl, nil
}
