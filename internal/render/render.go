// Package render turns a portfolio record into its single-page HTML site.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
	now  func() time.Time
}

// view is what the template sees: the record plus the footer year.
type view struct {
	portfolio.Record
	Year int
}

func New(now func() time.Time) (*Renderer, error) {
	if now == nil {
		now = time.Now
	}
	tmpl, err := template.New("portfolio.html.tmpl").
		Funcs(template.FuncMap{
			"mailto": func(email string) string { return "mailto:" + email },
		}).
		ParseFS(templateFS, "templates/portfolio.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse portfolio template: %w", err)
	}
	return &Renderer{tmpl: tmpl, now: now}, nil
}

// Render writes the page for rec. The record is only read.
func (r *Renderer) Render(w io.Writer, rec portfolio.Record) error {
	if err := r.tmpl.Execute(w, view{Record: rec, Year: r.now().Year()}); err != nil {
		return fmt.Errorf("render portfolio: %w", err)
	}
	return nil
}
