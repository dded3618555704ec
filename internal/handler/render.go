package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/Prathamesh666/RAB-Matheran-Website/web"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
)

// pageData is what every template receives.
type pageData struct {
	Title string
	Flash string
	Data  any
}

type renderer struct {
	templates *template.Template
	log       *logger.Logger
}

func newRenderer(log *logger.Logger) (*renderer, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &renderer{templates: tmpl, log: log}, nil
}

func (r *renderer) render(w http.ResponseWriter, status int, name, title, flash string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := r.templates.ExecuteTemplate(w, name, pageData{Title: title, Flash: flash, Data: data})
	if err != nil {
		r.log.WithField("template", name).Error(fmt.Sprintf("failed to render page: %v", err))
	}
}
