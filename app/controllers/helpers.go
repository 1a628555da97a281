package controllers

import (
	"errors"
	"html/template"
	"net/http"
	"path/filepath"

	"inkwell/app/repositories"

	"github.com/rs/zerolog/log"
)

// loadTemplates loads and parses all templates
func loadTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/index.html"),
	))
	templates["detail"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/detail.html"),
		filepath.Join(basePath, "app/views/shared/comments.html"),
	))
	templates["share"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/share.html"),
	))
	templates["comment"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/posts/comment.html"),
	))
	return templates
}

// render executes a layout template, logging instead of half-writing on
// failure.
func render(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		log.Error().Err(err).Msg("template execution failed")
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

// sendError maps service errors onto HTTP statuses.
func sendError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	log.Error().Err(err).Msg(fallback)
	http.Error(w, fallback, http.StatusInternalServerError)
}
