package controllers

import (
	"net/http"

	"github.com/adityarao21/text-analyzer/internal/views"
)

// StaticController handles the browser-facing pages.
type StaticController struct {
	templates StaticTemplates
}

// StaticTemplates holds templates for static pages.
type StaticTemplates struct {
	Home views.Template
}

// NewStaticController creates a new StaticController.
func NewStaticController(templates StaticTemplates) *StaticController {
	return &StaticController{templates: templates}
}

// GetHome renders the home page with the analyze form.
func (c *StaticController) GetHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	c.templates.Home.Execute(w, r, nil)
}

// HealthCheck returns a simple health status for monitoring.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
