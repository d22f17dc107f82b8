package handler

import (
	"net/http"

	"github.com/jakechampion/site/internal/service"
	"github.com/jakechampion/site/internal/site"
	"github.com/jakechampion/site/internal/ui"
)

type HomeHandler struct {
	content  *site.Content
	renderer *site.Renderer
}

func NewHomeHandler(content *site.Content, renderer *site.Renderer) *HomeHandler {
	return &HomeHandler{
		content:  content,
		renderer: renderer,
	}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	posts := service.Summaries(h.content.Snapshot().Posts)
	ui.Render(w, r, http.StatusOK, h.renderer.Landing(posts))
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, http.StatusNotFound, h.renderer.NotFound(r.URL.Path))
}
