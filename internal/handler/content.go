package handler

import (
	"net/http"
	"strings"

	"github.com/jakechampion/site/internal/site"
	"github.com/jakechampion/site/internal/ui"
)

// ContentHandler serves posts and pages at /<slug>/, the same paths the build writes.
type ContentHandler struct {
	content  *site.Content
	renderer *site.Renderer
}

func NewContentHandler(content *site.Content, renderer *site.Renderer) *ContentHandler {
	return &ContentHandler{
		content:  content,
		renderer: renderer,
	}
}

func (h *ContentHandler) Show(w http.ResponseWriter, r *http.Request) {
	slug := strings.Trim(r.PathValue("path"), "/")
	if slug == "" {
		ui.Render(w, r, http.StatusNotFound, h.renderer.NotFound(r.URL.Path))
		return
	}

	snap := h.content.Snapshot()
	post, isPost := snap.Post(slug)
	page, isPage := snap.Page(slug)
	if !isPost && !isPage {
		ui.Render(w, r, http.StatusNotFound, h.renderer.NotFound(r.URL.Path))
		return
	}

	// Static hosts serve <slug>/index.html, so only the trailing slash form is canonical.
	if !strings.HasSuffix(r.URL.Path, "/") {
		http.Redirect(w, r, "/"+slug+"/", http.StatusMovedPermanently)
		return
	}

	if isPost {
		ui.Render(w, r, http.StatusOK, h.renderer.Post(post))
		return
	}
	ui.Render(w, r, http.StatusOK, h.renderer.Page(page))
}
