package handler

import (
	"net/http"

	"github.com/jakechampion/site/internal/service"
	"github.com/jakechampion/site/internal/site"
)

type SEOHandler struct {
	content        *site.Content
	sitemapService *service.SitemapService
}

// NewSEOHandler creates a new SEO handler
func NewSEOHandler(content *site.Content, sitemapService *service.SitemapService) *SEOHandler {
	return &SEOHandler{
		content:        content,
		sitemapService: sitemapService,
	}
}

// Robots serves the robots.txt file
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(h.sitemapService.Robots())
}

// Sitemap generates and serves the sitemap.xml from the current content
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	snap := h.content.Snapshot()
	sitemap, err := h.sitemapService.GenerateSitemap(service.Summaries(snap.Posts), snap.Pages)
	if err != nil {
		http.Error(w, "Failed to generate sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(sitemap)
}
