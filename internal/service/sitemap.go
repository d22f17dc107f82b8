package service

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/jakechampion/site/internal/model"
)

const sitemapDateLayout = "2006-01-02"

type SitemapService struct {
	baseURL string
}

// NewSitemapService creates a new sitemap service
func NewSitemapService(baseURL string) *SitemapService {
	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &SitemapService{
		baseURL: baseURL,
	}
}

// GenerateSitemap lists the landing page, every static page and every post.
// Posts keep the order they were given in.
func (s *SitemapService) GenerateSitemap(posts []*model.PostSummary, pages []*model.Page) ([]byte, error) {
	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]model.SitemapURL, 0, 1+len(pages)+len(posts)),
	}

	home := model.SitemapURL{
		Loc:        s.baseURL + "/",
		ChangeFreq: "weekly",
		Priority:   "1.0",
	}
	// The landing page changes whenever the newest post does.
	if len(posts) > 0 {
		home.LastMod = posts[0].Date.Format(sitemapDateLayout)
	}
	sitemap.URLs = append(sitemap.URLs, home)

	for _, page := range pages {
		sitemap.URLs = append(sitemap.URLs, model.SitemapURL{
			Loc:        s.baseURL + page.Permalink(),
			ChangeFreq: "monthly",
			Priority:   "0.5",
		})
	}

	for _, post := range posts {
		url := model.SitemapURL{
			Loc:        s.baseURL + post.Permalink(),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		}
		if !post.Date.IsZero() {
			url.LastMod = post.Date.Format(sitemapDateLayout)
		}
		sitemap.URLs = append(sitemap.URLs, url)
	}

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}

	// Add XML header
	result := xml.Header + string(output)
	return []byte(result), nil
}

// Robots returns a robots.txt allowing everything and pointing at the sitemap.
func (s *SitemapService) Robots() []byte {
	return []byte("User-agent: *\nAllow: /\nSitemap: " + s.baseURL + "/sitemap.xml\n")
}
