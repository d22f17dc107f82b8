package layouts

import "github.com/jakechampion/site/internal/model"

// Meta describes the document head of a single page.
type Meta struct {
	Title       string
	Description string
	Path        string
}

// title falls back to the site title when the page has none of its own.
func (m Meta) title(site model.Site) string {
	if m.Title == "" || m.Title == site.Title {
		return site.Title
	}
	return m.Title + " | " + site.Title
}

func (m Meta) description(site model.Site) string {
	if m.Description == "" {
		return site.Description
	}
	return m.Description
}
