package site

import (
	"github.com/a-h/templ"

	"github.com/jakechampion/site/internal/model"
	"github.com/jakechampion/site/internal/ui/layouts"
	"github.com/jakechampion/site/internal/ui/pages"
)

// Renderer turns content into complete HTML documents. The builder and the preview
// server share it so both produce identical markup.
type Renderer struct {
	Site model.Site
	Hero model.Hero
}

func NewRenderer(site model.Site, hero model.Hero) *Renderer {
	return &Renderer{Site: site, Hero: hero}
}

func (r *Renderer) Landing(posts []*model.PostSummary) templ.Component {
	return layouts.Base(r.Site, layouts.Meta{Path: "/"}, pages.Landing(r.Hero, posts))
}

func (r *Renderer) Post(post *model.Post) templ.Component {
	meta := layouts.Meta{
		Title:       post.Title,
		Description: post.Excerpt,
		Path:        post.Permalink(),
	}
	return layouts.Base(r.Site, meta, pages.Post(post))
}

func (r *Renderer) Page(page *model.Page) templ.Component {
	meta := layouts.Meta{
		Title:       page.Title,
		Description: page.Description,
		Path:        page.Permalink(),
	}
	return layouts.Base(r.Site, meta, pages.Page(page))
}

func (r *Renderer) NotFound(path string) templ.Component {
	return layouts.Base(r.Site, layouts.Meta{Title: "Not found", Path: path}, pages.NotFound())
}
