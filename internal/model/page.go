package model

// Page is a standalone markdown page such as the contact page.
type Page struct {
	Title       string
	Slug        string
	Description string
	SourcePath  string
	HTMLContent string
}

func (p *Page) Permalink() string {
	return "/" + p.Slug + "/"
}
