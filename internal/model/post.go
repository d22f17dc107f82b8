package model

import (
	"time"
)

// DateLayout is the display format for post dates (day.month.year).
const DateLayout = "02.01.2006"

// PostSummary is the listing-card view of a post. Records are produced once per build
// and never mutated afterwards.
type PostSummary struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Excerpt     string    `json:"excerpt"`
	ReadMinutes int       `json:"read_minutes"`
}

// Permalink is the route of the full post page.
func (p *PostSummary) Permalink() string {
	return "/" + p.Slug + "/"
}

func (p *PostSummary) FormattedDate() string {
	return p.Date.Format(DateLayout)
}

type Post struct {
	PostSummary
	Tags        []string
	Draft       bool
	SourcePath  string
	HTMLContent string
}

func (p *Post) Summary() *PostSummary {
	s := p.PostSummary
	return &s
}
