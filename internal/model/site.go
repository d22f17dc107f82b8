package model

// Site holds the build-wide values every layout needs.
type Site struct {
	Title       string
	Description string
	URL         string
	Author      string
}

// URLFor returns the absolute URL of a site-relative path.
func (s Site) URLFor(path string) string {
	return s.URL + path
}
