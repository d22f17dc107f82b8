package model

type Link struct {
	Label    string
	Href     string
	Icon     string
	External bool
}

// Hero is the fixed introduction block at the top of the landing page.
type Hero struct {
	Heading   string
	// IntroHTML comes from site config and is written unescaped.
	IntroHTML string
	Links     []Link
}
