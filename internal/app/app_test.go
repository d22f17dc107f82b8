package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechampion/site/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		SiteURL:     "https://example.com",
		SiteTitle:   "Example",
		AuthorName:  "Author",
		HeroIntro:   "Intro.",
		ContactPath: "/contact/",
		GitHubURL:   "https://github.com/example",
		TwitterURL:  "https://twitter.com/example",
		ContentPath: "content",
		OutputPath:  "public",
	}
}

func TestHero(t *testing.T) {
	hero := Hero(testConfig())

	assert.Equal(t, "Hi.", hero.Heading)
	assert.Equal(t, "Intro.", hero.IntroHTML)
	assert.Len(t, hero.Links, 3)
	assert.Equal(t, "/contact/", hero.Links[0].Href)
	assert.False(t, hero.Links[0].External)
	assert.True(t, hero.Links[1].External)
	assert.Equal(t, "twitter", hero.Links[2].Icon)
}

func TestPublisherRequiresBucket(t *testing.T) {
	a := New(testConfig())

	_, err := a.Publisher(context.Background())

	assert.ErrorContains(t, err, "S3_BUCKET")
}
