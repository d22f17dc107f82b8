package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"APP_ENV", "SITE_URL", "EXCERPT_LENGTH", "READING_WPM", "INCLUDE_DRAFTS", "S3_PREFIX", "S3_BUCKET"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "http://localhost:8090", cfg.SiteURL)
	assert.Equal(t, 200, cfg.ExcerptLength)
	assert.Equal(t, 265, cfg.ReadingWPM)
	assert.False(t, cfg.IncludeDrafts)
	assert.Equal(t, "/contact/", cfg.ContactPath)
	assert.False(t, cfg.PublishConfigured())
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("SITE_URL", "https://example.com/")
	t.Setenv("EXCERPT_LENGTH", "120")
	t.Setenv("READING_WPM", "not-a-number")
	t.Setenv("INCLUDE_DRAFTS", "true")
	t.Setenv("S3_BUCKET", "site")
	t.Setenv("S3_PREFIX", "/blog/")

	cfg := Load()

	assert.Equal(t, "production", cfg.AppEnv)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "https://example.com", cfg.SiteURL)
	assert.Equal(t, 120, cfg.ExcerptLength)
	assert.Equal(t, 265, cfg.ReadingWPM)
	assert.True(t, cfg.IncludeDrafts)
	assert.Equal(t, "blog", cfg.S3Prefix)
	assert.True(t, cfg.PublishConfigured())
}

func TestDefaultHeroIntroKeepsAbbreviations(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HERO_INTRO", "")

	cfg := Load()

	assert.Contains(t, cfg.HeroIntro, `<abbr title="Financial Times">FT</abbr>`)
	assert.Contains(t, cfg.HeroIntro, `<abbr title="British Broadcasting Company">BBC</abbr>`)
}
