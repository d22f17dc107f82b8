package components

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechampion/site/internal/model"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestButtonLink(t *testing.T) {
	html := render(t, ButtonLink(ButtonProps{
		Href:     "https://github.com/example/",
		Label:    "GitHub",
		Icon:     "github",
		External: true,
		Big:      true,
	}))

	assert.Contains(t, html, `href="https://github.com/example/"`)
	assert.Contains(t, html, `rel="noopener noreferrer"`)
	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, "GitHub</a>")
	// Big padding replaces the base padding instead of stacking with it.
	assert.Contains(t, html, "px-6")
	assert.NotContains(t, html, "px-4")
}

func TestButtonLinkRejectsUnsafeURL(t *testing.T) {
	html := render(t, ButtonLink(ButtonProps{Href: "javascript:alert(1)", Label: "x"}))

	assert.NotContains(t, html, "javascript:")
}

func TestIconUnknown(t *testing.T) {
	assert.Empty(t, render(t, Icon("nope")))
}

func TestIconClosesPath(t *testing.T) {
	html := render(t, Icon("send"))

	assert.Contains(t, html, `aria-hidden="true"`)
	assert.Contains(t, html, "</path></svg>")
}

func TestHeroKeepsIntroMarkup(t *testing.T) {
	html := render(t, Hero(model.Hero{
		Heading:   "Hi <there>",
		IntroHTML: `I work at the <abbr title="Financial Times">FT</abbr>.`,
		Links:     []model.Link{{Label: "Contact", Href: "/contact/", Icon: "send"}},
	}))

	assert.Contains(t, html, "Hi &lt;there&gt;</h1>")
	assert.Contains(t, html, `<abbr title="Financial Times">FT</abbr>`)
	assert.Contains(t, html, `href="/contact/"`)
	assert.NotContains(t, html, "noopener")
}

func TestArticle(t *testing.T) {
	html := render(t, Article(&model.PostSummary{
		Title:       "Hello",
		Slug:        "hello",
		Date:        time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		Category:    "web",
		Excerpt:     "Some text",
		ReadMinutes: 3,
	}))

	assert.Contains(t, html, `data-slug="hello"`)
	assert.Contains(t, html, "border-primary/20")
	assert.Contains(t, html, `<a class="hover:text-primary" href="/hello/">Hello</a>`)
	assert.Contains(t, html, `<span data-read-time>3 Min Read</span>`)
	assert.Contains(t, html, `&mdash; In <span class="font-semibold" data-category>web</span>`)
}

func TestRenderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := SectionTitle("Latest Posts").Render(ctx, &bytes.Buffer{})

	assert.ErrorIs(t, err, context.Canceled)
}
