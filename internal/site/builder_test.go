package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechampion/site/internal/model"
	"github.com/jakechampion/site/internal/service"
	"github.com/jakechampion/site/internal/validation"
)

var testSite = model.Site{Title: "Example", Description: "Example site", URL: "https://example.com", Author: "Author"}

var testHero = model.Hero{
	Heading:   "Hi.",
	IntroHTML: "Intro.",
	Links:     []model.Link{{Label: "Contact", Href: "/contact/", Icon: "send"}},
}

type stubPosts []*model.Post

func (s stubPosts) Posts(ctx context.Context) ([]*model.Post, error) {
	return s, nil
}

type stubPages []*model.Page

func (s stubPages) Pages(ctx context.Context) ([]*model.Page, error) {
	return s, nil
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func newBuilder(posts PostSource, pages PageSource, out, static string) *Builder {
	return NewBuilder(posts, pages, service.NewSitemapService(testSite.URL), NewRenderer(testSite, testHero), out, static)
}

func TestBuildFromContent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "content/posts/hello-world.md", "---\ntitle: Hello World\ndate: 2020-01-02\ncategory: notes\n---\nFirst post.\n")
	writeFile(t, root, "content/posts/older.md", "---\ntitle: Older\ndate: 2020-01-01\n---\nOlder post.\n")
	writeFile(t, root, "content/pages/contact.md", "---\ntitle: Contact\n---\nSay hi.\n")
	writeFile(t, root, "static/css/site.css", "body{}")
	out := filepath.Join(root, "public")
	content := filepath.Join(root, "content")

	b := newBuilder(
		service.NewPostService(content, service.PostOptions{}),
		service.NewPageService(content),
		out,
		filepath.Join(root, "static"),
	)
	report, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Posts)
	assert.Equal(t, 1, report.Pages)
	assert.Equal(t, 6, report.Files)

	index := readFile(t, out, "index.html")
	assert.Equal(t, 2, strings.Count(index, "<article"))
	assert.Less(t, strings.Index(index, `href="/hello-world/"`), strings.Index(index, `href="/older/"`))
	assert.Contains(t, index, "<!doctype html>")

	assert.Contains(t, readFile(t, out, "hello-world/index.html"), "<p>First post.</p>")
	assert.Contains(t, readFile(t, out, "contact/index.html"), "Say hi.")
	assert.Contains(t, readFile(t, out, "sitemap.xml"), "https://example.com/hello-world/")
	assert.Contains(t, readFile(t, out, "robots.txt"), "Sitemap: https://example.com/sitemap.xml")
	assert.Equal(t, "body{}", readFile(t, out, "static/css/site.css"))
}

func TestBuildWithoutPosts(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")

	_, err := newBuilder(stubPosts{}, stubPages{}, out, "").Build(context.Background())
	require.NoError(t, err)

	index := readFile(t, out, "index.html")
	assert.NotContains(t, index, "<article")
	assert.Contains(t, index, "data-hero")
}

func TestBuildInvalidRecordLeavesOutputUntouched(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	writeFile(t, out, "index.html", "previous build")
	posts := stubPosts{
		{PostSummary: model.PostSummary{Title: "No Slug", Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}},
	}

	_, err := newBuilder(posts, stubPages{}, out, "").Build(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrInvalidPost)
	assert.Equal(t, "previous build", readFile(t, out, "index.html"))
}

func TestBuildSlugConflict(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	posts := stubPosts{
		{PostSummary: model.PostSummary{Title: "Contact", Slug: "contact", Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}},
	}
	pages := stubPages{{Title: "Contact", Slug: "contact"}}

	_, err := newBuilder(posts, pages, out, "").Build(context.Background())

	assert.ErrorIs(t, err, ErrSlugConflict)
}

func TestBuildRejectsDotSegments(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "public")
	writeFile(t, out, "index.html", "previous build")
	date := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, slug := range []string{"x/..", "a/../../escaped"} {
		posts := stubPosts{{PostSummary: model.PostSummary{Title: "Dots", Slug: slug, Date: date}}}
		_, err := newBuilder(posts, stubPages{}, out, "").Build(context.Background())
		assert.ErrorIs(t, err, validation.ErrInvalidPost, slug)

		pages := stubPages{{Title: "Dots", Slug: slug}}
		_, err = newBuilder(stubPosts{}, pages, out, "").Build(context.Background())
		assert.ErrorIs(t, err, ErrInvalidSlug, slug)
	}

	assert.Equal(t, "previous build", readFile(t, out, "index.html"))
	assert.NoFileExists(t, filepath.Join(root, "escaped", "index.html"))
}

func TestWriteRejectsPathsOutsideOutput(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "public")
	b := newBuilder(stubPosts{}, stubPages{}, out, "")

	for _, name := range []string{"../escaped/index.html", "x/../index.html", "/abs/index.html"} {
		err := b.write([]outputFile{{name: name, data: []byte("x")}})
		assert.ErrorIs(t, err, ErrUnsafePath, name)
	}

	assert.NoDirExists(t, filepath.Join(root, "escaped"))
	assert.NoDirExists(t, out)
	assertEntries(t, root)
}

func TestBuildRejectsReservedSlugs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	writeFile(t, out, "sitemap.xml", "previous sitemap")
	date := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, slug := range []string{"sitemap.xml", "robots.txt", "index.html", "static", "static/css", "Static"} {
		posts := stubPosts{{PostSummary: model.PostSummary{Title: "Reserved", Slug: slug, Date: date}}}
		_, err := newBuilder(posts, stubPages{}, out, "").Build(context.Background())
		assert.ErrorIs(t, err, ErrReservedSlug, slug)

		pages := stubPages{{Title: "Reserved", Slug: slug}}
		_, err = newBuilder(stubPosts{}, pages, out, "").Build(context.Background())
		assert.ErrorIs(t, err, ErrReservedSlug, slug)
	}

	assert.Equal(t, "previous sitemap", readFile(t, out, "sitemap.xml"))
}

func TestBuildWriteFailureKeepsPreviousOutput(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "public")
	writeFile(t, out, "index.html", "previous build")
	notADir := filepath.Join(root, "static.txt")
	writeFile(t, root, "static.txt", "not a directory")

	_, err := newBuilder(stubPosts{}, stubPages{}, out, notADir).Build(context.Background())

	assert.ErrorContains(t, err, "is not a directory")
	assert.Equal(t, "previous build", readFile(t, out, "index.html"))
	assertEntries(t, root, "public", "static.txt")
}

func TestBuildLeavesNoTemporaryDirectories(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "public")
	writeFile(t, out, "index.html", "previous build")

	_, err := newBuilder(stubPosts{}, stubPages{}, out, "").Build(context.Background())
	require.NoError(t, err)

	assert.Contains(t, readFile(t, out, "index.html"), "data-hero")
	assertEntries(t, root, "public")
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// assertEntries checks dir holds exactly the named entries.
func assertEntries(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Name())
	}
	assert.ElementsMatch(t, names, got)
}

func TestBuildRefusesDangerousOutputDir(t *testing.T) {
	for _, dir := range []string{"", ".", "/"} {
		_, err := newBuilder(stubPosts{}, stubPages{}, dir, "").Build(context.Background())
		assert.ErrorContains(t, err, "refusing to build", dir)
	}
}

func TestBuildRemovesStaleFiles(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	writeFile(t, out, "deleted-post/index.html", "stale")

	_, err := newBuilder(stubPosts{}, stubPages{}, out, "").Build(context.Background())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "deleted-post"))
	assert.True(t, os.IsNotExist(err))
}
