package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechampion/site/internal/app"
	"github.com/jakechampion/site/internal/config"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newServer(t *testing.T) (*httptest.Server, *app.App, string) {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "content/posts/hello-world.md", "---\ntitle: Hello World\ndate: 2020-01-02\n---\nFirst post.\n")
	writeFile(t, root, "content/pages/contact.md", "---\ntitle: Contact\n---\nSay hi.\n")
	writeFile(t, root, "static/css/site.css", "body{}")

	a := app.New(&config.Config{
		SiteURL:       "https://example.com",
		SiteTitle:     "Example",
		ContactPath:   "/contact/",
		ContentPath:   filepath.Join(root, "content"),
		StaticPath:    filepath.Join(root, "static"),
		OutputPath:    filepath.Join(root, "public"),
		ExcerptLength: 200,
		ReadingWPM:    265,
	})
	require.NoError(t, a.Content.Reload(context.Background()))

	srv := httptest.NewServer(SetupRoutes(a))
	t.Cleanup(srv.Close)
	return srv, a, root
}

func get(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestLanding(t *testing.T) {
	srv, _, _ := newServer(t)

	resp, body := get(t, srv.Client(), srv.URL+"/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	assert.Contains(t, body, "data-hero")
	assert.Contains(t, body, `href="/hello-world/"`)
}

func TestPostAndPage(t *testing.T) {
	srv, _, _ := newServer(t)

	resp, body := get(t, srv.Client(), srv.URL+"/hello-world/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "First post.")

	resp, body = get(t, srv.Client(), srv.URL+"/contact/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Say hi.")
}

func TestMissingTrailingSlashRedirects(t *testing.T) {
	srv, _, _ := newServer(t)
	client := srv.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, _ := get(t, client, srv.URL+"/hello-world")

	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/hello-world/", resp.Header.Get("Location"))
}

func TestNotFound(t *testing.T) {
	srv, _, _ := newServer(t)

	resp, body := get(t, srv.Client(), srv.URL+"/nope/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page not found")

	resp, err := srv.Client().Post(srv.URL+"/hello-world/", "text/plain", strings.NewReader("x"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSEOAndStatic(t *testing.T) {
	srv, _, _ := newServer(t)

	resp, body := get(t, srv.Client(), srv.URL+"/sitemap.xml")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<loc>https://example.com/hello-world/</loc>")

	_, body = get(t, srv.Client(), srv.URL+"/robots.txt")
	assert.Contains(t, body, "Sitemap: https://example.com/sitemap.xml")

	resp, body = get(t, srv.Client(), srv.URL+"/static/css/site.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "body{}", body)
}

func TestReloadPicksUpNewPosts(t *testing.T) {
	srv, a, root := newServer(t)
	writeFile(t, root, "content/posts/second.md", "---\ntitle: Second\ndate: 2021-01-01\n---\nAgain.\n")

	require.NoError(t, a.Content.Reload(context.Background()))
	_, body := get(t, srv.Client(), srv.URL+"/")

	require.Contains(t, body, `href="/second/"`)
	assert.Less(t, strings.Index(body, `href="/second/"`), strings.Index(body, `href="/hello-world/"`))
}
