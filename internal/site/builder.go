package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/natefinch/atomic"

	"github.com/jakechampion/site/internal/model"
	"github.com/jakechampion/site/internal/service"
	"github.com/jakechampion/site/internal/validation"
)

var (
	ErrSlugConflict = errors.New("post and page share a slug")
	ErrReservedSlug = errors.New("slug collides with a generated file")
	ErrInvalidSlug  = errors.New("invalid page slug")
	ErrUnsafePath   = errors.New("output path leaves the output directory")
)

// reservedNames are written by every build, so no slug may start with them.
var reservedNames = map[string]bool{
	"index.html":  true,
	"sitemap.xml": true,
	"robots.txt":  true,
	"static":      true,
}

type PostSource interface {
	Posts(ctx context.Context) ([]*model.Post, error)
}

type PageSource interface {
	Pages(ctx context.Context) ([]*model.Page, error)
}

type BuildReport struct {
	Posts    int
	Pages    int
	Files    int
	Duration time.Duration
}

// Builder renders the whole site into OutputDir.
type Builder struct {
	posts     PostSource
	pages     PageSource
	sitemap   *service.SitemapService
	renderer  *Renderer
	outputDir string
	staticDir string
}

type outputFile struct {
	name string
	data []byte
}

func NewBuilder(posts PostSource, pages PageSource, sitemap *service.SitemapService, renderer *Renderer, outputDir, staticDir string) *Builder {
	return &Builder{
		posts:     posts,
		pages:     pages,
		sitemap:   sitemap,
		renderer:  renderer,
		outputDir: outputDir,
		staticDir: staticDir,
	}
}

// Build renders every document in memory first; the output directory is only
// replaced once all of them succeeded.
func (b *Builder) Build(ctx context.Context) (*BuildReport, error) {
	start := time.Now()

	err := checkOutputDir(b.outputDir)
	if err != nil {
		return nil, err
	}

	posts, err := b.posts.Posts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	pages, err := b.pages.Pages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pages: %w", err)
	}

	err = checkSlugs(posts, pages)
	if err != nil {
		return nil, err
	}

	files, err := b.render(ctx, posts, pages)
	if err != nil {
		return nil, err
	}

	err = b.write(files)
	if err != nil {
		return nil, err
	}

	report := &BuildReport{
		Posts:    len(posts),
		Pages:    len(pages),
		Files:    len(files),
		Duration: time.Since(start),
	}
	slog.Info("site built",
		"output", b.outputDir,
		"posts", report.Posts,
		"pages", report.Pages,
		"files", report.Files,
		"duration_ms", report.Duration.Milliseconds(),
	)
	return report, nil
}

func (b *Builder) render(ctx context.Context, posts []*model.Post, pages []*model.Page) ([]outputFile, error) {
	summaries := service.Summaries(posts)
	files := make([]outputFile, 0, len(posts)+len(pages)+3)

	add := func(name string, c templ.Component) error {
		var buf bytes.Buffer
		err := c.Render(ctx, &buf)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", name, err)
		}
		files = append(files, outputFile{name: name, data: buf.Bytes()})
		return nil
	}

	err := add("index.html", b.renderer.Landing(summaries))
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		err = add(path.Join(post.Slug, "index.html"), b.renderer.Post(post))
		if err != nil {
			return nil, err
		}
	}
	for _, page := range pages {
		err = add(path.Join(page.Slug, "index.html"), b.renderer.Page(page))
		if err != nil {
			return nil, err
		}
	}

	sitemap, err := b.sitemap.GenerateSitemap(summaries, pages)
	if err != nil {
		return nil, err
	}
	files = append(files,
		outputFile{name: "sitemap.xml", data: sitemap},
		outputFile{name: "robots.txt", data: b.sitemap.Robots()},
	)

	return files, nil
}

// write fills a sibling temporary directory and swaps it in for the output
// directory, so a failed write leaves the previous build in place.
func (b *Builder) write(files []outputFile) (err error) {
	out := filepath.Clean(b.outputDir)
	parent := filepath.Dir(out)
	err = os.MkdirAll(parent, 0755)
	if err != nil {
		return fmt.Errorf("failed to create output parent directory: %w", err)
	}
	tmp, err := os.MkdirTemp(parent, "."+filepath.Base(out)+"-build-")
	if err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}
	defer func() {
		if err != nil {
			os.RemoveAll(tmp)
		}
	}()
	err = os.Chmod(tmp, 0755)
	if err != nil {
		return fmt.Errorf("failed to set build directory mode: %w", err)
	}

	err = b.copyStatic(tmp)
	if err != nil {
		return err
	}

	for _, f := range files {
		if path.Clean(f.name) != f.name || !filepath.IsLocal(filepath.FromSlash(f.name)) {
			return fmt.Errorf("%w: %s", ErrUnsafePath, f.name)
		}
		target := filepath.Join(tmp, filepath.FromSlash(f.name))
		err = os.MkdirAll(filepath.Dir(target), 0755)
		if err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", f.name, err)
		}
		err = atomic.WriteFile(target, bytes.NewReader(f.data))
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}

	return swapDir(tmp, out)
}

// swapDir moves next into place at out. The previous out is kept aside until the
// rename succeeded and is restored otherwise.
func swapDir(next, out string) error {
	old := next + ".old"
	err := os.Rename(out, old)
	if errors.Is(err, fs.ErrNotExist) {
		err = os.Rename(next, out)
		if err != nil {
			return fmt.Errorf("failed to move build into place: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to move previous build aside: %w", err)
	}

	err = os.Rename(next, out)
	if err != nil {
		if restoreErr := os.Rename(old, out); restoreErr != nil {
			slog.Error("failed to restore previous build", "dir", old, "error", restoreErr)
		}
		return fmt.Errorf("failed to move build into place: %w", err)
	}

	err = os.RemoveAll(old)
	if err != nil {
		slog.Warn("failed to remove previous build", "dir", old, "error", err)
	}
	return nil
}

// copyStatic mirrors the static directory to <dir>/static, matching the /static/
// prefix the layout links to.
func (b *Builder) copyStatic(dir string) error {
	if b.staticDir == "" {
		return nil
	}
	info, err := os.Stat(b.staticDir)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("static directory not found, skipping copy", "dir", b.staticDir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat static directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static path %s is not a directory", b.staticDir)
	}

	err = os.CopyFS(filepath.Join(dir, "static"), os.DirFS(b.staticDir))
	if err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}
	return nil
}

func checkOutputDir(dir string) error {
	clean := filepath.Clean(dir)
	if dir == "" || clean == "." || clean == string(filepath.Separator) {
		return fmt.Errorf("refusing to build into %q", dir)
	}
	return nil
}

// checkSlugs rejects page slugs that are not safe paths, slugs that shadow a
// generated file and pages that share a slug with a post.
func checkSlugs(posts []*model.Post, pages []*model.Page) error {
	taken := make(map[string]bool, len(posts))
	for _, post := range posts {
		if isReserved(post.Slug) {
			return fmt.Errorf("%w: %s", ErrReservedSlug, post.Slug)
		}
		taken[post.Slug] = true
	}
	for _, page := range pages {
		err := validation.ValidateSlug(page.Slug)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidSlug, page.Slug, err)
		}
		if isReserved(page.Slug) {
			return fmt.Errorf("%w: %s", ErrReservedSlug, page.Slug)
		}
		if taken[page.Slug] {
			return fmt.Errorf("%w: %s", ErrSlugConflict, page.Slug)
		}
	}
	return nil
}

func isReserved(slug string) bool {
	first, _, _ := strings.Cut(slug, "/")
	return reservedNames[strings.ToLower(first)]
}
