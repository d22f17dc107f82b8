package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/jakechampion/site/internal/markdown"
	"github.com/jakechampion/site/internal/model"
)

var ErrDuplicateSlug = errors.New("duplicate post slug")

// dateLayouts are tried in order when reading the front matter date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	model.DateLayout,
}

type PostOptions struct {
	ExcerptLength int
	ReadingWPM    int
	IncludeDrafts bool
}

// PostService reads blog posts from <contentPath>/posts. Every call re-reads the files,
// so callers that need a stable view should hold on to the returned slice.
type PostService struct {
	parser   *markdown.Parser
	postsDir string
	opts     PostOptions
}

type postFrontmatter struct {
	Title    string   `yaml:"title" toml:"title"`
	Date     any      `yaml:"date" toml:"date"`
	Category string   `yaml:"category" toml:"category"`
	Slug     string   `yaml:"slug" toml:"slug"`
	Tags     []string `yaml:"tags" toml:"tags"`
	Draft    bool     `yaml:"draft" toml:"draft"`
}

func NewPostService(contentPath string, opts PostOptions) *PostService {
	if opts.ExcerptLength <= 0 {
		opts.ExcerptLength = 200
	}
	if opts.ReadingWPM <= 0 {
		opts.ReadingWPM = 265
	}
	return &PostService{
		parser:   markdown.NewParser(),
		postsDir: filepath.Join(contentPath, "posts"),
		opts:     opts,
	}
}

// Posts returns every published post, most recent first. Any unreadable or incomplete
// file fails the whole call; all offending files are reported together.
func (s *PostService) Posts(ctx context.Context) ([]*model.Post, error) {
	_, err := os.Stat(s.postsDir)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("posts directory missing, building without posts", "dir", s.postsDir)
		return []*model.Post{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat posts directory: %w", err)
	}

	var posts []*model.Post
	var errs []error
	err = filepath.WalkDir(s.postsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		post, err := s.load(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if post.Draft && !s.opts.IncludeDrafts {
			slog.Debug("skipping draft", "path", path)
			return nil
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	duplicates := lo.FindDuplicatesBy(posts, func(p *model.Post) string {
		return p.Slug
	})
	if len(duplicates) > 0 {
		slugs := lo.Map(duplicates, func(p *model.Post, _ int) string {
			return p.Slug
		})
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, strings.Join(slugs, ", "))
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})

	return posts, nil
}

// Summaries returns the listing view of posts, in the same order.
func Summaries(posts []*model.Post) []*model.PostSummary {
	return lo.Map(posts, func(p *model.Post, _ int) *model.PostSummary {
		return p.Summary()
	})
}

func (s *PostService) load(path string) (*model.Post, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := s.parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var meta postFrontmatter
	err = doc.DecodeFrontmatter(&meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if strings.TrimSpace(meta.Title) == "" {
		return nil, fmt.Errorf("%s: missing title", path)
	}

	date, err := parseDate(meta.Date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slug, err := s.slugFor(path, meta.Slug)
	if err != nil {
		return nil, err
	}

	return &model.Post{
		PostSummary: model.PostSummary{
			Title:       strings.TrimSpace(meta.Title),
			Slug:        slug,
			Date:        date,
			Category:    strings.TrimSpace(meta.Category),
			Excerpt:     markdown.Excerpt(doc.PlainText, s.opts.ExcerptLength),
			ReadMinutes: markdown.ReadingTime(doc.PlainText, s.opts.ReadingWPM),
		},
		Tags:        meta.Tags,
		Draft:       meta.Draft,
		SourcePath:  path,
		HTMLContent: string(doc.HTML),
	}, nil
}

// slugFor prefers the front matter slug. Otherwise the path below the posts directory
// is used, with "index.md" standing for its directory.
func (s *PostService) slugFor(path, explicit string) (string, error) {
	explicit = strings.Trim(strings.TrimSpace(explicit), "/")
	if explicit != "" {
		return explicit, nil
	}

	rel, err := filepath.Rel(s.postsDir, path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve slug for %s: %w", path, err)
	}
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	if rel == "index" {
		return "", fmt.Errorf("%s: index.md at the posts root needs a slug in its front matter", path)
	}
	rel = strings.TrimSuffix(rel, "/index")

	return strings.ToLower(strings.ReplaceAll(rel, " ", "-")), nil
}

func parseDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			break
		}
		for _, layout := range dateLayouts {
			t, err := time.Parse(layout, v)
			if err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable date %q", v)
	case nil:
	default:
		return time.Time{}, fmt.Errorf("unsupported date value %v", v)
	}
	return time.Time{}, errors.New("missing date")
}
