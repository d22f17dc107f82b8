package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jakechampion/site/internal/markdown"
	"github.com/jakechampion/site/internal/model"
	"github.com/jakechampion/site/internal/validation"
)

var ErrInvalidPageName = errors.New("page file name is not a valid slug")

// PageService loads standalone pages from <contentPath>/pages, one markdown file per
// page. The file name is the slug, so it follows the same rules as post slugs.
type PageService struct {
	parser   *markdown.Parser
	pagesDir string
}

type pageFrontmatter struct {
	Title       string `yaml:"title" toml:"title"`
	Description string `yaml:"description" toml:"description"`
}

func NewPageService(contentPath string) *PageService {
	return &PageService{
		parser:   markdown.NewParser(),
		pagesDir: filepath.Join(contentPath, "pages"),
	}
}

func (s *PageService) Pages(ctx context.Context) ([]*model.Page, error) {
	files, err := os.ReadDir(s.pagesDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []*model.Page{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory: %w", err)
	}

	var pages []*model.Page
	for _, file := range files {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}

		slug := strings.TrimSuffix(file.Name(), ".md")
		err = validation.ValidateSlug(slug)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrInvalidPageName, filepath.Join(s.pagesDir, file.Name()), err)
		}

		page, err := s.load(slug)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Slug < pages[j].Slug
	})

	return pages, nil
}

func (s *PageService) load(slug string) (*model.Page, error) {
	path := filepath.Join(s.pagesDir, slug+".md")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := s.parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var meta pageFrontmatter
	err = doc.DecodeFrontmatter(&meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		// Generate title from slug
		title = cases.Title(language.English).String(strings.NewReplacer("-", " ", "_", " ").Replace(slug))
	}

	return &model.Page{
		Title:       title,
		Slug:        slug,
		Description: meta.Description,
		SourcePath:  path,
		HTMLContent: string(doc.HTML),
	}, nil
}
