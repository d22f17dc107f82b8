package site

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/jakechampion/site/internal/model"
)

// Snapshot is an immutable view of the content tree at one point in time.
type Snapshot struct {
	Posts    []*model.Post
	Pages    []*model.Page
	LoadedAt time.Time
}

func (s *Snapshot) Post(slug string) (*model.Post, bool) {
	return lo.Find(s.Posts, func(p *model.Post) bool {
		return p.Slug == slug
	})
}

func (s *Snapshot) Page(slug string) (*model.Page, bool) {
	return lo.Find(s.Pages, func(p *model.Page) bool {
		return p.Slug == slug
	})
}

// Content caches the parsed content tree for the preview server. Readers always see
// a complete snapshot; a failed reload keeps serving the previous one.
type Content struct {
	posts PostSource
	pages PageSource

	mu   sync.RWMutex
	snap *Snapshot
}

func NewContent(posts PostSource, pages PageSource) *Content {
	return &Content{
		posts: posts,
		pages: pages,
		snap:  &Snapshot{},
	}
}

func (c *Content) Reload(ctx context.Context) error {
	posts, err := c.posts.Posts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}
	pages, err := c.pages.Pages(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pages: %w", err)
	}
	err = checkSlugs(posts, pages)
	if err != nil {
		return err
	}

	snap := &Snapshot{Posts: posts, Pages: pages, LoadedAt: time.Now()}

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()

	slog.Debug("content reloaded", "posts", len(posts), "pages", len(pages))
	return nil
}

func (c *Content) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}
