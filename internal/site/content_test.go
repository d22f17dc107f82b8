package site

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechampion/site/internal/model"
)

type flakyPosts struct {
	posts []*model.Post
	err   error
}

func (f *flakyPosts) Posts(ctx context.Context) ([]*model.Post, error) {
	return f.posts, f.err
}

func TestContentReload(t *testing.T) {
	posts := &flakyPosts{posts: []*model.Post{
		{PostSummary: model.PostSummary{Title: "One", Slug: "one"}},
	}}
	content := NewContent(posts, stubPages{{Title: "Contact", Slug: "contact"}})

	assert.Empty(t, content.Snapshot().Posts)

	require.NoError(t, content.Reload(context.Background()))
	snap := content.Snapshot()
	post, ok := snap.Post("one")
	require.True(t, ok)
	assert.Equal(t, "One", post.Title)
	_, ok = snap.Page("contact")
	assert.True(t, ok)
	_, ok = snap.Post("missing")
	assert.False(t, ok)
}

func TestContentReloadFailureKeepsPreviousSnapshot(t *testing.T) {
	posts := &flakyPosts{posts: []*model.Post{
		{PostSummary: model.PostSummary{Title: "One", Slug: "one"}},
	}}
	content := NewContent(posts, stubPages{})
	require.NoError(t, content.Reload(context.Background()))

	posts.err = errors.New("broken front matter")
	err := content.Reload(context.Background())

	assert.ErrorContains(t, err, "broken front matter")
	assert.Len(t, content.Snapshot().Posts, 1)
}

func TestContentReloadRejectsSlugConflict(t *testing.T) {
	posts := &flakyPosts{posts: []*model.Post{
		{PostSummary: model.PostSummary{Title: "About", Slug: "about"}},
	}}
	content := NewContent(posts, stubPages{{Title: "About", Slug: "about"}})

	err := content.Reload(context.Background())

	assert.ErrorIs(t, err, ErrSlugConflict)
}

func TestContentReloadRejectsReservedSlug(t *testing.T) {
	content := NewContent(stubPosts{}, stubPages{{Title: "Robots", Slug: "robots.txt"}})

	err := content.Reload(context.Background())

	assert.ErrorIs(t, err, ErrReservedSlug)
	assert.Empty(t, content.Snapshot().Pages)
}
