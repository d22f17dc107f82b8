package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/jakechampion/site/internal/model"
	"github.com/jakechampion/site/internal/validation"
)

const latestPostsTitle = "Latest Posts"

// Landing renders the hero followed by one card per post, in exactly the order given.
// Every record is validated before the first byte is written, so a broken record fails
// the render instead of producing a page with a dead link.
func Landing(hero model.Hero, posts []*model.PostSummary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := validation.ValidatePostSummaries(posts)
		if err != nil {
			return err
		}
		return landing(hero, posts).Render(ctx, w)
	})
}
