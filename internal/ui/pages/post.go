package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/jakechampion/site/internal/model"
	"github.com/jakechampion/site/internal/validation"
)

func Post(post *model.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		summary := post.Summary()
		err := validation.ValidatePostSummary(summary)
		if err != nil {
			return err
		}
		return postPage(post, summary).Render(ctx, w)
	})
}
