package validation

import (
	"errors"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jakechampion/site/internal/model"
)

// ErrInvalidPost marks a post summary that cannot be rendered.
var ErrInvalidPost = errors.New("invalid post summary")

// slugPattern allows nested slugs ("2020/hello") but no empty segments, spaces or
// dot segments. Dots may only separate other characters, so "." and ".." never match.
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_~-]*(\.[A-Za-z0-9_~-]+)*(/[A-Za-z0-9][A-Za-z0-9_~-]*(\.[A-Za-z0-9_~-]+)*)*$`)

var slugRules = []validation.Rule{
	validation.Required,
	validation.Match(slugPattern).Error("must be path segments without spaces or dot segments"),
}

// ValidateSlug checks a slug used as both a URL path and an output directory.
func ValidateSlug(slug string) error {
	return validation.Validate(slug, slugRules...)
}

// ValidatePostSummary checks the attributes a listing card cannot do without.
func ValidatePostSummary(p *model.PostSummary) error {
	if p == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidPost)
	}

	err := validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Slug, slugRules...),
		validation.Field(&p.Date, validation.Required),
		validation.Field(&p.ReadMinutes, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidPost, p.Slug, err)
	}
	return nil
}

// ValidatePostSummaries validates every record in order and stops at the first failure.
func ValidatePostSummaries(posts []*model.PostSummary) error {
	for i, p := range posts {
		err := ValidatePostSummary(p)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
