package ports

import (
	"context"

	"podsite/internal/app/model"
)

// ForRendering writes the static site (index page, one page per
// episode and the podcast RSS feed) into the site's output
// directory.
type ForRendering interface {
	WriteSite(ctx context.Context, site *model.Site, episodes []model.Episode) error
}
