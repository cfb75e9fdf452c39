package ports

import (
	"context"

	"podsite/internal/app/model"
)

// ForProbing checks episode front matter against the local media
// masters: the duration and length display values must match what
// the media files actually contain.
type ForProbing interface {
	Verify(ctx context.Context, episodes []model.Episode) error
}
