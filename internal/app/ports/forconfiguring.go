package ports

import (
	"context"

	"podsite/internal/app/model"
)

type ForConfiguring interface {
	Load(ctx context.Context) (*model.Site, error)
}
