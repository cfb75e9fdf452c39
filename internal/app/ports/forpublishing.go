package ports

import "context"

// ForPublishing uploads a fully staged site directory to final
// storage (S3 in the default adapter).
type ForPublishing interface {
	PublishDir(ctx context.Context, dir string) error
}
