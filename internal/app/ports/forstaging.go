package ports

import "context"

// ForStaging prepares the output directory for a build: clears
// whatever a previous run left there (keeping the directory entry
// itself) and copies the static assets and the image directory into
// it.
type ForStaging interface {
	Stage(ctx context.Context) error
}
