package ports

import (
	"context"
	"errors"

	"podsite/internal/app/model"
)

var (
	// ErrNotMarkdown is returned when a document level directory
	// entry does not have the .md extension. The whole load fails,
	// nothing is skipped.
	ErrNotMarkdown = errors.New("not a markdown file")
	// ErrNoFrontMatter is returned when a document does not start
	// with the opening '---' delimiter line (an empty file fails the
	// same way).
	ErrNoFrontMatter = errors.New("does not start with '---'")
	// ErrNoClosingDashes is returned when a document never closes
	// its front matter with a second '---'.
	ErrNoClosingDashes = errors.New("does not contain the second '---' closing the front matter")
	// ErrAbnormalDash is returned when a document contains the
	// unicode hyphen U+2010 instead of a plain ASCII hyphen.
	ErrAbnormalDash = errors.New("contains a unicode hyphen (U+2010), use a regular hyphen")
	// ErrSmartQuote is returned when a document contains curly
	// quotation marks instead of straight ones.
	ErrSmartQuote = errors.New("contains smart quotes, use straight quotes")
	// ErrInvalidFrontMatter is returned when the front matter cannot
	// be decoded into an episode or a required field is missing.
	ErrInvalidFrontMatter = errors.New("invalid front matter")
	// ErrDuplicateFile is returned when two episodes reference the
	// same media file.
	ErrDuplicateFile = errors.New("duplicate media file reference")
)

// ForLoading loads every episode document below root (exactly two
// levels: series directories containing markdown documents) and
// returns the episodes in enumeration order. The first problem
// encountered aborts the whole load; there are no partial results.
// ctx should/could hold an slog.Logger set with the logger adapter
// package (logger.WithLogger or logger.WithDefaultLogger).
type ForLoading interface {
	Load(ctx context.Context, root string) ([]model.Episode, error)
}
