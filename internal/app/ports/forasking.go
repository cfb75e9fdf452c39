package ports

import "context"

type ForAsking interface {
	// For asking questions in a terminal (or always answer based on
	// dry-run or force flags). Returns false for "no" and true for
	// "yes". Should support exiting the program by some mechanism as
	// well. ctx should/could hold an slog.Logger set with the logger
	// adapter package.
	Ask(ctx context.Context, format string, a ...any) bool
}
