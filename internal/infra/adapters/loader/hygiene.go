package loader

import (
	"fmt"
	"strings"

	"podsite/internal/app/ports"
)

// U+2010 renders almost identically to the ASCII hyphen, which is how
// it sneaks into copy-pasted show notes.
const abnormalDash = "‐"

var smartQuotes = []string{"“", "”", "‘", "’"}

// checkHygiene scans the complete document text, front matter
// included. It runs before any parsing and has no side effects.
func checkHygiene(path, content string) error {
	if strings.Contains(content, abnormalDash) {
		return fmt.Errorf("%s: %w", path, ports.ErrAbnormalDash)
	}
	for _, q := range smartQuotes {
		if strings.Contains(content, q) {
			return fmt.Errorf("%s: %w", path, ports.ErrSmartQuote)
		}
	}
	return nil
}
