package loader

import (
	"strings"

	"podsite/internal/app/ports"
)

const delimiter = "---"

// splitFrontMatter splits a document into its front matter region and
// body. The document must start with an opening "---" line; the
// closing delimiter is the first occurrence of "---" at or after byte
// offset 4, not a balanced search. The body is everything four bytes
// past the start of the closing delimiter, byte for byte as found in
// the source (empty when the document ends at the closing marker).
func splitFrontMatter(content string) (meta, body string, err error) {
	if !strings.HasPrefix(content, delimiter+"\n") {
		return "", "", ports.ErrNoFrontMatter
	}
	rel := strings.Index(content[4:], delimiter)
	if rel < 0 {
		return "", "", ports.ErrNoClosingDashes
	}
	idx := rel + 4
	meta = content[4:idx]
	if idx+4 <= len(content) {
		body = content[idx+4:]
	}
	return meta, body, nil
}
