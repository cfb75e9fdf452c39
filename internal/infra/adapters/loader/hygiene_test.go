package loader

import (
	"errors"
	"testing"

	"podsite/internal/app/ports"
)

func TestCheckHygiene(t *testing.T) {
	tables := []struct {
		name    string
		content string
		want    error
	}{
		{"plain ascii", "---\ntitle: Hello\n---\nA plain-text body with \"quotes\" and 'apostrophes'.\n", nil},
		{"regular hyphen ok", "a well-known hyphen", nil},
		{"en and em dashes ok", "ranges – like this — are fine", nil},
		{"unicode hyphen in body", "---\ntitle: x\n---\na‐b\n", ports.ErrAbnormalDash},
		{"unicode hyphen in front matter", "---\ntitle: a‐b\n---\nbody\n", ports.ErrAbnormalDash},
		{"left double quote", "she said “hello", ports.ErrSmartQuote},
		{"right double quote", "hello” she said", ports.ErrSmartQuote},
		{"left single quote", "‘quoted", ports.ErrSmartQuote},
		{"right single quote", "it’s", ports.ErrSmartQuote},
	}
	for _, table := range tables {
		err := checkHygiene("series/doc.md", table.content)
		if table.want == nil {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", table.name, err)
			}
			continue
		}
		if !errors.Is(err, table.want) {
			t.Errorf("%s: got %v, want %v", table.name, err, table.want)
		}
	}
}
