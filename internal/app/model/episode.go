package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Episode is one podcast episode, decoded from the front matter of a
// single markdown document under the episodes tree. Path and Body are
// not part of the front matter; the loader fills them in once after a
// successful parse and the record is read-only from then on.
type Episode struct {
	Title    string      `yaml:"title"`
	Date     RFC3339Time `yaml:"date"`
	Slug     *string     `yaml:"slug,omitempty"`
	File     string      `yaml:"file"`
	Duration string      `yaml:"duration"`
	Length   string      `yaml:"length"`
	Reddit   *string     `yaml:"reddit,omitempty"`

	Path string `yaml:"-"`
	Body string `yaml:"-"`
}

// Validate returns an error if a required front matter field is
// missing. Slug and reddit are optional, a nil pointer means the key
// was absent from the document (which is fine and not the same as an
// empty string).
func (e Episode) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("title is required")
	}
	if e.Date.IsZero() {
		return errors.New("date is required")
	}
	if strings.TrimSpace(e.File) == "" {
		return errors.New("file is required")
	}
	if strings.TrimSpace(e.Duration) == "" {
		return errors.New("duration is required")
	}
	if strings.TrimSpace(e.Length) == "" {
		return errors.New("length is required")
	}
	return nil
}

// PageName returns the name used for the episode's rendered page,
// without extension. The slug wins when present, otherwise the
// document's base name is used.
func (e Episode) PageName() string {
	if e.Slug != nil && strings.TrimSpace(*e.Slug) != "" {
		return strings.TrimSpace(*e.Slug)
	}
	base := filepath.Base(e.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// RFC3339Time wraps time.Time with yaml marshalling in RFC3339 format.
// The offset is mandatory, so every episode date is timezone-aware,
// and time.Parse rejects impossible calendar dates instead of
// clamping them.
type RFC3339Time struct {
	time.Time
}

func (t *RFC3339Time) UnmarshalYAML(node *yaml.Node) error {
	newt, err := time.Parse(time.RFC3339, strings.TrimSpace(node.Value))
	if err != nil {
		return fmt.Errorf("invalid date %q: %v", node.Value, err)
	}
	t.Time = newt
	return nil
}

func (t RFC3339Time) MarshalYAML() (interface{}, error) {
	return t.Format(time.RFC3339), nil
}

func (t RFC3339Time) String() string {
	return t.Format(time.RFC3339)
}

// RFC1123Z returns the date the way podcast feed items want it
// (pubDate in the Itunes "RFC2822" format).
func (t RFC3339Time) RFC1123Z() string {
	return t.Format(time.RFC1123Z)
}
