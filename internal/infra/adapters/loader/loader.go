// loader implements ports.ForLoading: it walks the two-level
// series/document tree, runs the hygiene check, splits the front
// matter, decodes the episode record and guards against duplicate
// media file references after every series. Any failure aborts the
// whole load, there are no partial results.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"podsite/internal/app/model"
	"podsite/internal/app/ports"
	"podsite/internal/infra/adapters/logger"
)

type forLoading struct{}

// New returns the filesystem episode loader satisfying the
// ports.ForLoading port interface.
func New() ports.ForLoading {
	return &forLoading{}
}

func (f *forLoading) Load(ctx context.Context, root string) ([]model.Episode, error) {
	l := logger.FromContext(ctx)
	series, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("unable to read episodes directory: %w", err)
	}
	var episodes []model.Episode
	for _, s := range series {
		seriesPath := filepath.Join(root, s.Name())
		l.Debug("Scanning series", "dir", seriesPath)
		entries, err := os.ReadDir(seriesPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read series directory: %w", err)
		}
		for _, entry := range entries {
			episode, err := loadDocument(ctx, filepath.Join(seriesPath, entry.Name()))
			if err != nil {
				return nil, err
			}
			episodes = append(episodes, episode)
			l.Info("Loaded episode", "title", episode.Title, "series", s.Name())
		}
		if err := checkDuplicates(episodes); err != nil {
			return nil, err
		}
	}
	l.Info("Episodes loaded", "count", len(episodes))
	return episodes, nil
}

func loadDocument(ctx context.Context, path string) (model.Episode, error) {
	logger.FromContext(ctx).Debug("Loading document", "path", path)
	var none model.Episode
	if filepath.Ext(path) != ".md" {
		return none, fmt.Errorf("%s: %w", path, ports.ErrNotMarkdown)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return none, fmt.Errorf("unable to read %s: %w", path, err)
	}
	content := string(raw)
	if err := checkHygiene(path, content); err != nil {
		return none, err
	}
	meta, body, err := splitFrontMatter(content)
	if err != nil {
		return none, fmt.Errorf("%s: %w", path, err)
	}
	var episode model.Episode
	if err := yaml.Unmarshal([]byte(meta), &episode); err != nil {
		return none, fmt.Errorf("%w in %s: %v", ports.ErrInvalidFrontMatter, path, err)
	}
	if err := episode.Validate(); err != nil {
		return none, fmt.Errorf("%w in %s: %v", ports.ErrInvalidFrontMatter, path, err)
	}
	episode.Path = path
	episode.Body = body
	return episode, nil
}

// checkDuplicates runs over everything accumulated so far, once per
// series boundary rather than per document. The first conflicting
// pair wins and the error names the shared file value and both
// paths. Slug collisions across series are not checked.
func checkDuplicates(episodes []model.Episode) error {
	seen := make(map[string]string, len(episodes))
	for i := range episodes {
		if first, ok := seen[episodes[i].File]; ok {
			return fmt.Errorf("%w: %s in %s and %s", ports.ErrDuplicateFile, episodes[i].File, first, episodes[i].Path)
		}
		seen[episodes[i].File] = episodes[i].Path
	}
	return nil
}
