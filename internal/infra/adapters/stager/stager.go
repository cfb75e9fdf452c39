// stager implements the ports.ForStaging interface: it clears the
// output directory of whatever a previous run left behind (keeping
// the directory entry itself) and copies the configured static
// assets and image directory into it.
package stager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"podsite/internal/app/model"
	"podsite/internal/app/ports"
	"podsite/internal/infra/adapters/logger"
)

type forStaging struct {
	site  *model.Site
	asker ports.ForAsking
}

// New returns a stager for site, asking before clearing a non-empty
// output directory.
func New(site *model.Site, asker ports.ForAsking) ports.ForStaging {
	return &forStaging{site: site, asker: asker}
}

func (s *forStaging) Stage(ctx context.Context) error {
	l := logger.FromContext(ctx)
	if err := s.clean(ctx); err != nil {
		return err
	}
	for _, asset := range s.site.Assets {
		if err := copyFile(asset, filepath.Join(s.site.OutputDir, filepath.Base(asset))); err != nil {
			return fmt.Errorf("unable to copy %s to site directory: %w", asset, err)
		}
		l.Debug("Staged asset", "file", asset)
	}
	if s.site.ImagesDir != "" {
		dst := filepath.Join(s.site.OutputDir, filepath.Base(s.site.ImagesDir))
		if err := os.MkdirAll(dst, 0755); err != nil {
			return err
		}
		if err := os.CopyFS(dst, os.DirFS(s.site.ImagesDir)); err != nil {
			return fmt.Errorf("unable to copy %s to site directory: %w", s.site.ImagesDir, err)
		}
		l.Debug("Staged images", "dir", s.site.ImagesDir)
	}
	l.Info("Output directory staged", "dir", s.site.OutputDir)
	return nil
}

// clean removes every entry below the output directory but not the
// directory itself, creating it when missing.
func (s *forStaging) clean(ctx context.Context) error {
	entries, err := os.ReadDir(s.site.OutputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.MkdirAll(s.site.OutputDir, 0755)
		}
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	if !s.asker.Ask(ctx, "Clear %d entries from %s?", len(entries), s.site.OutputDir) {
		return fmt.Errorf("refusing to clear %s", s.site.OutputDir)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(s.site.OutputDir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
