// prober implements the ports.ForProbing interface: it compares the
// duration and length an episode claims in its front matter with
// what the local media master actually contains.
package prober

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alfg/mp4"
	"github.com/gabriel-vasile/mimetype"
	"github.com/sa6mwa/mp3duration"

	"podsite/internal/app/model"
	"podsite/internal/app/ports"
	"podsite/internal/infra/adapters/logger"
)

type forProbing struct {
	site *model.Site
}

// New returns a prober looking for media masters in the site's
// mediaDir, matched by the base name of each episode's file URL.
func New(site *model.Site) ports.ForProbing {
	return &forProbing{site: site}
}

func (p *forProbing) Verify(ctx context.Context, episodes []model.Episode) error {
	l := logger.FromContext(ctx)
	mismatches := 0
	for i := range episodes {
		e := &episodes[i]
		local := filepath.Join(p.site.MediaDir, path.Base(e.File))
		if _, err := os.Stat(local); err != nil {
			return fmt.Errorf("no local media for %s: %w", e.Path, err)
		}
		size, duration, err := probeMedia(local)
		if err != nil {
			return fmt.Errorf("unable to probe %s: %w", local, err)
		}
		ok := true
		if want, err := strconv.ParseInt(strings.TrimSpace(e.Length), 10, 64); err != nil || want != size {
			l.Warn("Length mismatch", "episode", e.Title, "frontMatter", e.Length, "actual", size)
			ok = false
		}
		if want, err := ParseDisplayDuration(e.Duration); err != nil {
			l.Warn("Unparsable duration", "episode", e.Title, "frontMatter", e.Duration, "error", err)
			ok = false
		} else if delta := want - duration; delta < -time.Second || delta > time.Second {
			l.Warn("Duration mismatch", "episode", e.Title, "frontMatter", e.Duration, "actual", mp3duration.FormatDuration(duration))
			ok = false
		}
		if !ok {
			mismatches++
			continue
		}
		l.Debug("Verified", "episode", e.Title, "file", local)
	}
	if mismatches > 0 {
		return fmt.Errorf("%d episodes do not match their media files", mismatches)
	}
	l.Info("All episodes verified", "count", len(episodes))
	return nil
}

// probeMedia returns the size in bytes and the playing time of a
// media file, reading the moov box for video and decoding frames for
// mp3 audio.
func probeMedia(filename string) (int64, time.Duration, error) {
	mimetype.SetLimit(1024 * 1024)
	mimeType, err := mimetype.DetectFile(filename)
	if err != nil {
		return 0, 0, err
	}
	if strings.HasPrefix(mimeType.String(), "video/") {
		return mp4Duration(filename)
	}
	di, err := mp3duration.ReadFile(filename)
	if err != nil {
		return 0, 0, err
	}
	return di.Length, di.TimeDuration, nil
}

// mp4Duration returns the length in bytes and the duration of an mp4.
func mp4Duration(filename string) (int64, time.Duration, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return 0, 0, err
	}
	m, err := mp4.OpenFromReader(f, info.Size())
	if err != nil {
		return 0, 0, err
	}
	if m == nil || m.Moov == nil || m.Moov.Mvhd == nil {
		return 0, 0, fmt.Errorf("%s does not contain a Moov Mvhd box (maybe not an mp4?)", filename)
	}
	return info.Size(), time.Duration(m.Moov.Mvhd.Duration) * time.Millisecond, nil
}

// ParseDisplayDuration parses the free-form duration text used in
// front matter, accepting H:MM:SS and MM:SS.
func ParseDisplayDuration(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("duration must be H:MM:SS or MM:SS, not %q", s)
	}
	var total time.Duration
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("duration must be H:MM:SS or MM:SS, not %q", s)
		}
		total = total*60 + time.Duration(n)*time.Second
	}
	return total, nil
}
