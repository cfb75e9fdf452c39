package stager

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"podsite/internal/app/model"
	"podsite/internal/infra/adapters/logger"
)

type fakeAsker struct {
	answer bool
	asked  int
}

func (f *fakeAsker) Ask(ctx context.Context, format string, a ...any) bool {
	f.asked++
	return f.answer
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func testSite(t *testing.T) *model.Site {
	t.Helper()
	work := t.TempDir()
	site := &model.Site{
		OutputDir: filepath.Join(work, "_site"),
		Assets:    []string{filepath.Join(work, "style.css"), filepath.Join(work, "robots.txt")},
		ImagesDir: filepath.Join(work, "images"),
	}
	write(t, site.Assets[0], "body {}")
	write(t, site.Assets[1], "User-agent: *")
	write(t, filepath.Join(site.ImagesDir, "logo.png"), "png bytes")
	return site
}

func TestStage(t *testing.T) {
	site := testSite(t)
	write(t, filepath.Join(site.OutputDir, "stale", "old.html"), "old")

	ask := &fakeAsker{answer: true}
	if err := New(site, ask).Stage(logger.WithDefaultLogger(t.Context())); err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if ask.asked != 1 {
		t.Errorf("asked %d times, want 1", ask.asked)
	}
	if _, err := os.Stat(filepath.Join(site.OutputDir, "stale")); !os.IsNotExist(err) {
		t.Error("stale output entry survived staging")
	}
	for _, want := range []string{"style.css", "robots.txt", filepath.Join("images", "logo.png")} {
		if _, err := os.Stat(filepath.Join(site.OutputDir, want)); err != nil {
			t.Errorf("%s was not staged: %v", want, err)
		}
	}
}

func TestStageCreatesMissingOutputDir(t *testing.T) {
	site := testSite(t)
	ask := &fakeAsker{answer: false}
	if err := New(site, ask).Stage(logger.WithDefaultLogger(t.Context())); err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if ask.asked != 0 {
		t.Error("nothing to clear, should not have asked")
	}
}

func TestStageRefusedClear(t *testing.T) {
	site := testSite(t)
	write(t, filepath.Join(site.OutputDir, "old.html"), "old")
	err := New(site, &fakeAsker{answer: false}).Stage(logger.WithDefaultLogger(t.Context()))
	if err == nil {
		t.Fatal("expected an error when clearing is refused")
	}
	if _, statErr := os.Stat(filepath.Join(site.OutputDir, "old.html")); statErr != nil {
		t.Error("refused clear must leave the output directory untouched")
	}
}
