package renderer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"podsite/internal/app/model"
	"podsite/internal/infra/adapters/logger"
)

func testSite(outputDir string) *model.Site {
	return &model.Site{
		Title:       "Test Pod",
		Link:        "https://pod.example.com",
		Description: "A test podcast.",
		Author:      "Tester",
		Language:    "en",
		BaseURL:     "https://pod.example.com",
		OutputDir:   outputDir,
	}
}

func testEpisodes() []model.Episode {
	slug := "hello-world"
	reddit := "https://reddit.com/r/example/comments/abc"
	date := model.RFC3339Time{Time: time.Date(2023, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))}
	return []model.Episode{
		{
			Title:    "Hello world",
			Date:     date,
			Slug:     &slug,
			File:     "https://cdn.example.com/ep1.mp3",
			Duration: "1:02:03",
			Length:   "49873412",
			Reddit:   &reddit,
			Path:     "_episodes/s1/ep1.md",
			Body:     "Notes with **bold** text.\n",
		},
		{
			Title:    "Second episode",
			Date:     date,
			File:     "https://cdn.example.com/ep2.mp3",
			Duration: "0:45:00",
			Length:   "31000000",
			Path:     "_episodes/s1/ep2.md",
			Body:     "More notes.\n",
		},
	}
}

func TestWriteSite(t *testing.T) {
	out := t.TempDir()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.WriteSite(logger.WithDefaultLogger(t.Context()), testSite(out), testEpisodes()); err != nil {
		t.Fatalf("WriteSite: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Test Pod", "episodes/hello-world.html", "episodes/ep2.html", "1:02:03"} {
		if !strings.Contains(string(index), want) {
			t.Errorf("index.html does not contain %q", want)
		}
	}

	page, err := os.ReadFile(filepath.Join(out, "episodes", "hello-world.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Hello world", "<strong>bold</strong>", "https://cdn.example.com/ep1.mp3", "Discuss on reddit"} {
		if !strings.Contains(string(page), want) {
			t.Errorf("episode page does not contain %q", want)
		}
	}

	feed, err := os.ReadFile(filepath.Join(out, "feed.rss"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`<enclosure url="https://cdn.example.com/ep1.mp3" length="49873412" type="audio/mpeg"/>`,
		"<pubDate>Mon, 01 May 2023 12:00:00 +0200</pubDate>",
		"<itunes:duration>0:45:00</itunes:duration>",
	} {
		if !strings.Contains(string(feed), want) {
			t.Errorf("feed.rss does not contain %q", want)
		}
	}
}

func TestWriteSiteNoReddit(t *testing.T) {
	out := t.TempDir()
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := r.WriteSite(logger.WithDefaultLogger(t.Context()), testSite(out), testEpisodes()); err != nil {
		t.Fatal(err)
	}
	page, err := os.ReadFile(filepath.Join(out, "episodes", "ep2.html"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(page), "reddit") {
		t.Error("episode without a reddit link should not render one")
	}
}

func TestMarkdownToHTML(t *testing.T) {
	tables := []struct {
		md   string
		want string
	}{
		{"plain text", "<p>plain text</p>"},
		{"**bold**", "<strong>bold</strong>"},
		{"[link](https://example.com)", `target="_blank"`},
	}
	for _, table := range tables {
		if got := MarkdownToHTML(table.md); !strings.Contains(got, table.want) {
			t.Errorf("MarkdownToHTML(%q) = %q, want it to contain %q", table.md, got, table.want)
		}
	}
}
