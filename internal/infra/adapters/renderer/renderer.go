// renderer implements the ports.ForRendering interface: it writes
// the index page, one page per episode and the podcast RSS feed into
// the site's output directory from embedded templates.
package renderer

import (
	"context"
	_ "embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"os"
	"path/filepath"
	texttemplate "text/template"

	"podsite/internal/app/model"
	"podsite/internal/app/ports"
	"podsite/internal/infra/adapters/logger"
)

//go:embed index.html.tmpl
var indexTemplate string

//go:embed episode.html.tmpl
var episodeTemplate string

//go:embed feed.rss.tmpl
var feedTemplate string

type forRendering struct {
	index   *htmltemplate.Template
	episode *htmltemplate.Template
	feed    *texttemplate.Template
}

// sitePage is the data handed to the index and feed templates.
type sitePage struct {
	Site     *model.Site
	Episodes []model.Episode
}

// episodePage is the data handed to the per-episode template.
type episodePage struct {
	Site    *model.Site
	Episode model.Episode
}

// New parses the embedded templates and returns an adapter
// satisfying the ports.ForRendering port interface.
func New() (ports.ForRendering, error) {
	htmlFuncs := htmltemplate.FuncMap{
		"markdown": func(s string) htmltemplate.HTML {
			return htmltemplate.HTML(MarkdownToHTML(s))
		},
	}
	textFuncs := texttemplate.FuncMap{
		"markdown": MarkdownToHTML,
	}
	index, err := htmltemplate.New("index.html").Funcs(htmlFuncs).Parse(indexTemplate)
	if err != nil {
		return nil, err
	}
	episode, err := htmltemplate.New("episode.html").Funcs(htmlFuncs).Parse(episodeTemplate)
	if err != nil {
		return nil, err
	}
	feed, err := texttemplate.New("feed.rss").Funcs(textFuncs).Parse(feedTemplate)
	if err != nil {
		return nil, err
	}
	return &forRendering{index: index, episode: episode, feed: feed}, nil
}

func (r *forRendering) WriteSite(ctx context.Context, site *model.Site, episodes []model.Episode) error {
	l := logger.FromContext(ctx)

	if err := writeTemplate(r.index, filepath.Join(site.OutputDir, "index.html"), sitePage{site, episodes}); err != nil {
		return fmt.Errorf("unable to render index: %w", err)
	}
	if err := writeTemplate(r.feed, filepath.Join(site.OutputDir, "feed.rss"), sitePage{site, episodes}); err != nil {
		return fmt.Errorf("unable to render feed: %w", err)
	}

	episodesDir := filepath.Join(site.OutputDir, "episodes")
	if err := os.MkdirAll(episodesDir, 0755); err != nil {
		return err
	}
	for i := range episodes {
		out := filepath.Join(episodesDir, episodes[i].PageName()+".html")
		if err := writeTemplate(r.episode, out, episodePage{site, episodes[i]}); err != nil {
			return fmt.Errorf("unable to render %s: %w", out, err)
		}
		l.Debug("Rendered episode page", "title", episodes[i].Title, "file", out)
	}
	l.Info("Site rendered", "episodes", len(episodes), "dir", site.OutputDir)
	return nil
}

// executer covers both html/template and text/template.
type executer interface {
	Execute(wr io.Writer, data any) error
}

func writeTemplate(t executer, path string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
