// configurator loads the podsite.yaml site specification and applies
// defaults. It implements the ports.ForConfiguring interface.
package configurator

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"podsite/internal/app/model"
	"podsite/internal/app/ports"
)

var defaultSpecfile = "podsite.yaml"

// New returns a local file-based configurator that satisfies the
// ports.ForConfiguring port interface.
func New(siteYamlFilename string) ports.ForConfiguring {
	if siteYamlFilename == "" {
		siteYamlFilename = defaultSpecfile
	}
	return &forConfiguring{specFile: siteYamlFilename}
}

type forConfiguring struct {
	specFile string
}

func (c *forConfiguring) Load(ctx context.Context) (*model.Site, error) {
	f, err := os.Open(c.specFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var site model.Site
	if err := yaml.NewDecoder(f).Decode(&site); err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", c.specFile, err)
	}
	// Set defaults
	if strings.TrimSpace(site.EpisodesDir) == "" {
		site.EpisodesDir = "_episodes"
	}
	if strings.TrimSpace(site.OutputDir) == "" {
		site.OutputDir = "_site"
	}
	if len(site.Assets) == 0 {
		site.Assets = []string{"style.css", "404.html", "robots.txt"}
	}
	if strings.TrimSpace(site.ImagesDir) == "" {
		site.ImagesDir = "images"
	}
	if strings.TrimSpace(site.MediaDir) == "" {
		site.MediaDir = "media"
	}
	if strings.TrimSpace(site.Language) == "" {
		site.Language = "en"
	}
	return &site, nil
}
