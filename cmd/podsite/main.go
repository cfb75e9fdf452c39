package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"

	"podsite/internal/app/model"
	"podsite/internal/app/ports"
	"podsite/internal/infra/adapters/asker"
	"podsite/internal/infra/adapters/configurator"
	"podsite/internal/infra/adapters/loader"
	"podsite/internal/infra/adapters/logger"
	"podsite/internal/infra/adapters/prober"
	"podsite/internal/infra/adapters/publisher"
	"podsite/internal/infra/adapters/renderer"
	"podsite/internal/infra/adapters/stager"
)

const defaultSiteSpec = "podsite.yaml"

func main() {
	app := &cli.App{
		Name:  "podsite",
		Usage: "Render a podcast site and rss feed from markdown episode documents and publish to Amazon S3.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   defaultSiteSpec,
				Usage:   "Site configuration yaml",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Value:   false,
				Usage:   "Log debug messages",
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "build",
				Aliases: []string{"b"},
				Usage:   "Load all episodes and render the site into the output directory",
				Action:  build,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Value:   false,
						Usage:   "Do not ask if to proceed with an action, just do it",
					},
				},
			},
			{
				Name:    "publish",
				Aliases: []string{"p"},
				Usage:   "Build the site and upload it to the S3 bucket in the site configuration",
				Action:  publish,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Value:   false,
						Usage:   "Do not ask if to proceed with an action, just do it",
					},
					&cli.BoolFlag{
						Name:    "dry-run",
						Aliases: []string{"n"},
						Value:   false,
						Usage:   "Build and diff the feed against the deployed one, but upload nothing",
					},
				},
			},
			{
				Name:   "verify",
				Usage:  "Check every episode's duration and length against the local media files",
				Action: verify,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.New(false).Error(err.Error())
		os.Exit(1)
	}
}

func newContext(c *cli.Context) context.Context {
	return logger.WithLogger(context.Background(), logger.New(c.Bool("verbose")))
}

func loadSite(ctx context.Context, c *cli.Context) (*model.Site, error) {
	return configurator.New(c.String("config")).Load(ctx)
}

// buildSite stages the static assets and renders pages and feed from
// the loaded episodes. Returns the episodes so publish and verify can
// reuse them.
func buildSite(ctx context.Context, site *model.Site, ask ports.ForAsking) ([]model.Episode, error) {
	if err := stager.New(site, ask).Stage(ctx); err != nil {
		return nil, err
	}
	episodes, err := loader.New().Load(ctx, site.EpisodesDir)
	if err != nil {
		return nil, err
	}
	r, err := renderer.New()
	if err != nil {
		return nil, err
	}
	if err := r.WriteSite(ctx, site, episodes); err != nil {
		return nil, err
	}
	return episodes, nil
}

func build(c *cli.Context) error {
	ctx := newContext(c)
	site, err := loadSite(ctx, c)
	if err != nil {
		return err
	}
	episodes, err := buildSite(ctx, site, asker.New(false, c.Bool("force")))
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Site built", "episodes", len(episodes), "output", site.OutputDir)
	return nil
}

func publish(c *cli.Context) error {
	ctx := newContext(c)
	site, err := loadSite(ctx, c)
	if err != nil {
		return err
	}
	if _, err := buildSite(ctx, site, asker.New(false, c.Bool("force"))); err != nil {
		return err
	}
	// A dry-run asker declines the upload question after the diff has
	// been printed.
	ask := asker.New(c.Bool("dry-run"), c.Bool("force"))
	return publisher.New(site, ask).PublishDir(ctx, site.OutputDir)
}

func verify(c *cli.Context) error {
	ctx := newContext(c)
	site, err := loadSite(ctx, c)
	if err != nil {
		return err
	}
	episodes, err := loader.New().Load(ctx, site.EpisodesDir)
	if err != nil {
		return err
	}
	return prober.New(site).Verify(ctx, episodes)
}
