package model

// Site is the main configuration aggregate for the whole podcast
// site, loaded from podsite.yaml by the configurator adapter.
type Site struct {
	Title       string `yaml:"title"`
	Link        string `yaml:"link"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	Language    string `yaml:"language"`
	BaseURL     string `yaml:"baseURL"`

	// EpisodesDir is the root of the two-level series/document tree.
	EpisodesDir string `yaml:"episodesDir"`
	// OutputDir is cleared and re-staged on every build.
	OutputDir string `yaml:"outputDir"`
	// Assets are copied verbatim into OutputDir.
	Assets []string `yaml:"assets,omitempty"`
	// ImagesDir is copied recursively into OutputDir.
	ImagesDir string `yaml:"imagesDir"`
	// MediaDir holds the local media masters checked by verify.
	MediaDir string `yaml:"mediaDir"`

	Aws AwsConfig `yaml:"aws,omitempty"`
}

type AwsConfig struct {
	Profile string `yaml:"profile"`
	Region  string `yaml:"region"`
	Bucket  string `yaml:"bucket"`
}
