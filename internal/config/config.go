// Package config provides configuration loading and management.
package config

// Default configuration values.
const (
	DefaultRepository  = "https://github.com/BeAPI/bea-plugin-boilerplate"
	DefaultPackageName = "plugin-boilerplate"
	DefaultMarker      = "bea-plugin-boilerplate.php"
	DefaultManifest    = "composer.json"
	DefaultMaxAttempts = 25
)

// BoilerplateConfig describes where the plugin boilerplate comes from.
type BoilerplateConfig struct {
	// Repository is the GitHub repository URL archives are downloaded from.
	// Env: WPSCAFFOLD_BOILERPLATE_REPOSITORY
	Repository string `mapstructure:"repository" yaml:"repository"`

	// Name is the package name used when resolving the archive.
	Name string `mapstructure:"name" yaml:"name"`

	// Marker is the file whose presence proves the boilerplate is materialized.
	Marker string `mapstructure:"marker" yaml:"marker"`

	// CacheDir overrides the download directory.
	// Empty means <vendor-dir>/boilerplate next to composer.json.
	CacheDir string `mapstructure:"cacheDir" yaml:"cacheDir"`
}

// PromptConfig controls interactive prompts.
type PromptConfig struct {
	// MaxAttempts bounds the questions asked per parameter, empty answers
	// included. 0 means unbounded.
	MaxAttempts int `mapstructure:"maxAttempts" yaml:"maxAttempts"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the wpscaffold configuration, loaded from ~/.wpscaffold/config.yaml.
type Config struct {
	Boilerplate BoilerplateConfig `mapstructure:"boilerplate" yaml:"boilerplate"`

	// Manifest is the path to the project's composer.json.
	// Env: WPSCAFFOLD_MANIFEST
	Manifest string `mapstructure:"manifest" yaml:"manifest"`

	Prompt PromptConfig `mapstructure:"prompt" yaml:"prompt"`

	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `wpscaffold config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Boilerplate: BoilerplateConfig{
			Repository: DefaultRepository,
			Name:       DefaultPackageName,
			Marker:     DefaultMarker,
		},
		Manifest: DefaultManifest,
		Prompt: PromptConfig{
			MaxAttempts: DefaultMaxAttempts,
		},
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}

// WithDefaults fills empty fields with default values.
func (c *Config) WithDefaults() *Config {
	def := DefaultConfig()
	out := *c

	if out.Boilerplate.Repository == "" {
		out.Boilerplate.Repository = def.Boilerplate.Repository
	}
	if out.Boilerplate.Name == "" {
		out.Boilerplate.Name = def.Boilerplate.Name
	}
	if out.Boilerplate.Marker == "" {
		out.Boilerplate.Marker = def.Boilerplate.Marker
	}
	if out.Manifest == "" {
		out.Manifest = def.Manifest
	}
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = def.Log.Timestamps
	}

	return &out
}
