package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Environment variable prefix for wpscaffold configuration.
const envPrefix = "WPSCAFFOLD"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults register every key so AutomaticEnv applies during Unmarshal.
	def := DefaultConfig()
	v.SetDefault("boilerplate.repository", def.Boilerplate.Repository)
	v.SetDefault("boilerplate.name", def.Boilerplate.Name)
	v.SetDefault("boilerplate.marker", def.Boilerplate.Marker)
	v.SetDefault("boilerplate.cacheDir", "")
	v.SetDefault("manifest", def.Manifest)
	v.SetDefault("prompt.maxAttempts", def.Prompt.MaxAttempts)
	v.SetDefault("log.timestamps", *def.Log.Timestamps)

	return &Loader{v: v}
}

// WithFs makes the loader read config files from fs.
func (l *Loader) WithFs(fs afero.Fs) *Loader {
	l.v.SetFs(fs)
	return l
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values; a missing file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg.WithDefaults(), nil
}

// ConfigFileUsed returns the config file path of the last Load.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}
