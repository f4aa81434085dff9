package config

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/3-lines-studio/landing/internal/assets"
)

// Config holds everything the commands need to locate the site and run the
// server. Values come from defaults, an optional landing.yaml, LANDING_*
// environment variables and command line flags, in increasing priority.
type Config struct {
	Addr        string `mapstructure:"addr"`
	SiteDir     string `mapstructure:"siteDir"`
	ContentFile string `mapstructure:"contentFile"`
	StylesFile  string `mapstructure:"stylesFile"`
	AssetsDir   string `mapstructure:"assetsDir"`
	OutputDir   string `mapstructure:"outputDir"`
	Dev         bool   `mapstructure:"dev"`
	LogLevel    string `mapstructure:"logLevel"`
	LogFormat   string `mapstructure:"logFormat"`
}

type LoadOptions struct {
	// File is an explicit config file. When empty, landing.yaml is looked up
	// in SearchPaths and its absence is not an error.
	File        string
	SearchPaths []string
	Flags       *pflag.FlagSet
}

// Result carries the loaded config plus the file it came from, if any.
type Result struct {
	Config   Config
	FileUsed string
}

// FlagKeys maps command line flag names to config keys.
var FlagKeys = map[string]string{
	"addr":       "addr",
	"site":       "siteDir",
	"content":    "contentFile",
	"styles":     "stylesFile",
	"assets":     "assetsDir",
	"out":        "outputDir",
	"dev":        "dev",
	"log-level":  "logLevel",
	"log-format": "logFormat",
}

func defaults(v *viper.Viper) {
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("siteDir", DefaultSiteDir)
	v.SetDefault("contentFile", "")
	v.SetDefault("stylesFile", assets.DefaultStylesFile)
	v.SetDefault("assetsDir", assets.DefaultAssetsDir)
	v.SetDefault("outputDir", DefaultOutput)
	v.SetDefault("dev", false)
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "console")
}

func Load(opts LoadOptions) (Result, error) {
	v := viper.New()
	defaults(v)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		paths := opts.SearchPaths
		if len(paths) == 0 {
			paths = []string{"."}
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if opts.Flags != nil {
		for name, key := range FlagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Result{}, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var result Result
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || opts.File != "" {
			return Result{}, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		result.FileUsed = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&result.Config); err != nil {
		return Result{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := result.Config.Validate(); err != nil {
		return Result{}, err
	}

	return result, nil
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr is required", ErrInvalidConfig)
	}
	if c.SiteDir == "" {
		return fmt.Errorf("%w: siteDir is required", ErrInvalidConfig)
	}
	for _, f := range []struct{ key, value string }{
		{"contentFile", c.ContentFile},
		{"stylesFile", c.StylesFile},
		{"assetsDir", c.AssetsDir},
	} {
		if f.value == "" {
			continue
		}
		if path.IsAbs(f.value) || strings.HasPrefix(path.Clean(f.value), "..") {
			return fmt.Errorf("%w: %s must be relative to siteDir, got %q", ErrInvalidConfig, f.key, f.value)
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logLevel must be debug, info, warn or error, got %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logFormat must be \"console\" or \"json\", got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
