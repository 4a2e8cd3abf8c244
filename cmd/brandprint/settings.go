package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/alnah/go-brandprint"
	"github.com/alnah/go-brandprint/internal/config"
)

// dotEnvFile is loaded from the working directory when present.
const dotEnvFile = ".env"

// loadSettings resolves configuration with precedence env > file > defaults.
// Command flags are merged by the caller, which then calls Validate.
// Without --config, a brandprint.yaml in the search paths is optional.
func loadSettings(common commonFlags) (*config.Config, error) {
	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrEnvParse, err)
	}

	var cfg *config.Config
	if common.config != "" {
		loaded, err := config.LoadConfig(common.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		loaded, err := config.LoadConfig(config.AppName)
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			cfg = config.DefaultConfig()
		case err != nil:
			return nil, err
		default:
			cfg = loaded
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeRenderFlags applies non-empty render flags to cfg.
func mergeRenderFlags(f renderFlags, cfg *config.Config) {
	if f.timeout != "" {
		cfg.Render.Timeout = f.timeout
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
}

// converterOptions translates the render section into converter options.
func converterOptions(cfg *config.Config) ([]brandprint.Option, time.Duration, error) {
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, 0, err
	}
	opts := []brandprint.Option{brandprint.WithTimeout(timeout)}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, brandprint.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts, timeout, nil
}
