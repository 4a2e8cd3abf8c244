// Package config loads brandprint configuration from YAML files, .env files
// and BRANDPRINT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/alnah/go-brandprint/internal/fileutil"
	"github.com/alnah/go-brandprint/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound     = errors.New("config file not found")
	ErrEmptyConfigName    = errors.New("config name cannot be empty")
	ErrConfigParse        = errors.New("failed to parse config")
	ErrEnvParse           = errors.New("failed to parse environment")
	ErrFieldTooLong       = errors.New("field exceeds maximum length")
	ErrInvalidValue       = errors.New("invalid config value")
	ErrIncompleteDelivery = errors.New("incomplete delivery settings")
	ErrIncompleteStorage  = errors.New("incomplete storage settings")
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BRANDPRINT_"

// AppName names the user config directory.
const AppName = "brandprint"

// Field length limits.
const (
	MaxNameLength    = 100  // brand or person name
	MaxEmailLength   = 254  // RFC 5321
	MaxPhoneLength   = 30   // formatted phone number
	MaxURLLength     = 2048 // browser limit; also bounds paths
	MaxTaglineLength = 200  // marketing line
	MaxTokenLength   = 256  // provider API tokens
	MaxTagLength     = 100  // Postmark message tag
	MaxAddrLength    = 100  // listen address
)

// Server environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Defaults.
const (
	DefaultTimeout = "30s"
	DefaultAddr    = ":8080"
)

// Config holds all configuration for generation, rendering, serving and
// order fulfillment.
type Config struct {
	Brand    BrandConfig    `yaml:"brand" envPrefix:"BRAND_"`
	Output   OutputConfig   `yaml:"output" envPrefix:"OUTPUT_"`
	Assets   AssetsConfig   `yaml:"assets" envPrefix:"ASSETS_"`
	Render   RenderConfig   `yaml:"render" envPrefix:"RENDER_"`
	Server   ServerConfig   `yaml:"server" envPrefix:"SERVER_"`
	Storage  StorageConfig  `yaml:"storage" envPrefix:"STORAGE_"`
	Delivery DeliveryConfig `yaml:"delivery" envPrefix:"DELIVERY_"`
}

// BrandConfig is the brand profile used to seed fields and pick marks.
type BrandConfig struct {
	Name    string `yaml:"name" env:"NAME"`
	Email   string `yaml:"email" env:"EMAIL"`
	Phone   string `yaml:"phone" env:"PHONE"`
	Website string `yaml:"website" env:"WEBSITE"`
	Tagline string `yaml:"tagline" env:"TAGLINE"`
	Logo    string `yaml:"logo" env:"LOGO"` // URL, data URI or image file path
	Icon    string `yaml:"icon" env:"ICON"` // URL, data URI or image file path
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir" env:"DEFAULT_DIR"` // empty = current directory
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath" env:"BASE_PATH"` // empty = embedded marks
}

// RenderConfig tunes the headless browser.
type RenderConfig struct {
	Timeout string `yaml:"timeout" env:"TIMEOUT"` // Go duration, e.g. "45s"
	Workers int    `yaml:"workers" env:"WORKERS"` // 0 = auto
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr" env:"ADDR"`
	Env  string `yaml:"env" env:"ENV"` // "development" logs to console
}

// StorageConfig configures the S3-compatible bucket orders are published to.
// Storage is disabled when Bucket is empty.
type StorageConfig struct {
	Bucket          string `yaml:"bucket" env:"BUCKET"`
	Region          string `yaml:"region" env:"REGION"`
	Endpoint        string `yaml:"endpoint" env:"ENDPOINT"`
	AccessKeyID     string `yaml:"accessKeyId" env:"ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secretAccessKey" env:"SECRET_ACCESS_KEY"`
	BaseURL         string `yaml:"baseUrl" env:"BASE_URL"`
	UsePathStyle    bool   `yaml:"usePathStyle" env:"USE_PATH_STYLE"`
}

// Enabled reports whether a bucket is configured.
func (s StorageConfig) Enabled() bool {
	return s.Bucket != ""
}

// DeliveryConfig configures order notifications through Postmark.
// Delivery is disabled when ServerToken is empty.
type DeliveryConfig struct {
	ServerToken  string `yaml:"serverToken" env:"SERVER_TOKEN"`
	AccountToken string `yaml:"accountToken" env:"ACCOUNT_TOKEN"`
	From         string `yaml:"from" env:"FROM"`
	To           string `yaml:"to" env:"TO"` // fixed order destination
	Tag          string `yaml:"tag" env:"TAG"`
}

// Enabled reports whether a Postmark token is configured.
func (d DeliveryConfig) Enabled() bool {
	return d.ServerToken != ""
}

// DefaultConfig returns a configuration with rendering defaults and every
// external integration disabled.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{Timeout: DefaultTimeout},
		Server: ServerConfig{Addr: DefaultAddr, Env: EnvProduction},
	}
}

// TimeoutDuration parses Render.Timeout. Empty means DefaultTimeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	s := c.Render.Timeout
	if s == "" {
		s = DefaultTimeout
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout %q: %v", ErrInvalidValue, c.Render.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: render.timeout must be positive, got %s", ErrInvalidValue, d)
	}
	return d, nil
}

// Validate checks field lengths and cross-field consistency. Called by
// LoadConfig and again by callers after applying overrides.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"brand.name", c.Brand.Name, MaxNameLength},
		{"brand.email", c.Brand.Email, MaxEmailLength},
		{"brand.phone", c.Brand.Phone, MaxPhoneLength},
		{"brand.website", c.Brand.Website, MaxURLLength},
		{"brand.tagline", c.Brand.Tagline, MaxTaglineLength},
		{"brand.logo", c.Brand.Logo, MaxURLLength},
		{"brand.icon", c.Brand.Icon, MaxURLLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxURLLength},
		{"assets.basePath", c.Assets.BasePath, MaxURLLength},
		{"server.addr", c.Server.Addr, MaxAddrLength},
		{"storage.bucket", c.Storage.Bucket, MaxNameLength},
		{"storage.region", c.Storage.Region, MaxNameLength},
		{"storage.endpoint", c.Storage.Endpoint, MaxURLLength},
		{"storage.accessKeyId", c.Storage.AccessKeyID, MaxTokenLength},
		{"storage.secretAccessKey", c.Storage.SecretAccessKey, MaxTokenLength},
		{"storage.baseUrl", c.Storage.BaseURL, MaxURLLength},
		{"delivery.serverToken", c.Delivery.ServerToken, MaxTokenLength},
		{"delivery.accountToken", c.Delivery.AccountToken, MaxTokenLength},
		{"delivery.from", c.Delivery.From, MaxEmailLength},
		{"delivery.to", c.Delivery.To, MaxEmailLength},
		{"delivery.tag", c.Delivery.Tag, MaxTagLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("%w: render.workers must not be negative, got %d", ErrInvalidValue, c.Render.Workers)
	}

	switch c.Server.Env {
	case "", EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: server.env %q (must be %s or %s)", ErrInvalidValue, c.Server.Env, EnvDevelopment, EnvProduction)
	}

	if err := validateBasePath(c.Assets.BasePath); err != nil {
		return err
	}

	if c.Storage.Enabled() && c.Storage.Region == "" {
		return fmt.Errorf("%w: storage.region is required when storage.bucket is set", ErrIncompleteStorage)
	}
	if (c.Storage.AccessKeyID == "") != (c.Storage.SecretAccessKey == "") {
		return fmt.Errorf("%w: storage.accessKeyId and storage.secretAccessKey must be set together", ErrIncompleteStorage)
	}

	if c.Delivery.Enabled() {
		if c.Delivery.From == "" || c.Delivery.To == "" {
			return fmt.Errorf("%w: delivery.from and delivery.to are required with a server token", ErrIncompleteDelivery)
		}
		if !strings.Contains(c.Delivery.From, "@") || !strings.Contains(c.Delivery.To, "@") {
			return fmt.Errorf("%w: delivery.from and delivery.to must be e-mail addresses", ErrInvalidValue)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateBasePath checks that a configured asset directory exists.
func validateBasePath(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: assets.basePath does not exist: %s", ErrInvalidValue, path)
		}
		return fmt.Errorf("%w: assets.basePath: %v", ErrInvalidValue, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: assets.basePath is not a directory: %s", ErrInvalidValue, path)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it is searched as <name>.yaml or <name>.yml in the current
// directory, then in the user config directory. Missing files are an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFile(configPath, cfg, true); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// ApplyEnv overrides c with every BRANDPRINT_* variable that is set.
// Unset variables leave the current value untouched.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(nil)
}

func (c *Config) applyEnv(environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrEnvParse, err)
	}
	return nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped and variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if !fileutil.FileExists(p) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}
