// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/encoding/htmlindex"
)

// Environment variables that override config file values.
const (
	EnvChromePath = "CHROME_PATH"
	EnvEncoding   = "RESUME_BUILDER_ENCODING"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Template   string `json:"template,omitempty"`    // Path to a custom LaTeX template
	ChromePath string `json:"chrome_path,omitempty"` // Browser used for PDF export
	OutputDir  string `json:"output_dir,omitempty"`  // Directory for exports given as bare file names

	// Output
	Encoding      string `json:"encoding,omitempty" validate:"omitempty,encoding"`                      // WHATWG label for text exports
	DefaultFormat string `json:"default_format,omitempty" validate:"omitempty,oneof=tex docx html pdf"` // Format used when the output path has no extension
	PDFTimeoutSec int    `json:"pdf_timeout_seconds,omitempty" validate:"omitempty,min=1,max=600"`

	// Editing
	UndoLimit    int `json:"undo_limit,omitempty" validate:"omitempty,min=1,max=10000"`
	TypingIdleMS int `json:"typing_idle_ms,omitempty" validate:"omitempty,min=50,max=10000"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Encoding:      "utf-8",
		DefaultFormat: "pdf",
		PDFTimeoutSec: 60,
		UndoLimit:     100,
		TypingIdleMS:  600,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("encoding", func(fl validator.FieldLevel) bool {
		_, err := htmlindex.Get(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' fails %q (got %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// ApplyEnv overrides fields from the environment. Call it after godotenv has
// loaded any .env file.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvChromePath)); v != "" {
		c.ChromePath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvEncoding)); v != "" {
		c.Encoding = v
	}
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Encoding == "" {
		result.Encoding = defaults.Encoding
	}
	if result.DefaultFormat == "" {
		result.DefaultFormat = defaults.DefaultFormat
	}

	// Int fields: use default if zero
	if result.PDFTimeoutSec == 0 {
		result.PDFTimeoutSec = defaults.PDFTimeoutSec
	}
	if result.UndoLimit == 0 {
		result.UndoLimit = defaults.UndoLimit
	}
	if result.TypingIdleMS == 0 {
		result.TypingIdleMS = defaults.TypingIdleMS
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// PDFTimeout returns the PDF export timeout, or zero when unset.
func (c *Config) PDFTimeout() time.Duration {
	return time.Duration(c.PDFTimeoutSec) * time.Second
}

// TypingIdle returns the pause that ends a header typing burst, or zero when unset.
func (c *Config) TypingIdle() time.Duration {
	return time.Duration(c.TypingIdleMS) * time.Millisecond
}
