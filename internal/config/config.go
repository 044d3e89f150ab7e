// Package config defines all configuration structures for materna. No I/O or
// parsing logic lives here; only plain data types and validation.
package config

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level       string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format      string   `mapstructure:"format"` // "json" | "console"
	OutputPaths []string `mapstructure:"output_paths"`
}

// OCRConfig holds parameters for the optical character recognition engine
// used on image reports. The flat recognition confidence is deliberately not
// configurable; it is a fixed compatibility constant of the pipeline.
type OCRConfig struct {
	// Languages lists the Tesseract language codes tried during
	// recognition, e.g. ["eng"].
	Languages []string `mapstructure:"languages"`

	// DataPath optionally overrides the Tesseract trained-data directory.
	DataPath string `mapstructure:"data_path"`
}

// ExtractionConfig holds tunables for the text extraction pipeline.
type ExtractionConfig struct {
	// MaxTextLength caps the amount of acquired text (in bytes) handed to
	// the pattern layer. Clinical reports are short; the cap guards against
	// pathological uploads.
	MaxTextLength int `mapstructure:"max_text_length"`
}

// MetricsConfig holds instrumentation parameters.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the application.
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	OCR        OCRConfig        `mapstructure:"ocr"`
	Extraction ExtractionConfig `mapstructure:"extraction"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if len(c.OCR.Languages) == 0 {
		return fmt.Errorf("config: ocr.languages must contain at least one language code")
	}

	if c.Extraction.MaxTextLength < 1 {
		return fmt.Errorf("config: extraction.max_text_length must be ≥ 1, got %d", c.Extraction.MaxTextLength)
	}

	return nil
}
