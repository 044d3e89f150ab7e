package config

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultOCRLanguage = "eng"

	DefaultMaxTextLength = 100_000
)

// ApplyDefaults fills every zero-value field in cfg with the application
// default. Fields already set by the caller are left unchanged so that
// explicit configuration always wins. It must run after unmarshalling and
// before Validate so optional-but-defaulted fields are never seen as missing.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if len(cfg.OCR.Languages) == 0 {
		cfg.OCR.Languages = []string{DefaultOCRLanguage}
	}

	if cfg.Extraction.MaxTextLength == 0 {
		cfg.Extraction.MaxTextLength = DefaultMaxTextLength
	}
}
