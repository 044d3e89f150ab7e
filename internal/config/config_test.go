package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantMsg: "log.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantMsg: "log.format",
		},
		{
			name:    "no OCR languages",
			mutate:  func(c *Config) { c.OCR.Languages = nil },
			wantMsg: "ocr.languages",
		},
		{
			name:    "non-positive max text length",
			mutate:  func(c *Config) { c.Extraction.MaxTextLength = -1 },
			wantMsg: "max_text_length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestApplyDefaultsDoesNotOverrideExplicit(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.OCR.Languages = []string{"eng", "spa"}
	cfg.Extraction.MaxTextLength = 500

	ApplyDefaults(cfg)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, []string{"eng", "spa"}, cfg.OCR.Languages)
	assert.Equal(t, 500, cfg.Extraction.MaxTextLength)
}

func TestApplyDefaultsNilSafe(t *testing.T) {
	ApplyDefaults(nil)
}
