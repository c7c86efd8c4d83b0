package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Page != 1 {
		t.Errorf("Page = %d, want 1", cfg.Page)
	}
	if !cfg.UseAttrs || !cfg.WriteAttrs {
		t.Errorf("attrs = use %v / write %v, want both on", cfg.UseAttrs, cfg.WriteAttrs)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if !cfg.FetchURLs || cfg.FetchTimeout != 30*time.Second {
		t.Errorf("fetch = %v / %v, want on with 30s timeout", cfg.FetchURLs, cfg.FetchTimeout)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("ColorMode = %q, want auto", cfg.ColorMode)
	}
}

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/data/scans/", "/data/scans"},
		{"/data/scans///", "/data/scans"},
		{"/data/scans", "/data/scans"},
		{"relative/dir/", "relative/dir"},
		{"/", "/"},
	}
	for _, tt := range tests {
		if got := NormalizeDirArg(tt.in); got != tt.want {
			t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with input dir", func(c *Config) { c.InputDir = "/in" }, false},
		{"missing input dir", func(c *Config) {}, true},
		{"check mode without dir", func(c *Config) { c.CheckOnly = true }, false},
		{"page zero", func(c *Config) { c.InputDir = "/in"; c.Page = 0 }, true},
		{"page negative", func(c *Config) { c.InputDir = "/in"; c.Page = -3 }, true},
		{"workers zero", func(c *Config) { c.InputDir = "/in"; c.Workers = 0 }, true},
		{"timeout zero", func(c *Config) { c.InputDir = "/in"; c.FetchTimeout = 0 }, true},
		{"bad color mode", func(c *Config) { c.InputDir = "/in"; c.ColorMode = "sometimes" }, true},
		{"tag mode complete", func(c *Config) { c.TagFile = "a.pdf"; c.TagCode = "X1" }, false},
		{"tag file without code", func(c *Config) { c.TagFile = "a.pdf" }, true},
		{"tag code without file", func(c *Config) { c.TagCode = "X1" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTagMode(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TagMode() {
		t.Error("defaults should not be in tag mode")
	}
	cfg.TagFile = "a.pdf"
	if !cfg.TagMode() {
		t.Error("setting TagFile should enable tag mode")
	}
}
