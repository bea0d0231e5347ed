package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	// Test that version is at least "dev" or "unknown"
	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	// Create a config instance to test field access
	cfg := &Cfg{
		FeedsFile:    "./feeds.yml",
		Port:         "8080",
		APIAccessKey: "test-key",
		UserAgent:    "Test Agent",
		Timeout:      15,
		Serve:        true,
		Verbose:      true,
		Debug:        true,
		Version:      "test-version",
		URLs:         []string{"https://example.com/feed.xml"},
	}

	// Test direct field access
	if cfg.FeedsFile != "./feeds.yml" {
		t.Errorf("Expected feeds file './feeds.yml', got '%s'", cfg.FeedsFile)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.APIAccessKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.APIAccessKey)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.Timeout != 15 {
		t.Errorf("Expected timeout 15, got %d", cfg.Timeout)
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
	if len(cfg.URLs) != 1 || cfg.URLs[0] != "https://example.com/feed.xml" {
		t.Errorf("Expected one URL 'https://example.com/feed.xml', got %v", cfg.URLs)
	}
	if !cfg.Serve {
		t.Error("Expected serve mode to be enabled")
	}
	if !cfg.Verbose {
		t.Error("Expected verbose to be enabled")
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}
