package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PIXSTASH_STATE_DIR", t.TempDir())
	t.Setenv("PIXSTASH_API_URL", "")
	t.Setenv("PIXSTASH_PAGE_SIZE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Errorf("Expected default API URL, got %q", cfg.APIURL)
	}
	if cfg.PageSize != defaultPageSize {
		t.Errorf("Expected default page size, got %d", cfg.PageSize)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PIXSTASH_STATE_DIR", dir)
	t.Setenv("PIXSTASH_API_URL", "")
	t.Setenv("PIXSTASH_PAGE_SIZE", "")

	content := "api_url: https://gallery.example.com/api\npage_size: 25\n"
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != "https://gallery.example.com/api" {
		t.Errorf("Expected file API URL, got %q", cfg.APIURL)
	}
	if cfg.PageSize != 25 {
		t.Errorf("Expected page size 25, got %d", cfg.PageSize)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PIXSTASH_STATE_DIR", dir)
	t.Setenv("PIXSTASH_API_URL", "https://override.example.com/api")
	t.Setenv("PIXSTASH_PAGE_SIZE", "5")

	content := "api_url: https://gallery.example.com/api\npage_size: 25\n"
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != "https://override.example.com/api" {
		t.Errorf("Expected env API URL, got %q", cfg.APIURL)
	}
	if cfg.PageSize != 5 {
		t.Errorf("Expected env page size 5, got %d", cfg.PageSize)
	}
}

func TestInvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		pageSize string
		file     string
	}{
		{name: "non-numeric page size", pageSize: "ten"},
		{name: "zero page size", pageSize: "0"},
		{name: "malformed config file", file: "api_url: [broken\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PIXSTASH_STATE_DIR", dir)
			t.Setenv("PIXSTASH_API_URL", "")
			t.Setenv("PIXSTASH_PAGE_SIZE", tt.pageSize)

			if tt.file != "" {
				if err := os.WriteFile(filepath.Join(dir, configFile), []byte(tt.file), 0644); err != nil {
					t.Fatalf("WriteFile failed: %v", err)
				}
				defer os.Remove(filepath.Join(dir, configFile))
			}

			if _, err := Load(); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
