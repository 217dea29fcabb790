package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const validConfig = `
server:
  host: 127.0.0.1
  port: 9090
  mode: debug
  read_timeout: 15s
log:
  level: debug
  format: text
gcp:
  project_id: my-project
  apigee_env: eval
  api_host: api.example.com
  site_url: https://marketplace.example.com
model:
  name: gemini-1.5-flash-002
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("read_timeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.GCP.ProjectID != "my-project" {
		t.Errorf("project_id = %q", cfg.GCP.ProjectID)
	}
	if cfg.GetServerAddr() != "127.0.0.1:9090" {
		t.Errorf("addr = %q", cfg.GetServerAddr())
	}

	// Unset keys fall back to defaults.
	if cfg.GCP.APIHubRegion != "europe-west1" {
		t.Errorf("apihub_region = %q", cfg.GCP.APIHubRegion)
	}
	if cfg.Model.MaxOutputTokens != 8192 {
		t.Errorf("max_output_tokens = %d", cfg.Model.MaxOutputTokens)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  string
		wantErr string
	}{
		{
			name:    "missing project id",
			mutate:  "project_id: my-project",
			wantErr: "gcp.project_id is required",
		},
		{
			name:    "missing apigee env",
			mutate:  "apigee_env: eval",
			wantErr: "gcp.apigee_env is required",
		},
		{
			name:    "missing api host",
			mutate:  "api_host: api.example.com",
			wantErr: "gcp.api_host is required",
		},
		{
			name:    "missing site url",
			mutate:  "site_url: https://marketplace.example.com",
			wantErr: "gcp.site_url is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Replace(validConfig, tt.mutate, "", 1)
			_, err := Load(writeConfig(t, content))
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		wantErr string
	}{
		{"bad mode", "mode: debug", "mode: production", "invalid server mode"},
		{"bad log level", "level: debug", "level: verbose", "invalid log level"},
		{"bad log format", "format: text", "format: xml", "invalid log format"},
		{"bad port", "port: 9090", "port: 70000", "invalid server port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Replace(validConfig, tt.old, tt.new, 1)
			_, err := Load(writeConfig(t, content))
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
