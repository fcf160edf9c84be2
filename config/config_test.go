package config

import (
	"os"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	os.Unsetenv(EnvServiceURL)
	os.Unsetenv(EnvMaxAttempts)
	os.Unsetenv(EnvRetryDelayMs)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServiceURL() != DefaultServiceURL {
		t.Errorf("ServiceURL = %q, want %q", cfg.ServiceURL(), DefaultServiceURL)
	}
	if cfg.MaxAttempts() != DefaultMaxAttempts {
		t.Errorf("MaxAttempts = %d, want %d", cfg.MaxAttempts(), DefaultMaxAttempts)
	}
	if cfg.RetryDelay() != DefaultRetryDelay {
		t.Errorf("RetryDelay = %v, want %v", cfg.RetryDelay(), DefaultRetryDelay)
	}
	if cfg.LogLevel() != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel(), DefaultLogLevel)
	}
}

func TestServiceURL_FromEnv(t *testing.T) {
	os.Setenv(EnvServiceURL, "https://cutter.example.com")
	defer os.Unsetenv(EnvServiceURL)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServiceURL() != "https://cutter.example.com" {
		t.Errorf("ServiceURL = %q, want %q", cfg.ServiceURL(), "https://cutter.example.com")
	}
}

func TestMaxAttempts_FromEnv(t *testing.T) {
	os.Setenv(EnvMaxAttempts, "5")
	defer os.Unsetenv(EnvMaxAttempts)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxAttempts() != 5 {
		t.Errorf("MaxAttempts = %d, want 5", cfg.MaxAttempts())
	}
}

func TestMaxAttempts_Invalid(t *testing.T) {
	tests := []string{"0", "-1", "three"}
	for _, v := range tests {
		os.Setenv(EnvMaxAttempts, v)
		if _, err := New(); err == nil {
			t.Errorf("New() with %s=%q: expected error", EnvMaxAttempts, v)
		}
	}
	os.Unsetenv(EnvMaxAttempts)
}

func TestRetryDelay_FromEnv(t *testing.T) {
	os.Setenv(EnvRetryDelayMs, "250")
	defer os.Unsetenv(EnvRetryDelayMs)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RetryDelay() != 250*time.Millisecond {
		t.Errorf("RetryDelay = %v, want 250ms", cfg.RetryDelay())
	}
}

func TestDataDir_FromEnv(t *testing.T) {
	os.Setenv(EnvDataDir, "/tmp/clips-data")
	defer os.Unsetenv(EnvDataDir)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataDir() != "/tmp/clips-data" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir(), "/tmp/clips-data")
	}
	if cfg.DBPath() != "/tmp/clips-data/clips.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath(), "/tmp/clips-data/clips.db")
	}
}
