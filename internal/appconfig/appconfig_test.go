package appconfig

import (
	"testing"
	"time"

	"github.com/appvector/vector-mcp/internal/upstream"
)

func TestDefaults(t *testing.T) {
	var cfg Config
	if got := cfg.ListenAddr(); got != ":3000" {
		t.Fatalf("ListenAddr = %q", got)
	}
	if got := cfg.RequestTimeout(); got != 30*time.Second {
		t.Fatalf("RequestTimeout = %s", got)
	}
	if got := cfg.BaseURL(); got != upstream.DefaultBaseURL {
		t.Fatalf("BaseURL = %q", got)
	}
	if got := cfg.LogFilePath(); got != "" {
		t.Fatalf("LogFilePath = %q", got)
	}
}

func TestOverrides(t *testing.T) {
	cfg := Config{
		Port:           8080,
		TimeoutSeconds: 5,
		APIBaseURL:     "http://127.0.0.1:9999/api",
		LogFile:        "gateway.log",
	}
	if got := cfg.ListenAddr(); got != ":8080" {
		t.Fatalf("ListenAddr = %q", got)
	}
	if got := cfg.RequestTimeout(); got != 5*time.Second {
		t.Fatalf("RequestTimeout = %s", got)
	}
	if got := cfg.BaseURL(); got != "http://127.0.0.1:9999/api" {
		t.Fatalf("BaseURL = %q", got)
	}
	if got := cfg.LogFilePath(); got != "gateway.log" {
		t.Fatalf("LogFilePath = %q", got)
	}
}
