package cli

import (
	"testing"

	"github.com/appvector/vector-mcp/internal/tools"
)

func TestParseCallArgs(t *testing.T) {
	payload, err := parseCallArgs(`{"app":"com.spotify.music","page":2}`)
	if err != nil {
		t.Fatalf("parseCallArgs error: %v", err)
	}
	if payload["app"] != "com.spotify.music" {
		t.Fatalf("unexpected payload: %v", payload)
	}

	payload, err = parseCallArgs("  ")
	if err != nil || len(payload) != 0 {
		t.Fatalf("expected empty payload for blank input, got %v err=%v", payload, err)
	}

	if _, err := parseCallArgs(`{"app":`); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestRequiredFields(t *testing.T) {
	for _, def := range tools.Catalog() {
		if def.Name == tools.AppleKeywordRankName {
			req := requiredFields(def)
			if len(req) != 2 || req[0] != "app" || req[1] != "keywords" {
				t.Fatalf("unexpected required fields %v", req)
			}
			return
		}
	}
	t.Fatalf("tool not found in catalog")
}

func TestCollectCommandData(t *testing.T) {
	data := collectCommandData(rootCmd, "", "")
	if len(data) == 0 {
		t.Fatalf("expected command data")
	}
	if data[0].path != "vector-mcp" {
		t.Fatalf("unexpected root path %q", data[0].path)
	}
}

func TestMaskToken(t *testing.T) {
	if got := maskToken(""); got != "(not set)" {
		t.Fatalf("empty token: %s", got)
	}
	if got := maskToken("abcd1234efgh"); got != "abcd********" {
		t.Fatalf("long token: %s", got)
	}
	if got := maskToken("short"); got != "*****" {
		t.Fatalf("short token: %s", got)
	}
}
