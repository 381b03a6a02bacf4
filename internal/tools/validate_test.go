package tools

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateArgumentsAccepts(t *testing.T) {
	def := specFor(t, KeywordResearchName).definition()
	args := map[string]any{
		"keywords": []any{"fitness", "workout"},
		"platform": "ios",
	}
	if err := ValidateArguments(def, args); err != nil {
		t.Fatalf("expected valid arguments, got: %v", err)
	}
}

func TestValidateArgumentsMissingRequired(t *testing.T) {
	def := specFor(t, AppleMetadataName).definition()
	err := ValidateArguments(def, map[string]any{})
	if err == nil {
		t.Fatalf("expected error for missing app")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if !strings.Contains(err.Error(), "app") {
		t.Fatalf("expected message to mention app, got: %v", err)
	}
}

func TestValidateArgumentsWrongType(t *testing.T) {
	def := specFor(t, AppleMetadataName).definition()
	if err := ValidateArguments(def, map[string]any{"app": 123}); err == nil {
		t.Fatalf("expected error for numeric app")
	}
}

func TestValidateArgumentsEnum(t *testing.T) {
	def := specFor(t, ImageDifferenceName).definition()
	args := map[string]any{
		"app_id":            "com.whatsapp",
		"competitor_app_id": "com.spotify.music",
		"country":           "us",
		"platform":          "windows",
		"comparison_type":   "icon",
	}
	if err := ValidateArguments(def, args); err == nil {
		t.Fatalf("expected enum rejection for platform windows")
	}
}
