package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	if err := os.WriteFile(keyFile, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	t.Setenv("CV_SCREENER_TEST_KEY", " from-env ")
	t.Setenv("CV_SCREENER_UNSET_KEY", "")

	tests := []struct {
		name   string
		src    Source
		expect string
	}{
		{
			name:   "file wins",
			src:    Source{File: keyFile, Env: "CV_SCREENER_TEST_KEY", Value: "inline"},
			expect: "from-file",
		},
		{
			name:   "env before inline",
			src:    Source{Env: "CV_SCREENER_TEST_KEY", Value: "inline"},
			expect: "from-env",
		},
		{
			name:   "inline fallback",
			src:    Source{Env: "CV_SCREENER_UNSET_KEY", Value: " inline "},
			expect: "inline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("CV_SCREENER_UNSET_KEY", "")

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("write empty file: %v", err)
	}

	if _, err := Load(Source{Name: "gemini api key", File: empty}); err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty file error, got %v", err)
	}

	if _, err := Load(Source{Name: "gemini api key", File: filepath.Join(dir, "missing")}); err == nil {
		t.Fatalf("expected error for missing file")
	}

	_, err := Load(Source{Name: "gemini api key", Env: "CV_SCREENER_UNSET_KEY"})
	if err == nil || !strings.Contains(err.Error(), "$CV_SCREENER_UNSET_KEY") {
		t.Fatalf("expected env hint in error, got %v", err)
	}

	if _, err := Load(Source{}); err == nil || err.Error() != "secret is not configured" {
		t.Fatalf("expected default name in error, got %v", err)
	}
}
