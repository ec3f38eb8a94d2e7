// Where: cli/internal/version/version_test.go
// What: Tests for the version string.
// Why: Pin the output shape the version command prints.
package version

import (
	"strings"
	"testing"
)

func TestGetVersionCarriesBinaryName(t *testing.T) {
	got := GetVersion()
	if !strings.HasPrefix(got, "create-api ") {
		t.Fatalf("expected binary name prefix, got %q", got)
	}
	if strings.TrimSpace(strings.TrimPrefix(got, "create-api ")) == "" {
		t.Fatalf("expected a revision or dev marker, got %q", got)
	}
}
