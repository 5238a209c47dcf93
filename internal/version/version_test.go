package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestBanner(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"0.1.0-dev", "", "", "jsxc 0.1.0-dev"},
		{"1.2.3", "abc123", "", "jsxc 1.2.3 (abc123)"},
		{"1.2.3", "abc123", "2026-01-15", "jsxc 1.2.3 (abc123) built 2026-01-15"},
		{"weird", "", "", "jsxc weird"},
	}
	for _, tt := range tests {
		Version, GitCommit, BuildDate = tt.version, tt.commit, tt.date
		if got := Banner(); got != tt.want {
			t.Errorf("Banner() = %q, want %q", got, tt.want)
		}
	}
}
