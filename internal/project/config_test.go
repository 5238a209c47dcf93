package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JSXC_RUNTIME", "")
	t.Setenv("JSXC_JOBS", "")
	dir := t.TempDir()
	m, ok, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatal("found config in empty dir")
	}
	if m.Config.Compiler.Runtime != "vue" || !m.Config.Compiler.Abbreviate || !m.Config.Build.Cache {
		t.Fatalf("defaults = %+v", m.Config)
	}
	if m.Config.Build.Jobs <= 0 {
		t.Fatalf("jobs = %d", m.Config.Build.Jobs)
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, DefaultTOML+"\n")
	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path, ok, err := FindConfig(nested)
	if err != nil || !ok {
		t.Fatalf("FindConfig: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("path = %s, want under %s", path, root)
	}
	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Root != root || m.Config.Build.OutDir != "dist" {
		t.Fatalf("manifest = %+v", m)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[compiler\n", "failed to parse TOML"},
		{"unknown key", "[compiler]\nruntme = \"vue\"\n", "unknown keys"},
		{"negative jobs", "[build]\njobs = -1\n", "jobs must not be negative"},
		{"extension", "[build]\nextensions = [\"jsx\"]\n", "must start with a dot"},
		{"pattern", "[compiler]\ncustom_elements = [\"[\"]\n", "bad pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			_, _, err := Load(dir)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[compiler]\nruntime = \"vue\"\n[build]\njobs = 2\ncache = true\n")
	t.Setenv("JSXC_RUNTIME", "vue/vapor")
	t.Setenv("JSXC_JOBS", "7")
	t.Setenv("JSXC_CACHE", "false")
	t.Setenv("JSXC_NO_COLOR", "1")
	m, _, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := m.Config
	if c.Compiler.Runtime != "vue/vapor" || c.Build.Jobs != 7 || c.Build.Cache || !c.NoColor {
		t.Fatalf("config = %+v", c)
	}
}

func TestEnvChangesBetweenLoads(t *testing.T) {
	t.Setenv("JSXC_JOBS", "3")
	c := Default()
	ApplyEnv(&c)
	if c.Build.Jobs != 3 {
		t.Fatalf("jobs = %d, want 3", c.Build.Jobs)
	}
	t.Setenv("JSXC_JOBS", "5")
	c = Default()
	ApplyEnv(&c)
	if c.Build.Jobs != 5 {
		t.Fatalf("jobs after change = %d, want 5", c.Build.Jobs)
	}
}

func TestIsCustomElement(t *testing.T) {
	c := Default()
	if c.IsCustomElement() != nil {
		t.Fatal("predicate without patterns")
	}
	c.Compiler.CustomElements = []string{"ion-*", "my-widget"}
	is := c.IsCustomElement()
	for tag, want := range map[string]bool{
		"ion-button": true,
		"my-widget":  true,
		"my-other":   false,
		"div":        false,
	} {
		if got := is(tag); got != want {
			t.Errorf("IsCustomElement(%q) = %v, want %v", tag, got, want)
		}
	}
}

func TestCacheKey(t *testing.T) {
	cfg := Default()
	a := cfg.CacheKey([]byte("<a/>"), "1.0.0")
	if a != cfg.CacheKey([]byte("<a/>"), "1.0.0") {
		t.Fatal("not deterministic")
	}

	other := Default()
	other.Compiler.CustomElements = []string{"ion-*"}
	tests := []struct {
		name string
		key  Digest
	}{
		{"content", cfg.CacheKey([]byte("<b/>"), "1.0.0")},
		{"version", cfg.CacheKey([]byte("<a/>"), "1.0.1")},
		{"options", other.CacheKey([]byte("<a/>"), "1.0.0")},
		{"boundaries", cfg.CacheKey([]byte("<a/>1"), ".0.0")},
	}
	for _, tt := range tests {
		if tt.key == a {
			t.Errorf("%s change keeps the key", tt.name)
		}
	}
}
