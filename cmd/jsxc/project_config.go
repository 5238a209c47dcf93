package main

import (
	"os"
	"path/filepath"

	"jsxc/internal/driver"
	"jsxc/internal/project"
)

// loadManifest ищет jsxc.toml начиная с каталога входа.
func loadManifest(input string) (*project.Manifest, error) {
	start := input
	if st, err := os.Stat(input); err == nil && !st.IsDir() {
		start = filepath.Dir(input)
	}
	m, _, err := project.Load(start)
	return m, err
}

func envNoColor() bool {
	cfg := project.Default()
	project.ApplyEnv(&cfg)
	return cfg.NoColor
}

// inRoot anchors relative config paths at the directory of jsxc.toml.
func inRoot(m *project.Manifest, p string) string {
	if p == "" || filepath.IsAbs(p) || m.Path == "" {
		return p
	}
	return filepath.Join(m.Root, p)
}

func openCache(m *project.Manifest, disabled bool) (*driver.DiskCache, error) {
	if disabled || !m.Config.Build.Cache {
		return nil, nil
	}
	dir := m.Config.Build.CacheDir
	// без jsxc.toml кэш живёт в пользовательском каталоге
	if m.Path == "" {
		dir = ""
	}
	return driver.OpenDiskCache(inRoot(m, dir))
}
