package project

import (
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xyproto/env/v2"
)

// Config is the decoded jsxc.toml.
type Config struct {
	Compiler CompilerConfig `toml:"compiler"`
	Build    BuildConfig    `toml:"build"`

	// NoColor comes from JSXC_NO_COLOR only.
	NoColor bool `toml:"-"`
}

type CompilerConfig struct {
	Runtime        string `toml:"runtime"`
	InteropRuntime string `toml:"interop_runtime"`
	Interop        bool   `toml:"interop"`
	Abbreviate     bool   `toml:"abbreviate"`
	// CustomElements are tag names or path.Match patterns (`ion-*`).
	CustomElements []string `toml:"custom_elements"`
	SSR            bool     `toml:"ssr"`
}

type BuildConfig struct {
	Jobs       int      `toml:"jobs"`
	OutDir     string   `toml:"out_dir"`
	Extensions []string `toml:"extensions"`
	Cache      bool     `toml:"cache"`
	CacheDir   string   `toml:"cache_dir"`
}

// Manifest is a loaded configuration together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the configuration used without jsxc.toml.
func Default() Config {
	return Config{
		Compiler: CompilerConfig{
			Runtime:        "vue",
			InteropRuntime: "vue-jsx-vapor",
			Abbreviate:     true,
		},
		Build: BuildConfig{
			Jobs:       runtime.GOMAXPROCS(0),
			Extensions: []string{".jsx"},
			Cache:      true,
			CacheDir:   ".jsxc-cache",
		},
	}
}

// DefaultTOML is written by `jsxc init`.
const DefaultTOML = `[compiler]
runtime = "vue"
interop_runtime = "vue-jsx-vapor"
interop = false
abbreviate = true
custom_elements = []
ssr = false

[build]
jobs = 0
out_dir = "dist"
extensions = [".jsx"]
cache = true
cache_dir = ".jsxc-cache"
`

// Load finds jsxc.toml from startDir upwards and decodes it over the
// defaults. Without a file the defaults are returned with ok == false.
// Environment overrides are applied in both cases.
func Load(startDir string) (*Manifest, bool, error) {
	cfg := Default()
	p, ok, err := FindConfig(startDir)
	if err != nil {
		return nil, false, err
	}
	m := &Manifest{Config: cfg}
	if ok {
		m.Path = p
		m.Root = filepath.Dir(p)
		if err := decodeFile(p, &m.Config); err != nil {
			return nil, true, err
		}
	} else if m.Root, err = filepath.Abs(startDir); err != nil {
		return nil, false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	ApplyEnv(&m.Config)
	if err := m.Config.Validate(); err != nil {
		if m.Path != "" {
			return nil, ok, fmt.Errorf("%s: %w", m.Path, err)
		}
		return nil, ok, err
	}
	return m, ok, nil
}

func decodeFile(p string, cfg *Config) error {
	meta, err := toml.DecodeFile(p, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", p, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys: %s", p, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overrides cfg with JSXC_* environment variables.
func ApplyEnv(cfg *Config) {
	// env кэширует окружение при первом чтении
	env.Load()
	cfg.Compiler.Runtime = env.Str("JSXC_RUNTIME", cfg.Compiler.Runtime)
	cfg.Build.Jobs = env.Int("JSXC_JOBS", cfg.Build.Jobs)
	if env.Has("JSXC_CACHE") {
		cfg.Build.Cache = env.Bool("JSXC_CACHE")
	}
	cfg.NoColor = env.Bool("JSXC_NO_COLOR") || env.Has("NO_COLOR")
}

// Validate checks value ranges; zero jobs means one per CPU.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Compiler.Runtime) == "" {
		return fmt.Errorf("[compiler].runtime must not be empty")
	}
	if c.Compiler.InteropRuntime == "" {
		c.Compiler.InteropRuntime = "vue-jsx-vapor"
	}
	if c.Build.Jobs < 0 {
		return fmt.Errorf("[build].jobs must not be negative, got %d", c.Build.Jobs)
	}
	if c.Build.Jobs == 0 {
		c.Build.Jobs = runtime.GOMAXPROCS(0)
	}
	for _, ext := range c.Build.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("[build].extensions: %q must start with a dot", ext)
		}
	}
	for _, pat := range c.Compiler.CustomElements {
		if _, err := path.Match(pat, ""); err != nil {
			return fmt.Errorf("[compiler].custom_elements: bad pattern %q: %w", pat, err)
		}
	}
	return nil
}

// IsCustomElement builds the tag predicate of the compiler options; nil
// when no custom elements are configured.
func (c *Config) IsCustomElement() func(tag string) bool {
	pats := c.Compiler.CustomElements
	if len(pats) == 0 {
		return nil
	}
	return func(tag string) bool {
		for _, p := range pats {
			if ok, _ := path.Match(p, tag); ok {
				return true
			}
		}
		return false
	}
}

// HasExtension reports whether name has one of the build extensions.
func (c *Config) HasExtension(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range c.Build.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
