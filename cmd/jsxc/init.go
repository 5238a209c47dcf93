package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jsxc/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create jsxc.toml with the default settings",
	Long: `Initialize a jsxc project by writing jsxc.toml and a sample src/App.jsx.
Without [dir] the current directory is used; a missing directory is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const sampleApp = `export default function App(props) {
  return (
    <div class="app">
      <h1>{props.title}</h1>
      <button onClick={props.onClick}>click</button>
    </div>
  )
}
`

// runInit создаёт jsxc.toml и пример компонента; существующий jsxc.toml
// не перезаписывается.
func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	configPath := filepath.Join(target, project.ConfigFile)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", configPath)
	}
	if err := os.WriteFile(configPath, []byte(project.DefaultTOML), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", project.ConfigFile, err)
	}

	appPath := filepath.Join(target, "src", "App.jsx")
	createdApp := false
	if _, err := os.Stat(appPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(appPath), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(appPath, []byte(sampleApp), 0o600); err != nil {
			return fmt.Errorf("failed to write App.jsx: %w", err)
		}
		createdApp = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err := filepath.Rel(wd, target); err == nil {
			rel = r
		}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized jsxc project in %s\n", rel)
	fmt.Fprintf(out, "  - %s\n", project.ConfigFile)
	if createdApp {
		fmt.Fprintln(out, "  - src/App.jsx")
	} else {
		fmt.Fprintln(out, "  - src/App.jsx (existing)")
	}
	return nil
}
