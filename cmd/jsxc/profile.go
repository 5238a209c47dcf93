package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsxc/internal/prof"
)

// setupProfiling включает профилировщики по глобальным флагам.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	flags := cmd.Root().PersistentFlags()
	var (
		opts prof.Options
		err  error
	)
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = flags.GetString("mem-profile"); err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return func() {}, nil
	}
	stop, err := prof.Start(opts)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := stop(); err != nil {
			fmt.Fprintf(os.Stderr, "profile: %v\n", err)
		}
	}, nil
}
