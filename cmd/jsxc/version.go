package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jsxc/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show jsxc build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		switch strings.ToLower(format) {
		case "pretty":
			fmt.Fprintln(cmd.OutOrStdout(), version.Banner())
			return nil
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(versionPayload{
				Tool:      "jsxc",
				Version:   version.Version,
				GitCommit: version.GitCommit,
				BuildDate: version.BuildDate,
			})
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
		}
	},
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}
