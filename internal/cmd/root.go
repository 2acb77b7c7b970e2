// Package cmd wires the hassmap CLI together.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for hassmap.
// Invoked without a subcommand it generates the manifest for the current
// directory, so a bare `hassmap` in a repository root is the whole workflow.
func NewRootCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "hassmap",
		Short: "Generate a JSON structure map of a home-automation config repository",
		Long: `hassmap walks a Home Assistant / ESPHome / Zigbee2MQTT configuration
repository and writes project_structure.json: the directory tree, per-file
descriptions, and the !include relationships between YAML files.

The manifest is meant for downstream consumers (humans or assistants) that
want a structural map of the repository without re-scanning the filesystem.`,
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	addGenerateFlags(cmd, opts)

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
