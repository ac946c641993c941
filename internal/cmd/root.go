package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for findup
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "findup [flags] PATTERN...",
		Short: "Find files in the current directory and every parent directory",
		Long: `findup looks for each PATTERN in the starting directory and then in every
parent directory up to the filesystem root, printing every match it finds.

A PATTERN is a relative path. Its last component is matched against the
entries of "<ancestor>/<leading components>" for every ancestor:

  findup go.mod                 # every go.mod from here to /
  findup -p .env                # .env, .env.local, .envrc, ...
  findup -g '*.lock'            # glob patterns, dotfiles only when named
  findup -1 .git                # stop at the nearest match
  findup -C /srv/app config/app.toml

Directories that do not exist at a level are skipped silently. Directories
that exist but cannot be read are reported on stderr and the walk continues.

Configuration is loaded from the nearest .findup.yaml, from $FINDUP_CONFIG,
or from --config. CLI flags override configuration file settings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints errors and owns the exit status
		SilenceErrors: true,
		RunE:          runSearchCommand,
	}

	addSearchFlags(cmd)

	return cmd
}
