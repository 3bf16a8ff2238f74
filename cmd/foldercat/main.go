// Package main implements foldercat, a folder-watching cat that reports
// filesystem changes and flags names matching configured patterns.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	verbosity  int
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "foldercat",
		Short: "Watch a folder and meow about what changes",
		Long: `foldercat watches a directory tree and prints a notice whenever a
file or folder is created, deleted or modified. Newly created names are
checked against the configured patterns (exact names, extensions,
prefixes and suffixes) and every rule that fires is listed.

Configuration is read from config.json, config.yaml, config.yml or
config.toml in the working directory, or from the same names under
$XDG_CONFIG_HOME/foldercat.`,
		Example: `foldercat --config ./config.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to the configuration file")
	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	cmd.AddCommand(newMatchCmd(opts), newConfigCmd(opts))
	return cmd
}
