package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taigrr/foldercat/internal/matcher"
)

func newMatchCmd(opts *options) *cobra.Command {
	var isDir bool

	cmd := &cobra.Command{
		Use:   "match NAME...",
		Short: "Check names against the configured patterns without watching",
		Example: `foldercat match tmp_report_bak.log
foldercat match --dir node_modules`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			rules := cfg.FilePatterns
			if isDir {
				rules = cfg.FolderPatterns
			}

			out := cmd.OutOrStdout()
			for _, arg := range args {
				name := filepath.Base(arg)
				matches := matcher.Describe(name, rules, isDir)
				if len(matches) == 0 {
					fmt.Fprintf(out, "%s: no match\n", name)
					continue
				}
				fmt.Fprintf(out, "%s:\n", name)
				for _, m := range matches {
					fmt.Fprintf(out, "  - %s\n", m)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&isDir, "dir", "d", false, "treat names as folders")
	return cmd
}
