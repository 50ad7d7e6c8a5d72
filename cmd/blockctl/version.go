package main

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if jsonOut {
				return printJSON(w, map[string]string{
					"version": version,
					"commit":  commit,
					"built":   date,
				})
			}
			printInfo(w, "blockctl %s\n", version)
			printInfo(w, "  commit: %s\n", commit)
			printInfo(w, "  built: %s\n", date)
			return nil
		},
	}
}
