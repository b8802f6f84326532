package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is set at release time via -ldflags; "dev" covers local builds.
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the vesperc version",
		RunE: func(cmd *cobra.Command, args []string) error {
			label := color.New(color.FgGreen, color.Bold).Sprint("vesperc")
			fmt.Printf("%s %s\n", label, version)
			return nil
		},
	}
}
