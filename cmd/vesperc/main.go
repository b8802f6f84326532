// Command vesperc drives the scope-graph builder and type resolver over
// a handful of built-in example programs, since this module carries no
// source-text parser (see the Non-goals in SPEC_FULL.md).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	colorMode      string
	quiet          bool
	maxDiagnostics int
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func colorEnabled() bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "vesperc",
		Short: "Build and resolve scope graphs for example programs",
	}
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational diagnostics")
	rootCmd.PersistentFlags().IntVar(&maxDiagnostics, "max-diagnostics", 100, "cap on diagnostics per file")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSnapshotCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newVersionCmd())

	cobra.OnInitialize(func() {
		color.NoColor = !colorEnabled()
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
