package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vesper/internal/diag"
	"vesper/internal/examples"
	"vesper/internal/semantics"
	"vesper/internal/snapshot"
)

func newSnapshotCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "snapshot <example> --out <path>",
		Short: "Build, resolve, and encode one example's scope graph to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := examples.All()[args[0]]
			if !ok {
				return fmt.Errorf("no such example: %s", args[0])
			}
			bag := diag.NewBag(maxDiagnostics)
			g, resolved := semantics.Run(build(), semantics.DefaultOptions(), bag)
			if !resolved {
				fmt.Fprintln(os.Stderr, "warning: snapshot written with unresolved symbols")
			}
			data, err := snapshot.Encode(g)
			if err != nil {
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output snapshot path")
	cmd.MarkFlagRequired("out")
	return cmd
}
