package main

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"vesper/internal/diag"
	"vesper/internal/diagfmt"
	"vesper/internal/examples"
	"vesper/internal/semantics"
)

// newCheckCmd fans independent per-example builds out across goroutines:
// each example gets its own scope.Graph and its own diag.Bag, and no
// state crosses between them — consistent with this module carrying no
// incremental or multi-module compilation.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [example...]",
		Short: "Build and resolve one or more built-in example programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := examples.All()
			names := args
			if len(names) == 0 {
				for name := range all {
					names = append(names, name)
				}
				sort.Strings(names)
			}

			results := make(map[string]*diag.Bag, len(names))
			oks := make(map[string]bool, len(names))
			var mu sync.Mutex

			var g errgroup.Group
			for _, name := range names {
				build, found := all[name]
				if !found {
					return fmt.Errorf("no such example: %s", name)
				}
				name := name
				g.Go(func() error {
					bag := diag.NewBag(maxDiagnostics)
					opts := semantics.DefaultOptions()
					_, ok := semantics.Run(build(), opts, bag)
					mu.Lock()
					results[name] = bag
					oks[name] = ok
					mu.Unlock()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			anyFailed := false
			for _, name := range names {
				fmt.Fprintf(os.Stdout, "== %s ==\n", name)
				diagfmt.WriteBag(os.Stdout, visibleDiagnostics(results[name]))
				if !oks[name] {
					anyFailed = true
				}
			}
			if anyFailed {
				return fmt.Errorf("one or more examples failed to fully resolve")
			}
			return nil
		},
	}
}

// visibleDiagnostics drops Info-severity entries when --quiet was
// passed; otherwise it returns bag unchanged.
func visibleDiagnostics(bag *diag.Bag) *diag.Bag {
	if !quiet {
		return bag
	}
	filtered := diag.NewBag(0)
	for _, d := range bag.Items() {
		if d.Severity != diag.Info {
			filtered.Report(d)
		}
	}
	return filtered
}
