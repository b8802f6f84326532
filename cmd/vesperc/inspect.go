package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vesper/internal/diag"
	"vesper/internal/diagfmt"
	"vesper/internal/examples"
	"vesper/internal/scope"
	"vesper/internal/semantics"
	"vesper/internal/snapshot"
)

func newInspectCmd() *cobra.Command {
	var fromSnapshot string
	cmd := &cobra.Command{
		Use:   "inspect [example]",
		Short: "Browse a resolved scope graph interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			var g *scope.Graph

			if fromSnapshot != "" {
				data, err := os.ReadFile(fromSnapshot)
				if err != nil {
					return err
				}
				g, err = snapshot.Decode(data)
				if err != nil {
					return err
				}
			} else {
				name := "point"
				if len(args) > 0 {
					name = args[0]
				}
				build, ok := examples.All()[name]
				if !ok {
					return fmt.Errorf("no such example: %s", name)
				}
				g, _ = semantics.Run(build(), semantics.DefaultOptions(), diag.NopReporter{})
			}

			_, err := tea.NewProgram(newInspectModel(g)).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&fromSnapshot, "snapshot", "", "load a scope graph from a snapshot file instead of an example")
	return cmd
}

// inspectModel is a minimal bubbletea program: the navigation stack IS
// the model's only real state, and every keystroke maps directly onto
// the core's own PushScope/PopScope query API rather than some
// TUI-private notion of "current position".
type inspectModel struct {
	graph   *scope.Graph
	cursor  int
	current []scope.ID // children of graph.CurrentScope(), for the cursor to move over
}

func newInspectModel(g *scope.Graph) inspectModel {
	m := inspectModel{graph: g}
	m.refresh()
	return m
}

func (m *inspectModel) refresh() {
	m.current = m.graph.Children(m.graph.CurrentScope())
	m.cursor = 0
}

func (m inspectModel) Init() tea.Cmd { return nil }

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.current)-1 {
			m.cursor++
		}
	case "enter", "right", "l":
		if len(m.current) > 0 {
			_ = m.graph.PushScope(m.current[m.cursor])
			m.refresh()
		}
	case "backspace", "left", "h":
		_ = m.graph.PopScope()
		m.refresh()
	}
	return m, nil
}

func (m inspectModel) View() string {
	box := diagfmt.ScopeBox(m.graph, m.graph.CurrentScope())

	children := "\nchildren:\n"
	if len(m.current) == 0 {
		children += "  (none)\n"
	}
	for i, id := range m.current {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		s := m.graph.Get(id)
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("<anonymous:%d>", id)
		}
		children += marker + name + "\n"
	}

	hint := "\n↑/↓ move · enter open child · ←/backspace up · q quit\n"
	return box + children + hint
}
