package diagfmt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vesper/internal/scope"
)

var (
	boxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)

	headingStyle = lipgloss.NewStyle().Bold(true)
	symbolStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))
)

// ScopeBox renders a single scope's name and its directly-declared
// symbols inside a bordered box, the shape the inspect TUI pushes onto
// the screen each time a user navigates to a new scope.
func ScopeBox(g *scope.Graph, id scope.ID) string {
	s := g.Get(id)
	if s == nil {
		return boxStyle.Render("(invalid scope)")
	}

	name := s.Name
	if name == "" {
		name = fmt.Sprintf("<anonymous:%d>", s.ID)
	}

	var b strings.Builder
	fmt.Fprintln(&b, headingStyle.Render(name))
	for _, sym := range g.SymbolsInOrder(id) {
		fmt.Fprintln(&b, symbolStyle.Render(fmt.Sprintf("%-5s %-16s %s", sym.Kind, sym.Name, sym.TypeName)))
	}
	if len(s.Order) == 0 {
		fmt.Fprintln(&b, dimStyle.Sprint("(empty)"))
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
