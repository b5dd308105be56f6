package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/reckon/pkg/formula"
	"github.com/matzehuels/reckon/pkg/solver"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// SolutionListModel - Interactive solution browser
// =============================================================================

// SolutionListModel is the bubbletea model for browsing search results.
// Enter selects a solution and quits; space toggles the evaluation steps of
// the solution under the cursor.
type SolutionListModel[N formula.Number[N]] struct {
	Solutions []solver.Solution[N]
	Target    string
	Cursor    int
	Selected  *solver.Solution[N]
	ShowSteps bool
	Height    int
	Offset    int
}

// NewSolutionListModel creates a new solution list model.
func NewSolutionListModel[N formula.Number[N]](sols []solver.Solution[N], target string) SolutionListModel[N] {
	return SolutionListModel[N]{
		Solutions: sols,
		Target:    target,
		Height:    15,
	}
}

func (m SolutionListModel[N]) Init() tea.Cmd {
	return nil
}

func (m SolutionListModel[N]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Solutions)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "space", "s":
			m.ShowSteps = !m.ShowSteps
		case "enter":
			if len(m.Solutions) == 0 {
				return m, tea.Quit
			}
			sol := m.Solutions[m.Cursor]
			m.Selected = &sol
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
	}
	return m, nil
}

func (m SolutionListModel[N]) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Solutions for %s", m.Target)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space steps  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Solutions) == 0 {
		b.WriteString(StyleWarning.Render("no solutions"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Solutions))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := m.Solutions[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			s.Expr,
			formatRank(s.OrderRank),
			formatRank(s.PairingIndex),
			formatRank(s.OperatorIndex),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("", "Expression", "Order", "Pairing", "Operators").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			base := lipgloss.NewStyle()
			if col >= 2 {
				base = base.Foreground(colorDim)
			}
			if m.Offset+row == m.Cursor {
				if col < 2 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if m.ShowSteps {
		b.WriteString("\n")
		for _, line := range strings.Split(m.Solutions[m.Cursor].Steps, "\n") {
			b.WriteString("  " + StyleValue.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Solutions))))

	return b.String()
}
