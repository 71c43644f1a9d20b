package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/streetplot/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// GraphListModel is the bubbletea model for interactive graph file
// selection, used when a render command runs without a file argument.
type GraphListModel struct {
	Files    []string
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewGraphListModel creates a new graph list model.
func NewGraphListModel(files []string) GraphListModel {
	return GraphListModel{
		Files:  files,
		Height: 15,
	}
}

func (m GraphListModel) Init() tea.Cmd {
	return nil
}

func (m GraphListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Files)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Files[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m GraphListModel) View() string {
	var b strings.Builder
	b.WriteString(StyleHighlight.Render("Select a graph file") + "\n\n")

	end := m.Offset + m.Height
	if end > len(m.Files) {
		end = len(m.Files)
	}
	for i := m.Offset; i < end; i++ {
		name := filepath.Base(m.Files[i])
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("› "+name) + "\n")
		} else {
			b.WriteString(listNormalStyle.Render("  "+name) + "\n")
		}
	}

	b.WriteString("\n" + listDimStyle.Render("↑/↓ move · enter select · q quit") + "\n")
	return b.String()
}

// pickGraphFile offers an interactive selection over the graph JSON files in
// dir. With exactly one candidate it is returned without prompting.
func pickGraphFile(dir string) (string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return "", err
	}
	sort.Strings(files)

	switch len(files) {
	case 0:
		return "", errors.New(errors.ErrCodeNotFound, "no graph files in %s; pass one explicitly", dir)
	case 1:
		return files[0], nil
	}

	model := NewGraphListModel(files)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("graph selection: %w", err)
	}
	selected := final.(GraphListModel).Selected
	if selected == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "no graph file selected")
	}
	return selected, nil
}
