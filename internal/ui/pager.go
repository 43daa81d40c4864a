package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewPagerModel returns a Bubble Tea model that scrolls pre-rendered
// content under a title bar.
func NewPagerModel(title, content string) tea.Model {
	return &pagerModel{title: title, content: content}
}

// RunPager displays the content full-screen until the user quits.
func RunPager(title, content string) error {
	p := tea.NewProgram(NewPagerModel(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// One line of header, one of footer.
		height := msg.Height - 2
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	footStyle := lipgloss.NewStyle().Faint(true)

	header := truncate(m.title, m.viewport.Width)
	footer := fmt.Sprintf("%3.f%%  (q to quit)", m.viewport.ScrollPercent()*100)

	return titleStyle.Render(header) + "\n" + m.viewport.View() + "\n" + footStyle.Render(footer)
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
