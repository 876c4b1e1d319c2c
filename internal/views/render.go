package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	MainPane     string
	SidePane     string
	StatusLine   string
	StatusError  bool
	Footer       string
	Notification string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	titleStyle     = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	primaryStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12"))
	secondaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	selectedStyle  = lipgloss.NewStyle().Reverse(true)
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
)

const (
	mainPaneWidth = 58
	sidePaneWidth = 40
)

func RenderApp(data AppData) string {
	left := panelStyle.Width(mainPaneWidth).Render(data.MainPane)
	row := left
	if strings.TrimSpace(data.SidePane) != "" {
		right := panelStyle.Width(sidePaneWidth).Render(data.SidePane)
		row = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	status := statusStyle.Render(data.StatusLine)
	if data.StatusError {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Notification != "" {
		lines = append(lines, panelStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

func renderButton(b Button) string {
	if b.Primary {
		return primaryStyle.Render("[" + b.Label + "]")
	}
	return secondaryStyle.Render(" " + b.Label + " ")
}
