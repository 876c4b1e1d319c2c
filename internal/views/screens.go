package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TodoChrome carries widget output rendered by the event loop: the text
// input and the (possibly scrolled) task list.
type TodoChrome struct {
	InputView string
	ListView  string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	Summary  string
}

func RenderTodoPanel(tree Tree, chrome TodoChrome) string {
	input := chrome.InputView
	if input == "" {
		input = tree.Input
		if input == "" {
			input = dimStyle.Render(tree.Placeholder)
		}
	}
	list := chrome.ListView
	if list == "" {
		list = RenderRows(tree)
	}

	filters := make([]string, 0, len(tree.Filters))
	for _, f := range tree.Filters {
		filters = append(filters, renderButton(f.Button))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(tree.Title) + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, input, "  ", renderButton(tree.Submit)) + "\n\n")
	b.WriteString(strings.Join(filters, " ") + "\n\n")
	b.WriteString(list + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s", dimStyle.Render(tree.Counts), renderButton(tree.Clear)))
	return b.String()
}

// RenderRows draws the checkbox rows, or the empty-state text.
func RenderRows(tree Tree) string {
	if len(tree.Rows) == 0 {
		return dimStyle.Render("(" + tree.Empty + ")")
	}
	lines := make([]string, 0, len(tree.Rows))
	for _, row := range tree.Rows {
		lines = append(lines, renderRow(row))
	}
	return strings.Join(lines, "\n")
}

func renderRow(row Row) string {
	box := "[ ]"
	text := row.Description
	if row.Completed {
		box = "[x]"
		text = doneStyle.Render(text)
	}
	line := fmt.Sprintf("%s %2d. %s", box, row.Number, text)
	if row.Selected {
		return selectedStyle.Render("> " + line)
	}
	return "  " + line
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s\nadd <text> | toggle <n> | show <filter> | clear | export [label] | copy <n>", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	if data.Summary != "" {
		b.WriteString(data.Summary + "\n\n")
	}
	b.WriteString(strings.Join(data.Bindings, "\n"))
	if data.HelpView != "" {
		b.WriteString("\n\n" + data.HelpView)
	}
	return b.String()
}
