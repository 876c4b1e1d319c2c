package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/todolist/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const helpSummary = `**Todo List** keeps tasks for this session only.

- Type in the input and press *enter* to add a task.
- Filters change what is shown, never what is stored.
- *Clear completed* removes every finished task.`

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.bindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	list, input := m.helpBindings()
	return views.RenderHelpPanel(views.HelpPanelData{
		Summary:  views.RenderMarkdown(helpSummary),
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: list,
			full:  [][]key.Binding{list, input},
		}),
	})
}

func (m Model) bindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Up + "/" + m.Keys.Down, Action: "move cursor"},
		{Key: keyLabel(m.Keys.Toggle) + "/x", Action: "toggle task"},
		{Key: m.Keys.FilterAll, Action: "show all"},
		{Key: m.Keys.FilterActive, Action: "show active"},
		{Key: m.Keys.FilterCompleted, Action: "show completed"},
		{Key: m.Keys.CycleFilter, Action: "cycle filter"},
		{Key: m.Keys.ClearCompleted, Action: "clear completed"},
		{Key: m.Keys.FocusInput, Action: "focus input"},
		{Key: m.Keys.Copy, Action: "copy task"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) helpBindings() (list []key.Binding, input []key.Binding) {
	for _, kb := range m.bindings() {
		list = append(list, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	input = []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc/tab", "back to list")),
	}
	return list, input
}
