package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todolist/internal/model"
)

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab":
		m.Focus = FocusList
		m.taskInput.Blur()
		return m, nil
	case "enter":
		return m, m.dispatch(model.SubmitTask{})
	}

	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	if value := m.taskInput.Value(); value != m.State.PendingInput {
		m.dispatch(model.InputChanged{Text: value})
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	switch keyStr {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Up, "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case m.Keys.Down, "down":
		if m.Cursor < len(m.State.Visible())-1 {
			m.Cursor++
		}
	case "home", "g":
		m.Cursor = 0
	case "end", "G":
		m.Cursor = len(m.State.Visible()) - 1
	case m.Keys.Toggle, "x", "enter":
		if row, ok := m.tree().RowAt(m.Cursor); ok {
			return m, m.dispatch(row.OnToggle)
		}
	case m.Keys.FilterAll:
		return m, m.dispatch(model.FilterChanged{Filter: model.FilterAll})
	case m.Keys.FilterActive:
		return m, m.dispatch(model.FilterChanged{Filter: model.FilterActive})
	case m.Keys.FilterCompleted:
		return m, m.dispatch(model.FilterChanged{Filter: model.FilterCompleted})
	case m.Keys.CycleFilter:
		return m, m.dispatch(model.FilterChanged{Filter: m.State.Filter.Next()})
	case m.Keys.ClearCompleted:
		return m, m.dispatch(model.ClearCompleted{})
	case m.Keys.FocusInput, "tab":
		m.Focus = FocusInput
		return m, m.taskInput.Focus()
	case m.Keys.Copy:
		if row, ok := m.tree().RowAt(m.Cursor); ok {
			return m, copyCmd(m.clipboard, row.Description)
		}
	case m.Keys.Palette:
		m.Palette = CommandPaletteState{Active: true}
		m.commandInput.SetValue("")
		return m, m.setStatus("command palette active", false)
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			return m, m.setStatus("help shown", false)
		}
		return m, m.setStatus("help hidden", false)
	}
	m.clampCursor()
	return m, nil
}

// keyLabel names keys that have no printable form.
func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
