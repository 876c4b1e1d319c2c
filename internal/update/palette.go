package update

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todolist/internal/commands"
	"github.com/sandeepkv93/todolist/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		return m, m.setStatus("command palette closed", false)
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
}

func (m *Model) closePalette() {
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		log.Printf("palette %q: %v", raw, err)
		return m, m.setStatus(err.Error(), true)
	}

	var followUp tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			draft := m.State.PendingInput
			m.dispatch(model.InputChanged{Text: a.Description})
			m.dispatch(model.SubmitTask{})
			m.dispatch(model.InputChanged{Text: draft})
			return commands.Result{Message: fmt.Sprintf("added: %s", a.Description)}, nil
		},
		Toggle: func(r commands.RowArgs) (commands.Result, error) {
			row, ok := m.tree().RowAt(r.Row - 1)
			if !ok {
				return commands.Result{}, rowOutOfRange(r.Row)
			}
			m.dispatch(row.OnToggle)
			state := "reopened"
			if task, found := m.State.Find(row.ID); found && task.Completed {
				state = "completed"
			}
			return commands.Result{Message: fmt.Sprintf("%s: %s", state, row.Description)}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			f, err := model.ParseFilter(s.Filter)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter %q", s.Filter)}
			}
			m.dispatch(model.FilterChanged{Filter: f})
			return commands.Result{Message: "showing " + strings.ToLower(string(f))}, nil
		},
		Clear: func() (commands.Result, error) {
			before := len(m.State.Tasks)
			m.dispatch(model.ClearCompleted{})
			return commands.Result{Message: fmt.Sprintf("cleared %d completed task(s)", before-len(m.State.Tasks))}, nil
		},
		Export: func(e commands.ExportArgs) (commands.Result, error) {
			followUp = m.exportCmd(e.Label)
			return commands.Result{Message: "exporting..."}, nil
		},
		Copy: func(r commands.RowArgs) (commands.Result, error) {
			row, ok := m.tree().RowAt(r.Row - 1)
			if !ok {
				return commands.Result{}, rowOutOfRange(r.Row)
			}
			followUp = copyCmd(m.clipboard, row.Description)
			return commands.Result{Message: "copying..."}, nil
		},
	})
	if err != nil {
		log.Printf("palette %q: %v", raw, err)
		return m, m.setStatus(err.Error(), true)
	}
	return m, tea.Batch(m.setStatus(res.Message, false), followUp)
}

func rowOutOfRange(row int) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no row %d in the current list", row)}
}
