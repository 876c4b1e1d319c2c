package update

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todolist/internal/model"
	"github.com/sandeepkv93/todolist/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(views.WindowTitle), textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.Focus == FocusInput {
			return m.handleInputKey(typed)
		}
		return m.handleListKey(typed)
	case model.Event:
		return m, m.dispatch(typed)
	case SetStatusMsg:
		return m, m.setStatus(typed.Text, typed.IsError)
	case ClearStatusMsg:
		if typed.Seq == 0 || typed.Seq == m.statusSeq {
			m.Status = StatusBar{}
		}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			log.Printf("error: %v", typed.Err)
			m.notify("Error", typed.Err.Error(), "error")
			return m, m.setStatus(typed.Err.Error(), true)
		}
		return m, nil
	case ExportDoneMsg:
		if typed.Err != nil {
			m.LastError = typed.Err
			log.Printf("export failed: %v", typed.Err)
			m.notify("Export", typed.Err.Error(), "error")
			return m, m.setStatus("export failed: "+typed.Err.Error(), true)
		}
		text := fmt.Sprintf("exported %d task(s) as snapshot %s", typed.Tasks, typed.SnapshotID)
		if typed.Path != "" {
			text += " in " + typed.Path
		}
		m.notify("Export", text, "info")
		return m, m.setStatus(text, false)
	case CopyDoneMsg:
		if typed.Err != nil {
			m.LastError = typed.Err
			log.Printf("clipboard write failed: %v", typed.Err)
			return m, m.setStatus("copy failed: "+typed.Err.Error(), true)
		}
		return m, m.setStatus(fmt.Sprintf("copied: %s", typed.Text), false)
	}
	return m, nil
}

// dispatch applies ev to the state and reports what changed on the status bar.
func (m *Model) dispatch(ev model.Event) tea.Cmd {
	before := m.State
	m.State = m.reducer.Apply(m.State, ev)
	m.clampCursor()

	switch e := ev.(type) {
	case model.SubmitTask:
		if len(m.State.Tasks) > len(before.Tasks) {
			return m.setStatus("task added", false)
		}
	case model.ToggleTask:
		if task, ok := m.State.Find(e.ID); ok {
			if task.Completed {
				return m.setStatus("completed: "+task.Description, false)
			}
			return m.setStatus("reopened: "+task.Description, false)
		}
	case model.FilterChanged:
		if before.Filter != m.State.Filter {
			return m.setStatus("showing "+strings.ToLower(string(m.State.Filter)), false)
		}
	case model.ClearCompleted:
		if removed := len(before.Tasks) - len(m.State.Tasks); removed > 0 {
			return m.setStatus(fmt.Sprintf("cleared %d completed task(s)", removed), false)
		}
	}
	return nil
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.Status = StatusBar{Text: text, IsError: isErr}
	m.statusSeq++
	if m.statusTimeout <= 0 || text == "" {
		return nil
	}
	seq := m.statusSeq
	return tea.Tick(m.statusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{Seq: seq} })
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	})
	if len(m.Notifications) > 20 {
		m.Notifications = m.Notifications[len(m.Notifications)-20:]
	}
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	tree := m.tree()
	mainPane := views.RenderTodoPanel(tree, views.TodoChrome{
		InputView: m.taskInput.View(),
		ListView:  m.listViewport.View(),
	})
	sidePane := strings.TrimSpace(m.renderCommandPalette() + "\n" + m.renderHelpIfVisible())

	notification := ""
	if len(m.Notifications) > 0 {
		last := m.Notifications[len(m.Notifications)-1]
		notification = views.RenderNotification(last.Level, last.Body)
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("todolist | filter: %s | focus: %s | %s", m.State.Filter, m.Focus, tree.Counts),
		MainPane:     mainPane,
		SidePane:     sidePane,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: notification,
		Footer:       m.footer(),
	})
}

func (m Model) footer() string {
	if m.Focus == FocusInput {
		return "keys: enter add | esc/tab list | ctrl+c quit"
	}
	return fmt.Sprintf("keys: %s/%s move | %s toggle | %s/%s/%s filter | %s clear | %s input | %s cmd | %s help | %s quit",
		m.Keys.Up, m.Keys.Down, keyLabel(m.Keys.Toggle)+"/x",
		m.Keys.FilterAll, m.Keys.FilterActive, m.Keys.FilterCompleted,
		m.Keys.ClearCompleted, m.Keys.FocusInput, m.Keys.Palette, m.Keys.Help, m.Keys.Quit)
}
