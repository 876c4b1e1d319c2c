package update

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/todolist/internal/config"
	"github.com/sandeepkv93/todolist/internal/model"
	"github.com/sandeepkv93/todolist/internal/views"
)

type FocusMode string

const (
	FocusInput FocusMode = "input"
	FocusList  FocusMode = "list"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Model struct {
	State         model.State
	Cursor        int
	Focus         FocusMode
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Keys          config.Keymap
	Quitting      bool
	LastError     error

	reducer       model.Reducer
	clipboard     Clipboard
	exporter      SnapshotExporter
	exportPath    string
	statusTimeout time.Duration
	statusSeq     int

	taskInput    textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
	listViewport viewport.Model
}

// Options carries the collaborators a Model talks to. Zero values fall back
// to in-process defaults.
type Options struct {
	Reducer   model.Reducer
	Clipboard Clipboard
	Exporter  SnapshotExporter
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

// ClearStatusMsg clears the status bar. A non-zero Seq only clears the status
// it was scheduled for.
type ClearStatusMsg struct {
	Seq int
}

type AppErrorMsg struct {
	Err error
}

type ExportDoneMsg struct {
	SnapshotID string
	Path       string
	Tasks      int
	Err        error
}

type CopyDoneMsg struct {
	Text string
	Err  error
}

func NewModel() Model {
	return NewModelWithConfig(config.Default(), Options{})
}

func NewModelWithConfig(cfg config.Config, opts Options) Model {
	m := Model{
		State:         model.NewState(),
		Focus:         FocusInput,
		Keys:          cfg.Keys,
		reducer:       opts.Reducer,
		clipboard:     opts.Clipboard,
		exporter:      opts.Exporter,
		exportPath:    strings.TrimSpace(cfg.ExportPath),
		statusTimeout: time.Duration(cfg.StatusTimeoutSeconds) * time.Second,
	}
	m.State.Filter = cfg.Filter()
	if m.reducer.NewID == nil || m.reducer.Now == nil {
		def := model.DefaultReducer()
		if m.reducer.NewID == nil {
			m.reducer.NewID = def.NewID
		}
		if m.reducer.Now == nil {
			m.reducer.Now = def.Now
		}
	}
	if m.clipboard == nil {
		if cfg.Clipboard {
			m.clipboard = SystemClipboard{}
		} else {
			m.clipboard = NoopClipboard{}
		}
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.taskInput = textinput.New()
	m.taskInput.Prompt = "add> "
	m.taskInput.Placeholder = views.InputPlaceholder
	m.taskInput.CharLimit = 512
	m.taskInput.Width = 32

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 36

	m.helpModel = help.New()
	m.helpModel.ShowAll = true

	m.listViewport = viewport.New(54, defaultListHeight)
}

const (
	defaultListHeight = 10
	minListHeight     = 3
	// lines taken by header, panel chrome, title, input, filters, counts, status and footer
	reservedHeight = 16
)

func (m *Model) syncBubbleData() {
	if m.taskInput.Value() != m.State.PendingInput {
		m.taskInput.SetValue(m.State.PendingInput)
	}
	if m.Focus == FocusInput && !m.Palette.Active {
		m.taskInput.Focus()
	} else {
		m.taskInput.Blur()
	}

	if m.Palette.Active {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
	if m.commandInput.Value() != m.Palette.Input {
		m.commandInput.SetValue(m.Palette.Input)
	}

	m.clampCursor()
	m.listViewport.SetContent(views.RenderRows(m.tree()))
	switch {
	case m.Cursor < m.listViewport.YOffset:
		m.listViewport.SetYOffset(m.Cursor)
	case m.Cursor >= m.listViewport.YOffset+m.listViewport.Height:
		m.listViewport.SetYOffset(m.Cursor - m.listViewport.Height + 1)
	}
}

func (m *Model) resize(width, height int) {
	listHeight := height - reservedHeight
	if listHeight < minListHeight {
		listHeight = minListHeight
	}
	m.listViewport.Height = listHeight
	if width > 0 {
		m.helpModel.Width = width
	}
}

func (m Model) tree() views.Tree {
	cursor := -1
	if m.Focus == FocusList {
		cursor = m.Cursor
	}
	return views.Project(m.State, views.ProjectOptions{Cursor: cursor})
}

func (m *Model) clampCursor() {
	visible := len(m.State.Visible())
	if m.Cursor >= visible {
		m.Cursor = visible - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
