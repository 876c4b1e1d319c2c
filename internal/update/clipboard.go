package update

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type Clipboard interface {
	WriteAll(text string) error
}

type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

type NoopClipboard struct{}

func (NoopClipboard) WriteAll(string) error { return nil }

func copyCmd(c Clipboard, text string) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		return CopyDoneMsg{Text: text, Err: c.WriteAll(text)}
	}
}
