package views

import (
	"fmt"

	"github.com/sandeepkv93/todolist/internal/model"
)

const (
	WindowTitle      = "todolist"
	TitleText        = "Todo List"
	InputPlaceholder = "What needs to be done?"
	SubmitLabel      = "Add Todo"
	ClearLabel       = "Clear completed"
)

type Button struct {
	Label   string
	Primary bool
}

type FilterButton struct {
	Button
	Filter model.Filter
	Event  model.FilterChanged
}

// Row is one visible task. OnToggle is bound to the task id when the tree is
// built, so dispatching it later can never reach a different task.
type Row struct {
	Number      int
	ID          model.TaskID
	Description string
	Completed   bool
	Selected    bool
	OnToggle    model.ToggleTask
}

type Tree struct {
	Title       string
	Placeholder string
	Input       string
	Submit      Button
	Filters     []FilterButton
	Rows        []Row
	Counts      string
	Empty       string
	Clear       Button
}

type ProjectOptions struct {
	Cursor int
}

// Project builds the display tree for s. It reads s only.
func Project(s model.State, opts ProjectOptions) Tree {
	tree := Tree{
		Title:       TitleText,
		Placeholder: InputPlaceholder,
		Input:       s.PendingInput,
		Submit:      Button{Label: SubmitLabel, Primary: true},
		Clear:       Button{Label: ClearLabel},
	}

	for _, f := range model.Filters {
		tree.Filters = append(tree.Filters, FilterButton{
			Button: Button{Label: string(f), Primary: f == s.Filter},
			Filter: f,
			Event:  model.FilterChanged{Filter: f},
		})
	}

	visible := s.Visible()
	tree.Rows = make([]Row, 0, len(visible))
	for i, t := range visible {
		tree.Rows = append(tree.Rows, Row{
			Number:      i + 1,
			ID:          t.ID,
			Description: t.Description,
			Completed:   t.Completed,
			Selected:    i == opts.Cursor,
			OnToggle:    model.ToggleTask{ID: t.ID},
		})
	}
	if len(tree.Rows) == 0 {
		tree.Empty = emptyText(s.Filter, len(s.Tasks))
	}

	active, completed := s.Counts()
	tree.Counts = fmt.Sprintf("%d active, %d completed", active, completed)
	tree.Clear.Primary = completed > 0
	return tree
}

func emptyText(f model.Filter, total int) string {
	if total == 0 {
		return "nothing to do yet"
	}
	switch f {
	case model.FilterActive:
		return "no active tasks"
	case model.FilterCompleted:
		return "no completed tasks"
	default:
		return "nothing to show"
	}
}

// RowAt returns the row at a zero-based position of the tree.
func (t Tree) RowAt(i int) (Row, bool) {
	if i < 0 || i >= len(t.Rows) {
		return Row{}, false
	}
	return t.Rows[i], true
}
