package views

import (
	"strings"
	"testing"

	"github.com/sandeepkv93/todolist/internal/model"
)

func sampleState() model.State {
	return model.State{
		PendingInput: "draft",
		Filter:       model.FilterAll,
		Tasks: []model.Task{
			{ID: "a", Description: "A"},
			{ID: "b", Description: "B", Completed: true},
			{ID: "c", Description: "C"},
		},
	}
}

func TestProjectAllFilter(t *testing.T) {
	tree := Project(sampleState(), ProjectOptions{Cursor: 1})
	if tree.Title != "Todo List" || tree.Input != "draft" || tree.Placeholder != InputPlaceholder {
		t.Fatalf("unexpected header: %+v", tree)
	}
	if len(tree.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(tree.Rows))
	}
	for i, row := range tree.Rows {
		if row.Number != i+1 || row.OnToggle.ID != row.ID {
			t.Fatalf("unexpected row %d: %+v", i, row)
		}
		if row.Selected != (i == 1) {
			t.Fatalf("unexpected selection on row %d", i)
		}
	}
	if tree.Counts != "2 active, 1 completed" {
		t.Fatalf("unexpected counts: %q", tree.Counts)
	}
	if !tree.Clear.Primary {
		t.Fatal("clear button should be highlighted when there is something to clear")
	}
}

func TestProjectHighlightsExactlyActiveFilter(t *testing.T) {
	for _, f := range model.Filters {
		s := sampleState()
		s.Filter = f
		tree := Project(s, ProjectOptions{})
		primaries := 0
		for _, fb := range tree.Filters {
			if fb.Primary {
				primaries++
				if fb.Filter != f {
					t.Fatalf("wrong filter highlighted: %s (active %s)", fb.Filter, f)
				}
			}
			if fb.Event.Filter != fb.Filter {
				t.Fatalf("filter button dispatches wrong event: %+v", fb)
			}
		}
		if primaries != 1 {
			t.Fatalf("expected one highlighted filter, got %d", primaries)
		}
	}
}

func TestProjectFiltersRowsWithoutMutatingState(t *testing.T) {
	s := sampleState()
	s.Filter = model.FilterActive
	tree := Project(s, ProjectOptions{})
	if len(tree.Rows) != 2 || tree.Rows[0].ID != "a" || tree.Rows[1].ID != "c" {
		t.Fatalf("unexpected active rows: %+v", tree.Rows)
	}
	if tree.Rows[1].Number != 2 {
		t.Fatalf("rows should be numbered by visible position: %+v", tree.Rows[1])
	}

	s.Filter = model.FilterCompleted
	tree = Project(s, ProjectOptions{})
	if len(tree.Rows) != 1 || tree.Rows[0].ID != "b" || !tree.Rows[0].Completed {
		t.Fatalf("unexpected completed rows: %+v", tree.Rows)
	}
	if len(s.Tasks) != 3 {
		t.Fatalf("projection changed tasks: %+v", s.Tasks)
	}
}

func TestProjectEmptyStates(t *testing.T) {
	tree := Project(model.NewState(), ProjectOptions{})
	if tree.Empty != "nothing to do yet" || tree.Clear.Primary {
		t.Fatalf("unexpected empty tree: %+v", tree)
	}

	s := sampleState()
	s.Tasks = s.Tasks[1:2]
	s.Filter = model.FilterActive
	if got := Project(s, ProjectOptions{}).Empty; got != "no active tasks" {
		t.Fatalf("unexpected empty text: %q", got)
	}
}

func TestRowAt(t *testing.T) {
	tree := Project(sampleState(), ProjectOptions{})
	if row, ok := tree.RowAt(2); !ok || row.ID != "c" {
		t.Fatalf("unexpected row: %+v ok=%v", row, ok)
	}
	if _, ok := tree.RowAt(3); ok {
		t.Fatal("expected out of range")
	}
	if _, ok := tree.RowAt(-1); ok {
		t.Fatal("expected out of range")
	}
}

func TestRenderTodoPanelContainsTree(t *testing.T) {
	s := sampleState()
	s.Filter = model.FilterActive
	out := RenderTodoPanel(Project(s, ProjectOptions{}), TodoChrome{})
	for _, want := range []string{"Todo List", "draft", "[Add Todo]", "[Active]", " All ", "[ ]  1. A", "[ ]  2. C", "2 active, 1 completed", "Clear completed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in panel:\n%s", want, out)
		}
	}
	if strings.Contains(out, "B") {
		t.Fatalf("completed task leaked into active view:\n%s", out)
	}
}

func TestRenderAppLayout(t *testing.T) {
	out := RenderApp(AppData{
		Header:     "todolist",
		MainPane:   "main",
		SidePane:   "side",
		StatusLine: "status: ok",
		Footer:     "keys",
	})
	for _, want := range []string{"todolist", "main", "side", "status: ok", "keys"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in app:\n%s", want, out)
		}
	}
}
