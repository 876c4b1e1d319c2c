package model

import (
	"slices"
	"time"
)

type State struct {
	PendingInput string
	Tasks        []Task
	Filter       Filter
}

func NewState() State {
	return State{Filter: FilterAll}
}

// Event is one discrete user action understood by Apply.
type Event interface {
	isEvent()
}

type InputChanged struct {
	Text string
}

type SubmitTask struct{}

type ToggleTask struct {
	ID TaskID
}

type FilterChanged struct {
	Filter Filter
}

type ClearCompleted struct{}

func (InputChanged) isEvent()   {}
func (SubmitTask) isEvent()     {}
func (ToggleTask) isEvent()     {}
func (FilterChanged) isEvent()  {}
func (ClearCompleted) isEvent() {}

// Reducer applies events to state. NewID and Now are injectable so tests can
// produce deterministic tasks.
type Reducer struct {
	NewID func() TaskID
	Now   func() time.Time
}

func DefaultReducer() Reducer {
	return Reducer{
		NewID: NewTaskID,
		Now:   func() time.Time { return time.Now().UTC() },
	}
}

// Apply returns the state that results from ev. The input state is never
// modified; events that do not apply return it unchanged.
func Apply(s State, ev Event) State {
	return DefaultReducer().Apply(s, ev)
}

func (r Reducer) Apply(s State, ev Event) State {
	switch e := ev.(type) {
	case InputChanged:
		s.PendingInput = e.Text
	case SubmitTask:
		if s.PendingInput == "" {
			return s
		}
		task := Task{
			ID:          r.newID(),
			Description: s.PendingInput,
			CreatedAt:   r.now(),
		}
		s.Tasks = append(slices.Clip(s.Tasks), task)
		s.PendingInput = ""
	case ToggleTask:
		idx := s.indexOf(e.ID)
		if idx < 0 {
			return s
		}
		tasks := slices.Clone(s.Tasks)
		tasks[idx].Completed = !tasks[idx].Completed
		s.Tasks = tasks
	case FilterChanged:
		if e.Filter.IsValid() {
			s.Filter = e.Filter
		}
	case ClearCompleted:
		s.Tasks = slices.DeleteFunc(slices.Clone(s.Tasks), func(t Task) bool { return t.Completed })
	}
	return s
}

func (r Reducer) newID() TaskID {
	if r.NewID == nil {
		return NewTaskID()
	}
	return r.NewID()
}

func (r Reducer) now() time.Time {
	if r.Now == nil {
		return time.Now().UTC()
	}
	return r.Now()
}

// Visible returns the tasks shown under the active filter, in list order.
func (s State) Visible() []Task {
	out := make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if s.Filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s State) Find(id TaskID) (Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Task{}, false
	}
	return s.Tasks[idx], true
}

func (s State) Counts() (active int, completed int) {
	for _, t := range s.Tasks {
		if t.Completed {
			completed++
		} else {
			active++
		}
	}
	return active, completed
}

func (s State) indexOf(id TaskID) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.Tasks, func(t Task) bool { return t.ID == id })
}
