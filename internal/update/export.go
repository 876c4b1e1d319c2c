package update

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sandeepkv93/todolist/internal/model"
	"github.com/sandeepkv93/todolist/internal/storage"
)

const exportTimeout = 10 * time.Second

var errExportDisabled = errors.New("export: no export path configured")

type SnapshotExporter interface {
	Export(ctx context.Context, snap storage.Snapshot) error
}

// buildSnapshot captures every task regardless of the active filter; the
// filter is recorded alongside. A task that fails validation aborts the export.
func buildSnapshot(s model.State, label string, at time.Time) (storage.Snapshot, error) {
	snap := storage.Snapshot{
		ID:        uuid.NewString(),
		Label:     label,
		Filter:    string(s.Filter),
		CreatedAt: at,
		Tasks:     make([]storage.SnapshotTask, 0, len(s.Tasks)),
	}
	for i, t := range s.Tasks {
		if err := t.Validate(); err != nil {
			return storage.Snapshot{}, fmt.Errorf("export: task %d: %w", i+1, err)
		}
		snap.Tasks = append(snap.Tasks, storage.SnapshotTask{
			Position:    i,
			TaskID:      string(t.ID),
			Description: t.Description,
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt,
		})
	}
	return snap, nil
}

func (m Model) exportCmd(label string) tea.Cmd {
	// path is only reported when the export goes to the configured file.
	exporter, path := m.exporter, ""
	if exporter == nil && m.exportPath != "" {
		path = m.exportPath
		exporter = storage.NewExporter(path)
	}
	if exporter == nil {
		return func() tea.Msg { return ExportDoneMsg{Err: errExportDisabled} }
	}
	snap, err := buildSnapshot(m.State, label, m.reducer.Now())
	if err != nil {
		return func() tea.Msg { return ExportDoneMsg{Err: err} }
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()
		err := exporter.Export(ctx, snap)
		return ExportDoneMsg{SnapshotID: snap.ID, Path: path, Tasks: len(snap.Tasks), Err: err}
	}
}
