package storage

import (
	"context"
	"fmt"
)

// Exporter writes snapshots to a SQLite file, opening it only for the
// duration of one export.
type Exporter struct {
	Path string
}

func NewExporter(path string) Exporter {
	return Exporter{Path: path}
}

func (e Exporter) Export(ctx context.Context, snap Snapshot) error {
	repo, err := OpenSQLite(e.Path)
	if err != nil {
		return fmt.Errorf("export to %s: %w", e.Path, err)
	}
	defer repo.Close()
	if err := repo.CreateSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("export to %s: %w", e.Path, err)
	}
	return nil
}
