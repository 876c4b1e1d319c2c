package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Fixed width so that created_at sorts as text in time order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens the database at path and brings its schema up to date.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage: empty database path")
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// foreign_keys is per connection.
	db.SetMaxOpenConns(1)
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateSnapshot(ctx context.Context, in Snapshot) error {
	if strings.TrimSpace(in.ID) == "" {
		return errors.New("storage: snapshot id is required")
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, label, filter, created_at)
		VALUES (?, ?, ?, ?)`,
		in.ID, in.Label, in.Filter, mustTime(in.CreatedAt),
	); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO snapshot_tasks (snapshot_id, position, task_id, description, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare snapshot tasks: %w", err)
	}
	defer stmt.Close()

	for i, task := range in.Tasks {
		if _, err := stmt.ExecContext(ctx, in.ID, i, task.TaskID, task.Description, boolInt(task.Completed), mustTime(task.CreatedAt)); err != nil {
			return fmt.Errorf("insert snapshot task %d: %w", i, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRepository) GetSnapshot(ctx context.Context, id string) (Snapshot, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, label, filter, created_at
		FROM snapshots WHERE id = ?`, id)
	snap, err := scanSnapshot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT position, task_id, description, completed, created_at
		FROM snapshot_tasks WHERE snapshot_id = ?
		ORDER BY position ASC`, id)
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()

	snap.Tasks = make([]SnapshotTask, 0)
	for rows.Next() {
		task, scanErr := scanSnapshotTask(rows)
		if scanErr != nil {
			return Snapshot{}, scanErr
		}
		snap.Tasks = append(snap.Tasks, task)
	}
	return snap, rows.Err()
}

func (r *SQLiteRepository) DeleteSnapshot(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

// ListSnapshots returns snapshots newest first, without their tasks.
func (r *SQLiteRepository) ListSnapshots(ctx context.Context, filter SnapshotListFilter) ([]Snapshot, error) {
	query := `SELECT id, label, filter, created_at FROM snapshots`
	args := make([]any, 0, 3)
	if filter.Label != "" {
		query += ` WHERE label = ?`
		args = append(args, filter.Label)
	}
	query += ` ORDER BY created_at DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Snapshot, 0)
	for rows.Next() {
		snap, scanErr := scanSnapshot(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	} else if offset > 0 {
		// sqlite only accepts OFFSET after a LIMIT
		sql += " LIMIT -1"
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(s scanner) (Snapshot, error) {
	var out Snapshot
	var created string
	if err := s.Scan(&out.ID, &out.Label, &out.Filter, &created); err != nil {
		return Snapshot{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Snapshot{}, err
	}
	out.CreatedAt = createdAt
	return out, nil
}

func scanSnapshotTask(s scanner) (SnapshotTask, error) {
	var out SnapshotTask
	var completed int
	var created string
	if err := s.Scan(&out.Position, &out.TaskID, &out.Description, &completed, &created); err != nil {
		return SnapshotTask{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return SnapshotTask{}, err
	}
	out.Completed = completed == 1
	out.CreatedAt = createdAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
