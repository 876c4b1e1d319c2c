package storage

import "time"

type Snapshot struct {
	ID        string
	Label     string
	Filter    string
	CreatedAt time.Time
	Tasks     []SnapshotTask
}

type SnapshotTask struct {
	Position    int
	TaskID      string
	Description string
	Completed   bool
	CreatedAt   time.Time
}

type SnapshotListFilter struct {
	Label  string
	Limit  int
	Offset int
}
