package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateSnapshot(ctx context.Context, in Snapshot) error
	GetSnapshot(ctx context.Context, id string) (Snapshot, error)
	DeleteSnapshot(ctx context.Context, id string) error
	ListSnapshots(ctx context.Context, filter SnapshotListFilter) ([]Snapshot, error)
}
