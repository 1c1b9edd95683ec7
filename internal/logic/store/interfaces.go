package store

import "context"

// Backend persists encoded snapshots outside the process so they survive
// restarts. Implementations are provided by adapters in the outbound layer.
type Backend interface {
	SaveSnapshotCommand(ctx context.Context, name string, data []byte) error
	DeleteSnapshotCommand(ctx context.Context, name string) error
	ListSnapshotsQuery(ctx context.Context) (map[string][]byte, error)
}
