package store

import "errors"

var (
	// ErrSnapshotNotFound is returned by Get when no snapshot is stored under the name.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrUnsupportedSnapshotVersion is returned when decoding an envelope written by an unknown format.
	ErrUnsupportedSnapshotVersion = errors.New("unsupported snapshot version")

	ErrEmptyName    = errors.New("empty instance name")
	ErrNilSnapshot  = errors.New("nil snapshot")
	ErrDecode       = errors.New("decode snapshot")
	ErrPersist      = errors.New("persist snapshot")
	ErrLoadSnapshot = errors.New("load snapshots")
)
