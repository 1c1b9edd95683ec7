package store

import (
	"encoding/json"
	"fmt"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
)

// SnapshotVersion is the envelope format written by Encode.
const SnapshotVersion = 1

// envelope is the persisted form of a snapshot:
//
//	{"version":1,"instance":{...WebApp...}}
type envelope struct {
	Version  int              `json:"version"`
	Instance *v1alpha1.WebApp `json:"instance"`
}

// Encode serialises an instance into a versioned snapshot envelope.
func Encode(app *v1alpha1.WebApp) ([]byte, error) {
	if app == nil {
		return nil, ErrNilSnapshot
	}

	data, err := json.Marshal(envelope{Version: SnapshotVersion, Instance: app})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	return data, nil
}

// Decode parses a snapshot envelope produced by Encode.
func Decode(data []byte) (*v1alpha1.WebApp, error) {
	var env envelope

	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if env.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSnapshotVersion, env.Version)
	}

	if env.Instance == nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, ErrNilSnapshot)
	}

	return env.Instance, nil
}
