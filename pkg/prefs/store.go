// Package prefs is the key→JSON-blob persistence port used for per-user UI
// state: table column layouts, the selected dev view, the stored user type.
// Values are read permissively — unknown fields are ignored and missing fields
// fall back to defaults — so stale blobs from older builds never error.
package prefs

import (
	"context"
	"encoding/json"
)

// Store persists small JSON documents under string keys. Implementations must
// treat a missing key as (found=false, err=nil).
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	Delete(ctx context.Context, key string) error
}

// GetJSON decodes the value under key into v. Returns false when the key is
// absent or the stored blob does not decode; a corrupt blob is treated the
// same as a missing one.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
