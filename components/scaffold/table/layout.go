package table

import (
	"context"

	"github.com/fmstack/fmstack/pkg/prefs"
)

// Layout is the persisted subset of ViewState: column order and hidden keys.
// Stored as a JSON blob under the table's storage key; no schema versioning —
// reads are permissive and anything unrecognised falls back to declaration
// defaults.
type Layout struct {
	Order  []string `json:"order"`
	Hidden []string `json:"hidden"`
}

func layoutFromState(s *ViewState) Layout {
	l := Layout{Order: append([]string(nil), s.Order...)}
	for _, key := range s.Order {
		if s.Hidden[key] {
			l.Hidden = append(l.Hidden, key)
		}
	}
	return l
}

// ApplyLayout merges a persisted layout over the declared defaults: the
// persisted order wins for columns it mentions, stale keys are dropped, and
// columns added since the layout was saved are appended in declaration order
// with their DefaultVisible flag. Non-hideable columns can never end up
// hidden, whatever the blob says.
func ApplyLayout(s *ViewState, columns []Column, l Layout) {
	known := make(map[string]bool, len(columns))
	for _, c := range columns {
		known[c.Key()] = true
	}

	mentioned := make(map[string]bool, len(l.Order))
	order := make([]string, 0, len(columns))
	for _, key := range l.Order {
		if !known[key] || mentioned[key] {
			continue
		}
		mentioned[key] = true
		order = append(order, key)
	}
	for _, c := range columns {
		if !mentioned[c.Key()] {
			order = append(order, c.Key())
		}
	}
	s.Order = order

	hidden := make(map[string]bool, len(columns))
	persistedHidden := make(map[string]bool, len(l.Hidden))
	for _, key := range l.Hidden {
		persistedHidden[key] = true
	}
	for _, c := range columns {
		if !c.Hideable() {
			continue
		}
		if mentioned[c.Key()] {
			if persistedHidden[c.Key()] {
				hidden[c.Key()] = true
			}
		} else if !c.DefaultVisible() {
			hidden[c.Key()] = true
		}
	}
	s.Hidden = hidden
}

// LoadViewState builds the initial state for a table instance, merging any
// layout persisted under storageKey. An empty storageKey (or nil store)
// disables persistence entirely.
func LoadViewState(ctx context.Context, store prefs.Store, storageKey string, columns []Column, pageSize int) (*ViewState, error) {
	s := NewViewState(columns, pageSize)
	if store == nil || storageKey == "" {
		return s, nil
	}
	var l Layout
	found, err := prefs.GetJSON(ctx, store, storageKey, &l)
	if err != nil {
		return nil, err
	}
	if found {
		ApplyLayout(s, columns, l)
	}
	return s, nil
}

// SaveLayout persists the state's column order and hidden set. A no-op when
// persistence is disabled.
func SaveLayout(ctx context.Context, store prefs.Store, storageKey string, s *ViewState) error {
	if store == nil || storageKey == "" {
		return nil
	}
	return prefs.SetJSON(ctx, store, storageKey, layoutFromState(s))
}
