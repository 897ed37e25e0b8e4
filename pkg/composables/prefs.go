package composables

import (
	"context"
	"errors"

	"github.com/fmstack/fmstack/pkg/constants"
	"github.com/fmstack/fmstack/pkg/prefs"
)

var ErrNoPrefs = errors.New("preference store not found in context")

func WithPrefs(ctx context.Context, store prefs.Store) context.Context {
	return context.WithValue(ctx, constants.PrefsKey, store)
}

func UsePrefs(ctx context.Context) (prefs.Store, error) {
	store, ok := ctx.Value(constants.PrefsKey).(prefs.Store)
	if !ok {
		return nil, ErrNoPrefs
	}
	return store, nil
}
