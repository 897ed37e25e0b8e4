package composables

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fmstack/fmstack/modules/core/domain/aggregates/user"
	"github.com/fmstack/fmstack/pkg/constants"
	"github.com/fmstack/fmstack/pkg/types"
)

var (
	ErrNoUser     = errors.New("user not found in context")
	ErrNoTenantID = errors.New("tenant id not found in context")
)

func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, constants.UserKey, u)
}

func UseUser(ctx context.Context) (user.User, error) {
	u, ok := ctx.Value(constants.UserKey).(user.User)
	if !ok {
		return nil, ErrNoUser
	}
	return u, nil
}

func WithTenantID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.TenantIDKey, id)
}

func UseTenantID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(constants.TenantIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoTenantID
	}
	return id, nil
}

// UseNavItems returns the permission-filtered sidebar tree installed by the
// NavItems middleware. Empty when the middleware did not run (e.g. login page).
func UseNavItems(ctx context.Context) []types.NavigationItem {
	items, ok := ctx.Value(constants.NavItemsKey).([]types.NavigationItem)
	if !ok {
		return nil
	}
	return items
}

// UseAllNavItems returns the filtered tree before empty groups are collapsed.
func UseAllNavItems(ctx context.Context) []types.NavigationItem {
	items, ok := ctx.Value(constants.AllNavItemsKey).([]types.NavigationItem)
	if !ok {
		return nil
	}
	return items
}
