package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/fmstack/fmstack/modules/core/domain/aggregates/user"
	"github.com/fmstack/fmstack/pkg/composables"
	"github.com/fmstack/fmstack/pkg/constants"
	"github.com/fmstack/fmstack/pkg/intl"
	"github.com/fmstack/fmstack/pkg/types"
)

// NavSource yields the localized navigation tree registered by the modules.
type NavSource interface {
	NavItems(localizer *i18n.Localizer) []types.NavigationItem
}

func filterItems(items []types.NavigationItem, u user.User) []types.NavigationItem {
	filtered := make([]types.NavigationItem, 0, len(items))
	for _, item := range items {
		if !item.HasPermission(u) {
			continue
		}
		filtered = append(filtered, types.NavigationItem{
			Name:        item.Name,
			Href:        item.Href,
			Children:    filterItems(item.Children, u),
			Icon:        item.Icon,
			Permissions: item.Permissions,
		})
	}
	return filtered
}

// getEnabledNavItems collapses groups whose children were all filtered out and
// lifts single-child groups to the child itself.
func getEnabledNavItems(items []types.NavigationItem) []types.NavigationItem {
	var out []types.NavigationItem
	for _, item := range items {
		if len(item.Children) > 0 {
			children := getEnabledNavItems(item.Children)
			switch len(children) {
			case 0:
				continue
			case 1:
				out = append(out, children[0])
			default:
				item.Children = children
				out = append(out, item)
			}
		} else {
			out = append(out, item)
		}
	}
	return out
}

// NavItems installs the permission-filtered navigation tree into the request
// context: the full filtered tree under AllNavItemsKey (what the landing-route
// walk consumes) and the collapsed tree under NavItemsKey (what the sidebar
// shows).
func NavItems(src NavSource) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				localizer, ok := intl.UseLocalizer(r.Context())
				if !ok {
					panic(intl.ErrNoLocalizer)
				}
				u, err := composables.UseUser(r.Context())
				if err != nil {
					next.ServeHTTP(w, r)
					return
				}

				filtered := filterItems(src.NavItems(localizer), u)
				enabled := getEnabledNavItems(filtered)

				ctx := context.WithValue(r.Context(), constants.AllNavItemsKey, filtered)
				ctx = context.WithValue(ctx, constants.NavItemsKey, enabled)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}
