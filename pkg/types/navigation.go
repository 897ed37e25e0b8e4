package types

import (
	"github.com/a-h/templ"

	"github.com/fmstack/fmstack/modules/core/domain/aggregates/user"
	"github.com/fmstack/fmstack/modules/core/domain/entities/permission"
)

// NavigationItem is one node of the navigable module tree. Items are declared
// once per module in their registration order; that order is what the sidebar
// shows and what the landing-route walk follows. A node with nil Permissions is
// visible to everyone.
type NavigationItem struct {
	Name        string
	Href        string
	Children    []NavigationItem
	Icon        templ.Component
	Permissions []*permission.Permission
}

func (n NavigationItem) HasPermission(u user.User) bool {
	if n.Permissions == nil {
		return true
	}
	if u == nil {
		return false
	}
	for _, perm := range n.Permissions {
		if !u.Can(perm) {
			return false
		}
	}
	return true
}
