// Package navigation decides where a user lands after login and which parts
// of the menu tree they see. Route resolution is a pure computation over
// already-loaded inputs; loading the permission tree is someone else's job,
// observed here only through Environment.PermissionsLoaded.
package navigation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fmstack/fmstack/modules/core/domain/aggregates/user"
	"github.com/fmstack/fmstack/pkg/types"
)

// Environment is the snapshot route resolution runs against.
type Environment struct {
	Hostname          string
	User              user.User
	UserType          user.Type
	TenantID          uuid.UUID
	NavItems          []types.NavigationItem
	PermissionsLoaded bool
}

// Rule is one step of the fallback chain. Resolve returns false to pass
// control to the next rule.
type Rule struct {
	Name    string
	Resolve func(env Environment) (string, bool)
}

// Navigator issues the final navigation command. Replace semantics keep the
// resolution out of the back-button history.
type Navigator interface {
	Replace(route string)
}

// FirstAccessibleRoute walks the permission tree in declaration order and
// returns the href of the first enabled leaf whose ancestors are all enabled.
func FirstAccessibleRoute(items []types.NavigationItem, u user.User) (string, bool) {
	for _, item := range items {
		if !item.HasPermission(u) {
			continue
		}
		if len(item.Children) == 0 {
			if item.Href != "" {
				return item.Href, true
			}
			continue
		}
		if route, ok := FirstAccessibleRoute(item.Children, u); ok {
			return route, ok
		}
	}
	return "", false
}

// HostRoute maps a hostname substring to a fixed landing route.
type HostRoute struct {
	HostContains string
	Route        string
}

// Config assembles the standard rule chain. All of it is deployment data;
// the precedence order is the design.
type Config struct {
	DevHosts []string
	// UserTypeRoutes maps a stored user type to its dev/staging fallback.
	UserTypeRoutes map[user.Type]string
	// TenantAllowlist names tenants that retry the permission walk before
	// falling back to DefaultRoute.
	TenantAllowlist []uuid.UUID
	HostRoutes      []HostRoute
	// DefaultRoute is the mandatory catch-all; Resolver panics without it.
	DefaultRoute string
}

func DefaultUserTypeRoutes() map[user.Type]string {
	return map[user.Type]string{
		user.TypeOrgAdmin: "/assets",
		user.TypeOccupant: "/projects",
		user.TypeVendor:   "/gate-passes",
	}
}

type Resolver struct {
	rules []Rule
}

// NewResolver builds the precedence chain: permission tree → dev-host user
// type → tenant allow-list → hostname table → catch-all. Each rule short
// circuits on first match; the catch-all guarantees a route.
func NewResolver(cfg Config) *Resolver {
	if cfg.DefaultRoute == "" {
		panic("navigation: Config.DefaultRoute is required")
	}

	rules := []Rule{
		{
			Name: "permission-tree",
			Resolve: func(env Environment) (string, bool) {
				return FirstAccessibleRoute(env.NavItems, env.User)
			},
		},
		{
			Name: "dev-host-user-type",
			Resolve: func(env Environment) (string, bool) {
				if !hostIn(env.Hostname, cfg.DevHosts) {
					return "", false
				}
				route, ok := cfg.UserTypeRoutes[env.UserType]
				return route, ok
			},
		},
		{
			Name: "tenant-allowlist",
			Resolve: func(env Environment) (string, bool) {
				if !tenantIn(env.TenantID, cfg.TenantAllowlist) {
					return "", false
				}
				if route, ok := FirstAccessibleRoute(env.NavItems, env.User); ok {
					return route, true
				}
				return cfg.DefaultRoute, true
			},
		},
		{
			Name: "host-pattern",
			Resolve: func(env Environment) (string, bool) {
				for _, hr := range cfg.HostRoutes {
					if strings.Contains(env.Hostname, hr.HostContains) {
						return hr.Route, true
					}
				}
				return "", false
			},
		},
		{
			Name: "catch-all",
			Resolve: func(Environment) (string, bool) {
				return cfg.DefaultRoute, true
			},
		},
	}
	return &Resolver{rules: rules}
}

// Route evaluates the chain. Deterministic for a fixed environment and always
// returns a route thanks to the catch-all.
func (r *Resolver) Route(env Environment) string {
	for _, rule := range r.rules {
		if route, ok := rule.Resolve(env); ok {
			return route
		}
	}
	// unreachable: the catch-all always resolves
	panic("navigation: rule chain yielded no route")
}

// RuleNames exposes the chain order for diagnostics.
func (r *Resolver) RuleNames() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name
	}
	return names
}

func hostIn(hostname string, hosts []string) bool {
	for _, h := range hosts {
		if strings.EqualFold(hostname, h) {
			return true
		}
	}
	return false
}

func tenantIn(id uuid.UUID, ids []uuid.UUID) bool {
	if id == uuid.Nil {
		return false
	}
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
