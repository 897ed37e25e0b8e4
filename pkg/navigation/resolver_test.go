package navigation_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fmstack/fmstack/modules/core/domain/aggregates/user"
	"github.com/fmstack/fmstack/modules/core/domain/entities/permission"
	"github.com/fmstack/fmstack/pkg/navigation"
	"github.com/fmstack/fmstack/pkg/types"
)

func testTree() []types.NavigationItem {
	return []types.NavigationItem{
		{
			Name: "Assets",
			Children: []types.NavigationItem{
				{Name: "Registry", Href: "/assets", Permissions: []*permission.Permission{permission.AssetView}},
				{Name: "Tickets", Href: "/tickets", Permissions: []*permission.Permission{permission.TicketView}},
			},
		},
		{Name: "Finance", Href: "/finance", Permissions: []*permission.Permission{permission.FinanceView}},
	}
}

func testConfig() navigation.Config {
	return navigation.Config{
		DevHosts:       []string{"localhost", "dev.fmstack.io"},
		UserTypeRoutes: navigation.DefaultUserTypeRoutes(),
		HostRoutes: []navigation.HostRoute{
			{HostContains: "vendors.", Route: "/gate-passes"},
		},
		DefaultRoute: "/assets",
	}
}

func TestResolver_PermissionTreeWins(t *testing.T) {
	t.Parallel()

	r := navigation.NewResolver(testConfig())
	u := user.New("Jo", "jo@example.com",
		user.WithPermissions([]*permission.Permission{permission.TicketView}),
	)

	route := r.Route(navigation.Environment{
		Hostname: "app.fmstack.io",
		User:     u,
		NavItems: testTree(),
	})
	require.Equal(t, "/tickets", route)
}

func TestResolver_PreOrderPicksFirstAccessibleLeaf(t *testing.T) {
	t.Parallel()

	r := navigation.NewResolver(testConfig())
	u := user.New("Jo", "jo@example.com",
		user.WithPermissions([]*permission.Permission{permission.AssetView, permission.FinanceView}),
	)

	route := r.Route(navigation.Environment{
		Hostname: "app.fmstack.io",
		User:     u,
		NavItems: testTree(),
	})
	require.Equal(t, "/assets", route)
}

func TestResolver_DisabledTreeFallsToCatchAll(t *testing.T) {
	t.Parallel()

	r := navigation.NewResolver(testConfig())
	u := user.New("Jo", "jo@example.com")

	route := r.Route(navigation.Environment{
		Hostname: "app.fmstack.io",
		User:     u,
		NavItems: testTree(),
	})
	require.Equal(t, "/assets", route)
}

func TestResolver_DevHostUserTypeFallback(t *testing.T) {
	t.Parallel()

	r := navigation.NewResolver(testConfig())
	u := user.New("Jo", "jo@example.com")

	route := r.Route(navigation.Environment{
		Hostname: "localhost",
		User:     u,
		UserType: user.TypeVendor,
		NavItems: testTree(),
	})
	require.Equal(t, "/gate-passes", route)
}

func TestResolver_TenantAllowlistRetriesWalk(t *testing.T) {
	t.Parallel()

	tenant := uuid.New()
	cfg := testConfig()
	cfg.TenantAllowlist = []uuid.UUID{tenant}
	r := navigation.NewResolver(cfg)

	u := user.New("Jo", "jo@example.com",
		user.WithPermissions([]*permission.Permission{permission.FinanceView}),
	)

	route := r.Route(navigation.Environment{
		Hostname: "app.fmstack.io",
		User:     u,
		TenantID: tenant,
		NavItems: testTree(),
	})
	require.Equal(t, "/finance", route)

	// same tenant, no permissions at all: the allow-list rule still resolves
	route = r.Route(navigation.Environment{
		Hostname: "app.fmstack.io",
		User:     user.New("Nil", "nil@example.com"),
		TenantID: tenant,
		NavItems: testTree(),
	})
	require.Equal(t, "/assets", route)
}

func TestResolver_HostPattern(t *testing.T) {
	t.Parallel()

	r := navigation.NewResolver(testConfig())

	route := r.Route(navigation.Environment{
		Hostname: "vendors.fmstack.io",
		User:     user.New("Jo", "jo@example.com"),
		NavItems: testTree(),
	})
	require.Equal(t, "/gate-passes", route)
}

func TestResolver_Deterministic(t *testing.T) {
	t.Parallel()

	r := navigation.NewResolver(testConfig())
	env := navigation.Environment{
		Hostname: "app.fmstack.io",
		User: user.New("Jo", "jo@example.com",
			user.WithPermissions([]*permission.Permission{permission.TicketView}),
		),
		NavItems: testTree(),
	}

	first := r.Route(env)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, r.Route(env))
	}
}

func TestResolver_RequiresDefaultRoute(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		navigation.NewResolver(navigation.Config{})
	})
}

func TestResolver_RuleOrder(t *testing.T) {
	t.Parallel()

	r := navigation.NewResolver(testConfig())
	require.Equal(t, []string{
		"permission-tree",
		"dev-host-user-type",
		"tenant-allowlist",
		"host-pattern",
		"catch-all",
	}, r.RuleNames())
}

func TestFirstAccessibleRoute_SkipsBranchesWithoutAccess(t *testing.T) {
	t.Parallel()

	u := user.New("Jo", "jo@example.com",
		user.WithPermissions([]*permission.Permission{permission.TicketView}),
	)

	tree := []types.NavigationItem{
		{
			Name:        "Hidden",
			Permissions: []*permission.Permission{permission.FinanceView},
			Children: []types.NavigationItem{
				// reachable permission under an inaccessible parent must not leak
				{Name: "Tickets", Href: "/tickets", Permissions: []*permission.Permission{permission.TicketView}},
			},
		},
		{Name: "Tickets", Href: "/tickets-top", Permissions: []*permission.Permission{permission.TicketView}},
	}

	route, ok := navigation.FirstAccessibleRoute(tree, u)
	require.True(t, ok)
	require.Equal(t, "/tickets-top", route)
}
