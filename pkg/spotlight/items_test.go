package spotlight

import (
	"context"
	"strings"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/fmstack/fmstack/modules/core/domain/aggregates/user"
	"github.com/fmstack/fmstack/modules/core/domain/entities/permission"
	"github.com/fmstack/fmstack/pkg/composables"
	"github.com/fmstack/fmstack/pkg/intl"
	"github.com/fmstack/fmstack/pkg/types"
)

func withLocalizer(t *testing.T, ctx context.Context, messages ...*i18n.Message) context.Context {
	t.Helper()
	bundle := i18n.NewBundle(language.English)
	require.NoError(t, bundle.AddMessages(language.English, messages...))
	localizer := i18n.NewLocalizer(bundle, "en")
	ctx = intl.WithLocale(ctx, language.English)
	return intl.WithLocalizer(ctx, localizer)
}

func TestQuickLinks_PermissionFiltered(t *testing.T) {
	t.Parallel()

	ctx := withLocalizer(t, context.Background(),
		&i18n.Message{ID: "NavigationLinks.Assets", Other: "Assets"},
		&i18n.Message{ID: "NavigationLinks.Finance", Other: "Finance"},
	)
	ctx = composables.WithUser(ctx, user.New("Jo", "jo@example.com",
		user.WithPermissions([]*permission.Permission{permission.AssetView}),
	))

	links := QuickLinks{}
	links.Add(
		NewQuickLink(nil, "NavigationLinks.Assets", "/assets").RequirePermissions(permission.AssetView),
		NewQuickLink(nil, "NavigationLinks.Finance", "/finance").RequirePermissions(permission.FinanceView),
	)

	found := links.Find(ctx, "a")
	require.Len(t, found, 1)
}

func TestQuickLinks_RanksByCloseness(t *testing.T) {
	t.Parallel()

	ctx := withLocalizer(t, context.Background(),
		&i18n.Message{ID: "NavigationLinks.Assets", Other: "Assets"},
		&i18n.Message{ID: "NavigationLinks.AssetCategories", Other: "Asset Categories"},
	)
	ctx = composables.WithUser(ctx, user.New("Jo", "jo@example.com"))

	links := QuickLinks{}
	links.Add(
		NewQuickLink(nil, "NavigationLinks.AssetCategories", "/assets/categories"),
		NewQuickLink(nil, "NavigationLinks.Assets", "/assets"),
	)

	found := links.Find(ctx, "assets")
	require.Len(t, found, 2)

	out := renderItem(t, ctx, found[0])
	require.Contains(t, out, `href="/assets"`)
}

func TestQuickLinks_NoUserNoResults(t *testing.T) {
	t.Parallel()

	ctx := withLocalizer(t, context.Background(),
		&i18n.Message{ID: "NavigationLinks.Assets", Other: "Assets"},
	)

	links := QuickLinks{}
	links.Add(NewQuickLink(nil, "NavigationLinks.Assets", "/assets"))

	require.Empty(t, links.Find(ctx, "assets"))
}

func TestQuickLinks_FromNavItems(t *testing.T) {
	t.Parallel()

	ctx := withLocalizer(t, context.Background(),
		&i18n.Message{ID: "NavigationLinks.Registry", Other: "Registry"},
		&i18n.Message{ID: "NavigationLinks.Tickets", Other: "Tickets"},
	)
	ctx = composables.WithUser(ctx, user.New("Jo", "jo@example.com",
		user.WithPermissions([]*permission.Permission{permission.AssetView}),
	))

	links := QuickLinks{}
	links.FromNavItems([]types.NavigationItem{
		{
			Name: "NavigationLinks.Assets",
			Children: []types.NavigationItem{
				{Name: "NavigationLinks.Registry", Href: "/assets", Permissions: []*permission.Permission{permission.AssetView}},
				{Name: "NavigationLinks.Tickets", Href: "/tickets", Permissions: []*permission.Permission{permission.TicketView}},
			},
		},
	})

	found := links.Find(ctx, "registry")
	require.Len(t, found, 1)
	require.Contains(t, renderItem(t, ctx, found[0]), `href="/assets"`)
}

func renderItem(t *testing.T, ctx context.Context, it Item) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, it.Render(ctx, &sb))
	return sb.String()
}
