package navigation_test

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/fmstack/fmstack/modules/core/domain/aggregates/user"
	"github.com/fmstack/fmstack/pkg/navigation"
	"github.com/fmstack/fmstack/pkg/prefs"
)

var devHosts = []string{"localhost"}

func TestViewGate_NonDevHostResolvesImmediately(t *testing.T) {
	t.Parallel()

	gate := navigation.NewViewGate(prefs.NewMemoryStore(), devHosts)
	require.Equal(t, navigation.GateNotChecked, gate.State())

	state, err := gate.Check(context.Background(), "app.fmstack.io")
	require.NoError(t, err)
	require.Equal(t, navigation.GateResolved, state)
}

func TestViewGate_DevHostWithoutSelectionAwaits(t *testing.T) {
	t.Parallel()

	gate := navigation.NewViewGate(prefs.NewMemoryStore(), devHosts)

	state, err := gate.Check(context.Background(), "localhost")
	require.NoError(t, err)
	require.Equal(t, navigation.GateAwaitingSelection, state)
}

func TestViewGate_CompleteResolvesAndPersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := prefs.NewMemoryStore()

	gate := navigation.NewViewGate(store, devHosts)
	_, err := gate.Check(ctx, "localhost")
	require.NoError(t, err)

	require.NoError(t, gate.Complete(ctx, "vendor-portal", user.TypeVendor))
	require.Equal(t, navigation.GateResolved, gate.State())

	stored, ok := gate.StoredUserType(ctx)
	require.True(t, ok)
	require.Equal(t, user.TypeVendor, stored)

	// a fresh gate over the same store resolves without a new prompt
	next := navigation.NewViewGate(store, devHosts)
	state, err := next.Check(ctx, "localhost")
	require.NoError(t, err)
	require.Equal(t, navigation.GateResolved, state)
}

func TestViewGate_InvalidStoredTypeAwaits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := prefs.NewMemoryStore()
	require.NoError(t, prefs.SetJSON(ctx, store, "nav:selectedView", map[string]string{"view": "x"}))
	require.NoError(t, prefs.SetJSON(ctx, store, "nav:userType", "astronaut"))

	gate := navigation.NewViewGate(store, devHosts)
	state, err := gate.Check(ctx, "localhost")
	require.NoError(t, err)
	require.Equal(t, navigation.GateAwaitingSelection, state)

	_, ok := gate.StoredUserType(ctx)
	require.False(t, ok)
}

type fakeNavigator struct {
	routes []string
}

func (f *fakeNavigator) Replace(route string) {
	f.routes = append(f.routes, route)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestCoordinator_GatesOnPermissionsLoaded(t *testing.T) {
	t.Parallel()

	nav := &fakeNavigator{}
	c := navigation.NewCoordinator(
		navigation.NewResolver(testConfig()),
		navigation.NewViewGate(prefs.NewMemoryStore(), devHosts),
		nav,
		testLogger(),
	)

	route, err := c.Evaluate(context.Background(), navigation.Environment{
		Hostname: "app.fmstack.io",
		User:     user.New("Jo", "jo@example.com"),
	})
	require.NoError(t, err)
	require.Empty(t, route)
	require.Empty(t, nav.routes)
}

func TestCoordinator_GatesOnViewSelection(t *testing.T) {
	t.Parallel()

	nav := &fakeNavigator{}
	c := navigation.NewCoordinator(
		navigation.NewResolver(testConfig()),
		navigation.NewViewGate(prefs.NewMemoryStore(), devHosts),
		nav,
		testLogger(),
	)

	route, err := c.Evaluate(context.Background(), navigation.Environment{
		Hostname:          "localhost",
		User:              user.New("Jo", "jo@example.com"),
		PermissionsLoaded: true,
	})
	require.NoError(t, err)
	require.Empty(t, route)
	require.Empty(t, nav.routes)
}

func TestCoordinator_NavigatesOnce(t *testing.T) {
	t.Parallel()

	nav := &fakeNavigator{}
	c := navigation.NewCoordinator(
		navigation.NewResolver(testConfig()),
		navigation.NewViewGate(prefs.NewMemoryStore(), devHosts),
		nav,
		testLogger(),
	)

	env := navigation.Environment{
		Hostname:          "app.fmstack.io",
		User:              user.New("Jo", "jo@example.com"),
		PermissionsLoaded: true,
	}

	route, err := c.Evaluate(context.Background(), env)
	require.NoError(t, err)
	require.Equal(t, "/assets", route)

	_, err = c.Evaluate(context.Background(), env)
	require.NoError(t, err)
	require.Equal(t, []string{"/assets"}, nav.routes)
}

func TestCoordinator_UsesStoredUserTypeOnDevHost(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := prefs.NewMemoryStore()
	gate := navigation.NewViewGate(store, devHosts)
	require.NoError(t, gate.Complete(ctx, "vendor-portal", user.TypeVendor))

	nav := &fakeNavigator{}
	c := navigation.NewCoordinator(navigation.NewResolver(testConfig()), gate, nav, testLogger())

	route, err := c.Evaluate(ctx, navigation.Environment{
		Hostname:          "localhost",
		User:              user.New("Jo", "jo@example.com"),
		PermissionsLoaded: true,
	})
	require.NoError(t, err)
	require.Equal(t, "/gate-passes", route)
	require.Equal(t, []string{"/gate-passes"}, nav.routes)
}
