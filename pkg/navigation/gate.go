package navigation

import (
	"context"

	"github.com/fmstack/fmstack/modules/core/domain/aggregates/user"
	"github.com/fmstack/fmstack/pkg/prefs"
)

// GateState is the view-selection gate: on development hostnames the app asks
// which persona view to load before any route is computed.
type GateState int

const (
	GateNotChecked GateState = iota
	GateAwaitingSelection
	GateResolved
)

func (s GateState) String() string {
	switch s {
	case GateAwaitingSelection:
		return "awaiting-selection"
	case GateResolved:
		return "resolved"
	default:
		return "not-checked"
	}
}

const (
	selectedViewKey = "nav:selectedView"
	userTypeKey     = "nav:userType"
)

type storedSelection struct {
	View     string    `json:"view"`
	UserType user.Type `json:"userType"`
}

// ViewGate starts in GateNotChecked. Check transitions directly to
// GateResolved off development hosts; on a dev host it resolves only when a
// selection was previously persisted, otherwise it awaits one. Route
// computation must not run before the gate resolves.
type ViewGate struct {
	store    prefs.Store
	devHosts []string
	state    GateState
}

func NewViewGate(store prefs.Store, devHosts []string) *ViewGate {
	return &ViewGate{
		store:    store,
		devHosts: devHosts,
		state:    GateNotChecked,
	}
}

func (g *ViewGate) State() GateState {
	return g.state
}

func (g *ViewGate) Check(ctx context.Context, hostname string) (GateState, error) {
	if g.state == GateResolved {
		return g.state, nil
	}
	if !hostIn(hostname, g.devHosts) {
		g.state = GateResolved
		return g.state, nil
	}

	var view storedSelection
	foundView, err := prefs.GetJSON(ctx, g.store, selectedViewKey, &view)
	if err != nil {
		return g.state, err
	}
	var storedType user.Type
	foundType, err := prefs.GetJSON(ctx, g.store, userTypeKey, &storedType)
	if err != nil {
		return g.state, err
	}

	if foundView && view.View != "" && foundType && storedType.IsValid() {
		g.state = GateResolved
	} else {
		g.state = GateAwaitingSelection
	}
	return g.state, nil
}

// Complete persists the selection made in the prompt and resolves the gate.
func (g *ViewGate) Complete(ctx context.Context, view string, userType user.Type) error {
	if err := prefs.SetJSON(ctx, g.store, selectedViewKey, storedSelection{View: view, UserType: userType}); err != nil {
		return err
	}
	if err := prefs.SetJSON(ctx, g.store, userTypeKey, userType); err != nil {
		return err
	}
	g.state = GateResolved
	return nil
}

// StoredUserType reads the persisted user type consulted by the dev-host
// fallback rule.
func (g *ViewGate) StoredUserType(ctx context.Context) (user.Type, bool) {
	var t user.Type
	found, err := prefs.GetJSON(ctx, g.store, userTypeKey, &t)
	if err != nil || !found || !t.IsValid() {
		return "", false
	}
	return t, true
}
