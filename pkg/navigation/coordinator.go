package navigation

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Coordinator runs route resolution as a one-shot effect: nothing happens
// until the permission tree has loaded and the view gate has resolved, and a
// navigation command is issued only when the computed route changes. Repeated
// evaluations with unchanged inputs are no-ops; changed inputs re-resolve and
// the last resolution wins (replace navigation, so history stays clean).
type Coordinator struct {
	resolver  *Resolver
	gate      *ViewGate
	navigator Navigator
	logger    *logrus.Logger

	mu        sync.Mutex
	lastRoute string
	navigated bool
}

func NewCoordinator(resolver *Resolver, gate *ViewGate, navigator Navigator, logger *logrus.Logger) *Coordinator {
	return &Coordinator{
		resolver:  resolver,
		gate:      gate,
		navigator: navigator,
		logger:    logger,
	}
}

// Evaluate checks the preconditions and, when both hold, resolves and
// navigates. Returns the route it navigated to, or "" when gated.
func (c *Coordinator) Evaluate(ctx context.Context, env Environment) (string, error) {
	if !env.PermissionsLoaded {
		return "", nil
	}

	state, err := c.gate.Check(ctx, env.Hostname)
	if err != nil {
		return "", err
	}
	if state != GateResolved {
		return "", nil
	}

	if env.UserType == "" {
		if stored, ok := c.gate.StoredUserType(ctx); ok {
			env.UserType = stored
		}
	}

	route := c.resolver.Route(env)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.navigated && route == c.lastRoute {
		return route, nil
	}
	c.lastRoute = route
	c.navigated = true
	c.logger.WithField("route", route).Info("resolved landing route")
	c.navigator.Replace(route)
	return route, nil
}
