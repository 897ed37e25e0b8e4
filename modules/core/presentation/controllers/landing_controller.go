package controllers

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/fmstack/fmstack/modules/core/domain/aggregates/user"
	"github.com/fmstack/fmstack/pkg/application"
	"github.com/fmstack/fmstack/pkg/composables"
	"github.com/fmstack/fmstack/pkg/configuration"
	"github.com/fmstack/fmstack/pkg/navigation"
)

// LandingController answers "/" by resolving the user's landing route through
// the navigation fallback chain and redirecting there. On development hosts it
// first sends the user through the view-selection prompt.
type LandingController struct {
	app application.Application
}

func NewLandingController(app application.Application) application.Controller {
	return &LandingController{app: app}
}

func (c *LandingController) Key() string {
	return "/"
}

func (c *LandingController) Register(r *mux.Router) {
	r.HandleFunc("/", c.Get).Methods(http.MethodGet)
	r.HandleFunc("/choose-view", c.ChooseView).Methods(http.MethodGet)
	r.HandleFunc("/choose-view", c.CompleteView).Methods(http.MethodPost)
}

// redirectNavigator records the route the coordinator resolves; the HTTP
// answer to "replace navigation" is a redirect.
type redirectNavigator struct {
	route string
}

func (n *redirectNavigator) Replace(route string) {
	n.route = route
}

func resolverConfig() navigation.Config {
	conf := configuration.Use().Navigation
	hostRoutes := make([]navigation.HostRoute, 0, len(conf.HostRoutePairs()))
	for _, pair := range conf.HostRoutePairs() {
		hostRoutes = append(hostRoutes, navigation.HostRoute{
			HostContains: pair.HostContains,
			Route:        pair.Route,
		})
	}
	return navigation.Config{
		DevHosts:        conf.DevHostList(),
		UserTypeRoutes:  navigation.DefaultUserTypeRoutes(),
		TenantAllowlist: conf.TenantAllowlistIDs(),
		HostRoutes:      hostRoutes,
		DefaultRoute:    conf.DefaultRoute,
	}
}

func (c *LandingController) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	// a missing store would silently forget view selections, so fail instead
	store, err := composables.UsePrefs(ctx)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	cfg := resolverConfig()
	gate := navigation.NewViewGate(store, cfg.DevHosts)

	state, err := gate.Check(ctx, r.Host)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if state == navigation.GateAwaitingSelection {
		http.Redirect(w, r, "/choose-view", http.StatusFound)
		return
	}

	env := navigation.Environment{
		Hostname: r.Host,
		NavItems: composables.UseAllNavItems(ctx),
	}
	if u, err := composables.UseUser(ctx); err == nil {
		env.User = u
		env.UserType = u.UserType()
		env.PermissionsLoaded = true
	}
	if tenantID, err := composables.UseTenantID(ctx); err == nil {
		env.TenantID = tenantID
	}

	nav := &redirectNavigator{}
	coordinator := navigation.NewCoordinator(
		navigation.NewResolver(cfg), gate, nav,
		configuration.Use().Logger(),
	)
	if _, err := coordinator.Evaluate(ctx, env); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	route := nav.route
	if route == "" {
		// gated (no user yet): fall through to the declared catch-all
		route = cfg.DefaultRoute
	}
	http.Redirect(w, r, route, http.StatusFound)
}

func (c *LandingController) ChooseView(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<h1>%s</h1><form method="post" action="/choose-view">`,
		templ.EscapeString(pageCtx.T("ChooseView.Title")))
	for _, t := range []user.Type{user.TypeOrgAdmin, user.TypeOccupant, user.TypeVendor} {
		fmt.Fprintf(w,
			`<label><input type="radio" name="userType" value="%s"/> %s</label>`,
			templ.EscapeString(string(t)),
			templ.EscapeString(pageCtx.TSafe("ChooseView."+string(t))),
		)
	}
	fmt.Fprintf(w, `<button type="submit">%s</button></form>`,
		templ.EscapeString(pageCtx.T("ChooseView.Submit")))
}

type chooseViewForm struct {
	UserType string `form:"userType"`
	View     string `form:"view"`
}

func (c *LandingController) CompleteView(w http.ResponseWriter, r *http.Request) {
	f, err := composables.UseForm(&chooseViewForm{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userType := user.Type(f.UserType)
	if !userType.IsValid() {
		http.Error(w, "invalid user type", http.StatusBadRequest)
		return
	}
	view := f.View
	if view == "" {
		view = string(userType)
	}

	store, err := composables.UsePrefs(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	cfg := resolverConfig()
	gate := navigation.NewViewGate(store, cfg.DevHosts)
	if err := gate.Complete(r.Context(), view, userType); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
