package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fmstack/fmstack/pkg/application"
	"github.com/fmstack/fmstack/pkg/composables"
)

// SpotlightController serves the quick-jump palette search. Results are
// rendered HTML fragments, one anchor per hit.
type SpotlightController struct {
	app application.Application
}

func NewSpotlightController(app application.Application) application.Controller {
	return &SpotlightController{app: app}
}

func (c *SpotlightController) Key() string {
	return "/spotlight"
}

func (c *SpotlightController) Register(r *mux.Router) {
	router := r.PathPrefix("/spotlight").Subrouter()
	router.HandleFunc("/search", c.Search).Methods(http.MethodGet)
}

func (c *SpotlightController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	items := c.app.QuickLinks().Find(r.Context(), q)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, item := range items {
		if err := item.Render(r.Context(), w); err != nil {
			logger := composables.UseLogger(r.Context())
			logger.WithError(err).Error("failed to render spotlight item")
			return
		}
	}
}
