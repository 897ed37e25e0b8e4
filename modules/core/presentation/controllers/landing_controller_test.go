package controllers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/fmstack/fmstack/modules/core/presentation/controllers"
	"github.com/fmstack/fmstack/pkg/application"
	"github.com/fmstack/fmstack/pkg/eventbus"
)

func landingRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})

	router := mux.NewRouter()
	controllers.NewLandingController(app).Register(router)
	return router
}

// Without a preferences store a view selection would be written into nothing
// and the dev-host prompt would repeat forever, so the handlers must refuse.
func TestLanding_FailsWithoutPrefsStore(t *testing.T) {
	t.Parallel()

	router := landingRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestChooseView_FailsWithoutPrefsStore(t *testing.T) {
	t.Parallel()

	router := landingRouter(t)

	form := url.Values{"userType": {"vendor"}}
	req := httptest.NewRequest(http.MethodPost, "/choose-view", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
