package controllers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	assetsmodule "github.com/fmstack/fmstack/modules/assets"
	"github.com/fmstack/fmstack/modules/assets/domain/aggregates/asset"
	"github.com/fmstack/fmstack/modules/assets/infrastructure/persistence"
	"github.com/fmstack/fmstack/modules/assets/presentation/controllers"
	"github.com/fmstack/fmstack/modules/assets/services"
	"github.com/fmstack/fmstack/pkg/application"
	"github.com/fmstack/fmstack/pkg/composables"
	"github.com/fmstack/fmstack/pkg/constants"
	"github.com/fmstack/fmstack/pkg/eventbus"
	"github.com/fmstack/fmstack/pkg/prefs"
	"github.com/fmstack/fmstack/pkg/types"
)

type env struct {
	handler http.Handler
	repo    *persistence.InMemoryAssetRepository
	store   prefs.Store
}

func setup(t *testing.T) *env {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	bus := eventbus.NewEventPublisher(logger)
	app := application.New(&application.ApplicationOptions{
		EventBus: bus,
		Logger:   logger,
	})
	app.RegisterLocaleFiles(&assetsmodule.LocaleFiles)

	repo := persistence.NewInMemoryAssetRepository()
	app.RegisterServices(services.NewAssetService(repo, bus))

	store := prefs.NewMemoryStore()
	localizer := i18n.NewLocalizer(app.Bundle(), "en")

	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx = composables.WithPrefs(ctx, store)
			ctx = composables.WithPageCtx(ctx, &types.PageContext{
				URL:       r.URL,
				Localizer: localizer,
				Locale:    language.English,
			})
			entry := logger.WithField("test", t.Name())
			ctx = context.WithValue(ctx, constants.LoggerKey, entry)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	controllers.NewAssetsController(app).Register(router)

	return &env{handler: router, repo: repo, store: store}
}

func seedAssets(t *testing.T, repo *persistence.InMemoryAssetRepository) {
	t.Helper()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	fixtures := []asset.Asset{
		asset.New("Chiller A", "HVAC",
			asset.WithLocation("Roof"),
			asset.WithSerialNumber("CH-001"),
			asset.WithPurchasedAt(base),
			asset.WithCreatedAt(base),
		),
		asset.New("Elevator 1", "Transport",
			asset.WithLocation("Core"),
			asset.WithStatus(asset.StatusMaintenance),
			asset.WithSerialNumber("EL-001"),
			asset.WithPurchasedAt(base.AddDate(0, 1, 0)),
			asset.WithCreatedAt(base.AddDate(0, 0, 1)),
		),
		asset.New("Fire panel", "Safety",
			asset.WithLocation("Lobby"),
			asset.WithSerialNumber("FP-001"),
			asset.WithPurchasedAt(base.AddDate(0, 2, 0)),
			asset.WithCreatedAt(base.AddDate(0, 0, 2)),
		),
	}
	for _, a := range fixtures {
		_, err := repo.Create(t.Context(), a)
		require.NoError(t, err)
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAssetsList_RendersRows(t *testing.T) {
	t.Parallel()

	e := setup(t)
	seedAssets(t, e.repo)

	rec := get(t, e.handler, "/assets")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, "Chiller A")
	require.Contains(t, body, "Elevator 1")
	require.Contains(t, body, "Fire panel")
	// hidden-by-default column stays out of the table
	require.NotContains(t, body, "CH-001")
}

func TestAssetsList_Search(t *testing.T) {
	t.Parallel()

	e := setup(t)
	seedAssets(t, e.repo)

	rec := get(t, e.handler, "/assets?search=chiller")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, "Chiller A")
	require.NotContains(t, body, "Elevator 1")
}

func TestAssetsList_StatusFilter(t *testing.T) {
	t.Parallel()

	e := setup(t)
	seedAssets(t, e.repo)

	rec := get(t, e.handler, "/assets?status=maintenance")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	require.Contains(t, body, "Elevator 1")
	require.NotContains(t, body, "Chiller A")
}

func TestAssetsList_EmptyMessage(t *testing.T) {
	t.Parallel()

	e := setup(t)

	rec := get(t, e.handler, "/assets")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No assets found")
}

func TestAssetsExport_CSVCoversFilteredSet(t *testing.T) {
	t.Parallel()

	e := setup(t)
	seedAssets(t, e.repo)

	rec := get(t, e.handler, "/assets?export=csv&search=e")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	lines := strings.Split(strings.TrimSpace(body), "\n")
	// header plus every match, not just the visible page
	require.Equal(t, "Name,Category,Location,Status,Purchased", lines[0])
	require.Contains(t, body, "Chiller A")
	require.Contains(t, body, "Elevator 1")
	require.Contains(t, body, "Fire panel")
}

func TestAssetsLayout_PersistsAcrossRequests(t *testing.T) {
	t.Parallel()

	e := setup(t)
	seedAssets(t, e.repo)

	form := url.Values{}
	form.Set("order", "name,status,category,location,serialNumber,purchasedAt")
	form.Set("hidden", "location")

	req := httptest.NewRequest(http.MethodPost, "/assets/layout", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	list := get(t, e.handler, "/assets")
	body := list.Body.String()
	require.NotContains(t, body, "Roof")
	require.Contains(t, body, "Chiller A")
}
