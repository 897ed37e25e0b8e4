package server

import (
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/fmstack/fmstack/modules/core/presentation/controllers"
	"github.com/fmstack/fmstack/pkg/application"
	"github.com/fmstack/fmstack/pkg/configuration"
	"github.com/fmstack/fmstack/pkg/constants"
	"github.com/fmstack/fmstack/pkg/metrics"
	"github.com/fmstack/fmstack/pkg/middleware"
	"github.com/fmstack/fmstack/pkg/prefs"
	"github.com/fmstack/fmstack/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	conf := options.Configuration

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger, middleware.LoggerOptions{}),

		middleware.TracedMiddleware("provide"),
		middleware.Provide(constants.AppKey, app),
		middleware.WithPool(options.Pool),
		middleware.WithPrefs(prefs.NewPgxStore(options.Pool)),

		middleware.TracedMiddleware("cors"),
		middleware.Cors("http://localhost:3000"),
	}

	if conf.RateLimit.Enabled {
		middlewares = append(middlewares,
			middleware.TracedMiddleware("rateLimit"),
			middleware.RateLimit(middleware.RateLimitConfig{
				RequestsPerPeriod: conf.RateLimit.GlobalRPS,
			}),
		)
	}
	if conf.Prometheus.Enabled {
		middlewares = append(middlewares, metrics.RequestMetrics())
	}

	middlewares = append(middlewares,
		middleware.TracedMiddleware("requestParams"),
		middleware.RequestParams(),
		middleware.ProvideLocalizer(app),
		middleware.NavItems(app),
		middleware.WithPageContext(),
	)

	app.RegisterMiddleware(middlewares...)

	serverInstance := server.NewHTTPServer(
		app,
		controllers.NotFound(app),
		controllers.MethodNotAllowed(),
	)
	return serverInstance, nil
}
