package core

import (
	"embed"

	"github.com/fmstack/fmstack/modules/core/presentation/controllers"
	"github.com/fmstack/fmstack/pkg/application"
)

//go:embed presentation/locales/*.toml
var LocaleFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterControllers(
		controllers.NewHealthController(app),
		controllers.NewSpotlightController(app),
		controllers.NewLandingController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "core"
}
