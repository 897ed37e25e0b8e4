package assets

import (
	"embed"

	"github.com/fmstack/fmstack/modules/assets/infrastructure/persistence"
	"github.com/fmstack/fmstack/modules/assets/presentation/controllers"
	"github.com/fmstack/fmstack/modules/assets/services"
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

	assetRepo := persistence.NewAssetRepository()
	app.RegisterServices(
		services.NewAssetService(assetRepo, app.EventPublisher()),
	)

	app.RegisterControllers(
		controllers.NewAssetsController(app),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}

func (m *Module) Name() string {
	return "assets"
}
