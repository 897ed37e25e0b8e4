package modules

import (
	"github.com/fmstack/fmstack/modules/assets"
	"github.com/fmstack/fmstack/modules/core"
	"github.com/fmstack/fmstack/pkg/application"
)

var BuiltInModules = []application.Module{
	core.NewModule(),
	assets.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
