package assets

import (
	"github.com/fmstack/fmstack/modules/core/domain/entities/permission"
	"github.com/fmstack/fmstack/pkg/types"
)

var RegistryLink = types.NavigationItem{
	Name:        "NavigationLinks.AssetRegistry",
	Href:        "/assets",
	Permissions: []*permission.Permission{permission.AssetView},
}

var AssetsLink = types.NavigationItem{
	Name: "NavigationLinks.Assets",
	Href: "#",
	Children: []types.NavigationItem{
		RegistryLink,
	},
}

var NavItems = []types.NavigationItem{
	AssetsLink,
}
