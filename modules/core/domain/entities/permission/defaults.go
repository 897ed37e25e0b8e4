package permission

import "github.com/google/uuid"

var (
	AssetView = &Permission{
		ID:       uuid.MustParse("8f2b1c8e-2c6b-4a72-9f3e-0d1a2b3c4d5e"),
		Name:     "Asset.View",
		Resource: ResourceAsset,
		Action:   ActionView,
		Modifier: ModifierAll,
	}
	AssetExport = &Permission{
		ID:       uuid.MustParse("3a9d4e0f-6b1c-4f2a-8e7d-9c0b1a2d3e4f"),
		Name:     "Asset.Export",
		Resource: ResourceAsset,
		Action:   ActionExport,
		Modifier: ModifierAll,
	}
	TicketView = &Permission{
		ID:       uuid.MustParse("5c7e9a1b-3d5f-4c8e-b2a4-6f8d0c2e4a6b"),
		Name:     "Ticket.View",
		Resource: ResourceTicket,
		Action:   ActionView,
		Modifier: ModifierAll,
	}
	IncidentView = &Permission{
		ID:       uuid.MustParse("7e1f3b5d-9a2c-4e6f-8b0d-2c4a6e8f0b1d"),
		Name:     "Incident.View",
		Resource: ResourceIncident,
		Action:   ActionView,
		Modifier: ModifierAll,
	}
	GatePassView = &Permission{
		ID:       uuid.MustParse("9b3d5f7a-1c4e-4a8b-9d2f-4e6a8c0b2d4f"),
		Name:     "GatePass.View",
		Resource: ResourceGatePass,
		Action:   ActionView,
		Modifier: ModifierAll,
	}
	FinanceView = &Permission{
		ID:       uuid.MustParse("1d5f7b9c-3e6a-4c2d-8f4b-6a8c0e2d4f6a"),
		Name:     "Finance.View",
		Resource: ResourceFinance,
		Action:   ActionView,
		Modifier: ModifierAll,
	}
)

// All lists the permissions seeded for every tenant.
var All = []*Permission{
	AssetView,
	AssetExport,
	TicketView,
	IncidentView,
	GatePassView,
	FinanceView,
}
