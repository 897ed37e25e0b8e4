package permission

import (
	"github.com/google/uuid"
)

type Resource string
type Action string
type Modifier string

const (
	ResourceAsset     Resource = "asset"
	ResourceTicket    Resource = "ticket"
	ResourceIncident  Resource = "incident"
	ResourceGatePass  Resource = "gate_pass"
	ResourceChecklist Resource = "checklist"
	ResourceFinance   Resource = "finance"
	ResourceExport    Resource = "export"
)

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
)

const (
	ModifierAll Modifier = "all"
	ModifierOwn Modifier = "own"
)

// Permission is a single grantable capability. A user holds a flat set of
// these; navigation items and controllers declare which ones they require.
type Permission struct {
	ID       uuid.UUID
	Name     string
	Resource Resource
	Action   Action
	Modifier Modifier
}

// Equals ignores the ID so statically declared permissions compare equal to
// their persisted counterparts.
func (p *Permission) Equals(other *Permission) bool {
	return p.Resource == other.Resource &&
		p.Action == other.Action &&
		p.Modifier == other.Modifier
}
