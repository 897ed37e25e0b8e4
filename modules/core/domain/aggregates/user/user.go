package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/fmstack/fmstack/modules/core/domain/entities/permission"
)

// Type distinguishes the broad audience categories the application serves.
// Stored as a session flag and consulted by the landing-route fallback chain.
type Type string

const (
	TypeOrgAdmin Type = "org_admin"
	TypeOccupant Type = "occupant"
	TypeVendor   Type = "vendor"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeOrgAdmin, TypeOccupant, TypeVendor:
		return true
	}
	return false
}

type User interface {
	ID() uuid.UUID
	TenantID() uuid.UUID
	Email() string
	Name() string
	UserType() Type
	Permissions() []*permission.Permission
	Can(perm *permission.Permission) bool
	CreatedAt() time.Time
}

type Option func(*user)

func WithID(id uuid.UUID) Option {
	return func(u *user) {
		u.id = id
	}
}

func WithTenantID(tenantID uuid.UUID) Option {
	return func(u *user) {
		u.tenantID = tenantID
	}
}

func WithUserType(t Type) Option {
	return func(u *user) {
		u.userType = t
	}
}

func WithPermissions(perms []*permission.Permission) Option {
	return func(u *user) {
		u.permissions = perms
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(u *user) {
		u.createdAt = createdAt
	}
}

func New(name, email string, opts ...Option) User {
	u := &user{
		id:        uuid.New(),
		name:      name,
		email:     email,
		userType:  TypeOccupant,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type user struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	name        string
	email       string
	userType    Type
	permissions []*permission.Permission
	createdAt   time.Time
}

func (u *user) ID() uuid.UUID {
	return u.id
}

func (u *user) TenantID() uuid.UUID {
	return u.tenantID
}

func (u *user) Email() string {
	return u.email
}

func (u *user) Name() string {
	return u.name
}

func (u *user) UserType() Type {
	return u.userType
}

func (u *user) Permissions() []*permission.Permission {
	return u.permissions
}

func (u *user) Can(perm *permission.Permission) bool {
	for _, p := range u.permissions {
		if p.Equals(perm) {
			return true
		}
	}
	return false
}

func (u *user) CreatedAt() time.Time {
	return u.createdAt
}
