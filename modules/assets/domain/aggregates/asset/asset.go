package asset

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusRetired:
		return true
	}
	return false
}

type Asset interface {
	ID() uuid.UUID
	TenantID() uuid.UUID
	Name() string
	Category() string
	Location() string
	Status() Status
	SerialNumber() string
	PurchasedAt() time.Time
	CreatedAt() time.Time

	SetStatus(status Status) Asset
}

type Option func(*a)

func WithID(id uuid.UUID) Option {
	return func(x *a) {
		x.id = id
	}
}

func WithTenantID(tenantID uuid.UUID) Option {
	return func(x *a) {
		x.tenantID = tenantID
	}
}

func WithLocation(location string) Option {
	return func(x *a) {
		x.location = location
	}
}

func WithStatus(status Status) Option {
	return func(x *a) {
		x.status = status
	}
}

func WithSerialNumber(serial string) Option {
	return func(x *a) {
		x.serialNumber = serial
	}
}

func WithPurchasedAt(purchasedAt time.Time) Option {
	return func(x *a) {
		x.purchasedAt = purchasedAt
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(x *a) {
		x.createdAt = createdAt
	}
}

func New(name, category string, opts ...Option) Asset {
	x := &a{
		id:        uuid.New(),
		name:      name,
		category:  category,
		status:    StatusActive,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

type a struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	name         string
	category     string
	location     string
	status       Status
	serialNumber string
	purchasedAt  time.Time
	createdAt    time.Time
}

func (x *a) ID() uuid.UUID {
	return x.id
}

func (x *a) TenantID() uuid.UUID {
	return x.tenantID
}

func (x *a) Name() string {
	return x.name
}

func (x *a) Category() string {
	return x.category
}

func (x *a) Location() string {
	return x.location
}

func (x *a) Status() Status {
	return x.status
}

func (x *a) SerialNumber() string {
	return x.serialNumber
}

func (x *a) PurchasedAt() time.Time {
	return x.purchasedAt
}

func (x *a) CreatedAt() time.Time {
	return x.createdAt
}

func (x *a) SetStatus(status Status) Asset {
	out := *x
	out.status = status
	return &out
}
