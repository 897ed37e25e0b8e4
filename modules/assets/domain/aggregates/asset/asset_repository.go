package asset

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Asset, error)
	GetByID(ctx context.Context, id uuid.UUID) (Asset, error)
	Create(ctx context.Context, data Asset) (Asset, error)
	Update(ctx context.Context, data Asset) (Asset, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
