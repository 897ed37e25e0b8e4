package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/fmstack/fmstack/modules/assets/domain/aggregates/asset"
	"github.com/fmstack/fmstack/pkg/eventbus"
)

type AssetCreatedEvent struct {
	Result asset.Asset
}

type AssetUpdatedEvent struct {
	Result asset.Asset
}

type AssetDeletedEvent struct {
	ID uuid.UUID
}

type AssetService struct {
	repo      asset.Repository
	publisher eventbus.EventBus
}

func NewAssetService(repo asset.Repository, publisher eventbus.EventBus) *AssetService {
	return &AssetService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *AssetService) GetAll(ctx context.Context) ([]asset.Asset, error) {
	return s.repo.GetAll(ctx)
}

func (s *AssetService) GetByID(ctx context.Context, id uuid.UUID) (asset.Asset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AssetService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *AssetService) Create(ctx context.Context, data asset.Asset) (asset.Asset, error) {
	created, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(AssetCreatedEvent{Result: created})
	return created, nil
}

func (s *AssetService) Update(ctx context.Context, data asset.Asset) (asset.Asset, error) {
	updated, err := s.repo.Update(ctx, data)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(AssetUpdatedEvent{Result: updated})
	return updated, nil
}

func (s *AssetService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(AssetDeletedEvent{ID: id})
	return nil
}
