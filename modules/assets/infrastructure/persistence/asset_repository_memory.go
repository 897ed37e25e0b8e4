package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/fmstack/fmstack/modules/assets/domain/aggregates/asset"
)

// InMemoryAssetRepository backs controller and service tests that should not
// need a database.
type InMemoryAssetRepository struct {
	mu     sync.RWMutex
	assets map[uuid.UUID]asset.Asset
}

func NewInMemoryAssetRepository() *InMemoryAssetRepository {
	return &InMemoryAssetRepository{assets: make(map[uuid.UUID]asset.Asset)}
}

func (m *InMemoryAssetRepository) GetAll(ctx context.Context) ([]asset.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]asset.Asset, 0, len(m.assets))
	for _, a := range m.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().After(out[j].CreatedAt())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out, nil
}

func (m *InMemoryAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (asset.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assets[id]
	if !ok {
		return nil, ErrAssetNotFound
	}
	return a, nil
}

func (m *InMemoryAssetRepository) Create(ctx context.Context, data asset.Asset) (asset.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[data.ID()] = data
	return data, nil
}

func (m *InMemoryAssetRepository) Update(ctx context.Context, data asset.Asset) (asset.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assets[data.ID()]; !ok {
		return nil, ErrAssetNotFound
	}
	m.assets[data.ID()] = data
	return data, nil
}

func (m *InMemoryAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assets[id]; !ok {
		return ErrAssetNotFound
	}
	delete(m.assets, id)
	return nil
}

func (m *InMemoryAssetRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.assets)), nil
}
