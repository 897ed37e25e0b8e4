package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/fmstack/fmstack/modules/assets/domain/aggregates/asset"
	"github.com/fmstack/fmstack/pkg/composables"
)

var ErrAssetNotFound = errors.New("asset not found")

const (
	selectAssetsQuery = `
		SELECT id, tenant_id, name, category, location, status, serial_number, purchased_at, created_at
		FROM assets
		WHERE tenant_id = $1
		ORDER BY created_at DESC, id`
	selectAssetQuery = `
		SELECT id, tenant_id, name, category, location, status, serial_number, purchased_at, created_at
		FROM assets
		WHERE tenant_id = $1 AND id = $2`
	insertAssetQuery = `
		INSERT INTO assets (id, tenant_id, name, category, location, status, serial_number, purchased_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	updateAssetQuery = `
		UPDATE assets
		SET name = $3, category = $4, location = $5, status = $6, serial_number = $7, purchased_at = $8
		WHERE tenant_id = $1 AND id = $2`
	deleteAssetQuery = `DELETE FROM assets WHERE tenant_id = $1 AND id = $2`
	countAssetsQuery = `SELECT COUNT(*) FROM assets WHERE tenant_id = $1`
)

type assetRow struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Name         string
	Category     string
	Location     string
	Status       string
	SerialNumber string
	PurchasedAt  time.Time
	CreatedAt    time.Time
}

func toDomainAsset(r assetRow) asset.Asset {
	return asset.New(
		r.Name,
		r.Category,
		asset.WithID(r.ID),
		asset.WithTenantID(r.TenantID),
		asset.WithLocation(r.Location),
		asset.WithStatus(asset.Status(r.Status)),
		asset.WithSerialNumber(r.SerialNumber),
		asset.WithPurchasedAt(r.PurchasedAt),
		asset.WithCreatedAt(r.CreatedAt),
	)
}

type PgAssetRepository struct{}

func NewAssetRepository() asset.Repository {
	return &PgAssetRepository{}
}

func (g *PgAssetRepository) GetAll(ctx context.Context) ([]asset.Asset, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, selectAssetsQuery, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query assets")
	}
	defer rows.Close()

	var out []asset.Asset
	for rows.Next() {
		var r assetRow
		if err := rows.Scan(
			&r.ID, &r.TenantID, &r.Name, &r.Category, &r.Location,
			&r.Status, &r.SerialNumber, &r.PurchasedAt, &r.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan asset")
		}
		out = append(out, toDomainAsset(r))
	}
	return out, rows.Err()
}

func (g *PgAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (asset.Asset, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	var r assetRow
	err = pool.QueryRow(ctx, selectAssetQuery, tenantID, id).Scan(
		&r.ID, &r.TenantID, &r.Name, &r.Category, &r.Location,
		&r.Status, &r.SerialNumber, &r.PurchasedAt, &r.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query asset")
	}
	return toDomainAsset(r), nil
}

func (g *PgAssetRepository) Create(ctx context.Context, data asset.Asset) (asset.Asset, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, insertAssetQuery,
		data.ID(), tenantID, data.Name(), data.Category(), data.Location(),
		string(data.Status()), data.SerialNumber(), data.PurchasedAt(), data.CreatedAt(),
	); err != nil {
		return nil, errors.Wrap(err, "failed to insert asset")
	}
	return g.GetByID(ctx, data.ID())
}

func (g *PgAssetRepository) Update(ctx context.Context, data asset.Asset) (asset.Asset, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	tag, err := pool.Exec(ctx, updateAssetQuery,
		tenantID, data.ID(), data.Name(), data.Category(), data.Location(),
		string(data.Status()), data.SerialNumber(), data.PurchasedAt(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update asset")
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrAssetNotFound
	}
	return g.GetByID(ctx, data.ID())
}

func (g *PgAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}

	tag, err := pool.Exec(ctx, deleteAssetQuery, tenantID, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete asset")
	}
	if tag.RowsAffected() == 0 {
		return ErrAssetNotFound
	}
	return nil
}

func (g *PgAssetRepository) Count(ctx context.Context) (int64, error) {
	pool, err := composables.UsePool(ctx)
	if err != nil {
		return 0, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := pool.QueryRow(ctx, countAssetsQuery, tenantID).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count assets")
	}
	return count, nil
}
