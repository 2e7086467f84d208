package image

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ImageRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.ListingImageEntity) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.ListingImageEntity, error)
	ListByListingIDs(ctx context.Context, listingIDs []uint64) ([]model.ListingImageEntity, error)
	Delete(ctx context.Context, id uint64) error
}

func NewImageRepository(conn *sqlx.DB) ImageRepository {
	return &SQL{conn: conn}
}

const (
	insertImageQuery = `INSERT INTO listing_image (listing_id, blob_key, url, created_at) VALUES (?, ?, ?, NOW())`
	selectImageBase  = `SELECT id, listing_id, blob_key, url, created_at FROM listing_image`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.ListingImageEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertImageQuery, data.ListingID, data.BlobKey, data.URL)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ListingImageEntity, error) {
	var entity model.ListingImageEntity
	if err := s.conn.GetContext(ctx, &entity, selectImageBase+" WHERE id = ?", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByListingIDs(ctx context.Context, listingIDs []uint64) ([]model.ListingImageEntity, error) {
	images := make([]model.ListingImageEntity, 0)
	if len(listingIDs) == 0 {
		return images, nil
	}
	query, args, err := sqlx.In(selectImageBase+" WHERE listing_id IN (?) ORDER BY id", listingIDs)
	if err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &images, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return images, nil
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM listing_image WHERE id = ?", id)
	return err
}
