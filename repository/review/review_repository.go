package review

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/sqlerr"
)

type SQL struct {
	conn *sqlx.DB
}

// ReviewRepository has no update or delete: reviews are immutable.
type ReviewRepository interface {
	Create(ctx context.Context, data *model.ReviewEntity) (uint64, error)
	ListByListingIDs(ctx context.Context, listingIDs []uint64) ([]model.ReviewDetail, error)
}

func NewReviewRepository(conn *sqlx.DB) ReviewRepository {
	return &SQL{conn: conn}
}

const (
	insertReviewQuery = `INSERT INTO review (listing_id, account_id, message, created_at) VALUES (?, ?, ?, NOW())`
	listReviewsQuery  = `SELECT r.id, r.listing_id, r.account_id, r.message, r.created_at, a.first_name, a.last_name, a.email
FROM review r
JOIN account a ON a.id = r.account_id
WHERE r.listing_id IN (?)
ORDER BY r.id`
)

func (s *SQL) Create(ctx context.Context, data *model.ReviewEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, insertReviewQuery, data.ListingID, data.AccountID, data.Message)
	if err != nil {
		return 0, sqlerr.Translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) ListByListingIDs(ctx context.Context, listingIDs []uint64) ([]model.ReviewDetail, error) {
	reviews := make([]model.ReviewDetail, 0)
	if len(listingIDs) == 0 {
		return reviews, nil
	}
	query, args, err := sqlx.In(listReviewsQuery, listingIDs)
	if err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &reviews, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return reviews, nil
}
