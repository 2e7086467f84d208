package saved

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/sqlerr"
)

type SQL struct {
	conn *sqlx.DB
}

// SavedRepository stores the (account, listing) pairs. The pair is the
// primary key, so Insert and Delete are the only checks needed.
type SavedRepository interface {
	Insert(ctx context.Context, accountID, listingID uint64) error
	Delete(ctx context.Context, accountID, listingID uint64) (bool, error)
	ListingExists(ctx context.Context, listingID uint64) (bool, error)
	ListListings(ctx context.Context, accountID uint64) ([]model.ListingEntity, error)
}

func NewSavedRepository(conn *sqlx.DB) SavedRepository {
	return &SQL{conn: conn}
}

const (
	insertSavedQuery   = `INSERT INTO saved_listing (account_id, listing_id, created_at) VALUES (?, ?, NOW(6))`
	deleteSavedQuery   = `DELETE FROM saved_listing WHERE account_id = ? AND listing_id = ?`
	listingExistsQuery = `SELECT EXISTS(SELECT 1 FROM listing WHERE id = ?)`
	listSavedQuery     = `SELECT l.id, l.agent_id, l.name, l.description, l.location, l.price, l.bedrooms, l.bathrooms, l.lounges, l.is_new, l.is_furnished, l.search_vector, l.created_at,
(SELECT COUNT(*) FROM saved_listing c WHERE c.listing_id = l.id) AS likes
FROM saved_listing s
JOIN listing l ON l.id = s.listing_id
WHERE s.account_id = ?
ORDER BY s.created_at, l.id`
)

// Insert returns an error matching sqlerr.ErrDuplicate when the pair exists
// and sqlerr.ErrForeignKey when the listing or account does not.
func (s *SQL) Insert(ctx context.Context, accountID, listingID uint64) error {
	_, err := s.conn.ExecContext(ctx, insertSavedQuery, accountID, listingID)
	return sqlerr.Translate(err)
}

// Delete reports whether a pair was removed.
func (s *SQL) Delete(ctx context.Context, accountID, listingID uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteSavedQuery, accountID, listingID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) ListingExists(ctx context.Context, listingID uint64) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, listingExistsQuery, listingID); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQL) ListListings(ctx context.Context, accountID uint64) ([]model.ListingEntity, error) {
	items := make([]model.ListingEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listSavedQuery, accountID); err != nil {
		return nil, err
	}
	return items, nil
}
