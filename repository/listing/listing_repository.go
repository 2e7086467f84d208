package listing

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/sqlerr"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/textsearch"
)

type SQL struct {
	conn *sqlx.DB
}

type ListingRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.ListingEntity) (uint64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.ListingEntity) error
	UpdateSearchVectorTx(ctx context.Context, tx *sqlx.Tx, id uint64, vector textsearch.Vector) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	GetByID(ctx context.Context, id uint64) (*model.ListingEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ListingEntity, error)
	List(ctx context.Context) ([]model.ListingEntity, error)
	ListTx(ctx context.Context, tx *sqlx.Tx) ([]model.ListingEntity, error)
	FindByLexemes(ctx context.Context, lexemes []string) ([]model.ListingEntity, error)
}

func NewListingRepository(conn *sqlx.DB) ListingRepository {
	return &SQL{conn: conn}
}

const (
	insertListingQuery = `INSERT INTO listing (agent_id, name, description, location, price, bedrooms, bathrooms, lounges, is_new, is_furnished, search_vector, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	updateListingQuery = `UPDATE listing SET name = ?, description = ?, location = ?, price = ?, bedrooms = ?, bathrooms = ?, lounges = ?, is_new = ?, is_furnished = ?, search_vector = ?
WHERE id = ?`

	updateSearchVectorQuery = `UPDATE listing SET search_vector = ? WHERE id = ?`

	deleteListingQuery = `DELETE FROM listing WHERE id = ?`

	selectListingBase = `SELECT l.id, l.agent_id, l.name, l.description, l.location, l.price, l.bedrooms, l.bathrooms, l.lounges, l.is_new, l.is_furnished, l.search_vector, l.created_at,
(SELECT COUNT(*) FROM saved_listing s WHERE s.listing_id = l.id) AS likes
FROM listing l`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.ListingEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertListingQuery,
		data.AgentID, data.Name, data.Description, data.Location, data.Price,
		data.Bedrooms, data.Bathrooms, data.Lounges, data.IsNew, data.IsFurnished, data.SearchVector)
	if err != nil {
		return 0, sqlerr.Translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// UpdateTx writes every mutable column, the search vector included, in a
// single statement.
func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.ListingEntity) error {
	_, err := tx.ExecContext(ctx, updateListingQuery,
		data.Name, data.Description, data.Location, data.Price, data.Bedrooms, data.Bathrooms,
		data.Lounges, data.IsNew, data.IsFurnished, data.SearchVector, data.ID)
	return err
}

func (s *SQL) UpdateSearchVectorTx(ctx context.Context, tx *sqlx.Tx, id uint64, vector textsearch.Vector) error {
	_, err := tx.ExecContext(ctx, updateSearchVectorQuery, vector, id)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx, deleteListingQuery, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ListingEntity, error) {
	var entity model.ListingEntity
	if err := s.conn.QueryRowxContext(ctx, selectListingBase+" WHERE l.id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetByIDTx locks the listing row for the rest of tx.
func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ListingEntity, error) {
	var entity model.ListingEntity
	if err := tx.QueryRowxContext(ctx, selectListingBase+" WHERE l.id = ? FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.ListingEntity, error) {
	items := make([]model.ListingEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, selectListingBase+" ORDER BY l.id"); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ListTx(ctx context.Context, tx *sqlx.Tx) ([]model.ListingEntity, error) {
	items := make([]model.ListingEntity, 0)
	if err := tx.SelectContext(ctx, &items, selectListingBase+" ORDER BY l.id FOR UPDATE"); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByLexemes returns listings whose search vector holds every lexeme.
func (s *SQL) FindByLexemes(ctx context.Context, lexemes []string) ([]model.ListingEntity, error) {
	items := make([]model.ListingEntity, 0)
	if len(lexemes) == 0 {
		return items, nil
	}

	placeholders := make([]string, len(lexemes))
	args := make([]any, len(lexemes))
	for i, lx := range lexemes {
		placeholders[i] = "?"
		args[i] = fmt.Sprintf(`$."%s"`, lx)
	}
	query := selectListingBase +
		" WHERE JSON_CONTAINS_PATH(l.search_vector, 'all', " + strings.Join(placeholders, ", ") + ") ORDER BY l.id"

	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
