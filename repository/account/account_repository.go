package account

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/repository/sqlerr"
)

type SQL struct {
	conn *sqlx.DB
}

type AccountRepository interface {
	Create(ctx context.Context, data *model.AccountEntity) (*model.AccountEntity, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AccountEntity) (*model.AccountEntity, error)
	Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error)
	MarkConfirmed(ctx context.Context, id uint64) (bool, error)
}

func NewAccountRepository(conn *sqlx.DB) AccountRepository {
	return &SQL{conn: conn}
}

const (
	insertAccountQuery = `INSERT INTO account (email, password_hash, first_name, last_name, role, is_confirmed, confirmation_code, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`
	getAccountBase     = `SELECT id, email, password_hash, first_name, last_name, role, is_confirmed, confirmation_code, created_at, updated_at FROM account WHERE true`
	// the is_confirmed guard makes the Unconfirmed -> Confirmed step happen once
	markConfirmedQuery = `UPDATE account SET is_confirmed = 1, updated_at = NOW() WHERE id = ? AND is_confirmed = 0`
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQL) Create(ctx context.Context, data *model.AccountEntity) (*model.AccountEntity, error) {
	return create(ctx, s.conn, data)
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AccountEntity) (*model.AccountEntity, error) {
	return create(ctx, tx, data)
}

func create(ctx context.Context, db execer, data *model.AccountEntity) (*model.AccountEntity, error) {
	result, err := db.ExecContext(ctx, insertAccountQuery,
		data.Email, data.PasswordHash, data.FirstName, data.LastName, data.Role, data.IsConfirmed, data.ConfirmationCode)
	if err != nil {
		return nil, sqlerr.Translate(err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// Get returns the first account matching filter, or nil when none does.
// Codes are not unique, so lookups by confirmation code prefer unconfirmed
// holders and then the oldest one.
func (s *SQL) Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error) {
	query := getAccountBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.ConfirmationCode != 0 {
		query += " AND confirmation_code = ?"
		args = append(args, filter.ConfirmationCode)
	}
	if filter.ConfirmationCode != 0 {
		query += " ORDER BY is_confirmed, id LIMIT 1"
	} else {
		query += " ORDER BY id LIMIT 1"
	}

	var entity model.AccountEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// MarkConfirmed confirms an unconfirmed account. It reports false when the
// account was already confirmed (or does not exist).
func (s *SQL) MarkConfirmed(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, markConfirmedQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
