package agent

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

type AgentRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AgentEntity) error
	Get(ctx context.Context, filter *model.AgentFilter) (*model.AgentEntity, error)
	ListByAccountIDs(ctx context.Context, ids []uint64) ([]model.AgentEntity, error)
}

func NewAgentRepository(conn *sqlx.DB) AgentRepository {
	return &SQL{conn: conn}
}

const (
	insertAgentQuery = `INSERT INTO agent (account_id, phone_number, display_name) VALUES (?, ?, ?)`
	getAgentBase     = `SELECT account_id, phone_number, display_name FROM agent WHERE true`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AgentEntity) error {
	_, err := tx.ExecContext(ctx, insertAgentQuery, data.AccountID, data.PhoneNumber, data.DisplayName)
	return sqlerr.Translate(err)
}

func (s *SQL) Get(ctx context.Context, filter *model.AgentFilter) (*model.AgentEntity, error) {
	query := getAgentBase
	args := make([]any, 0, 2)

	if filter.AccountID != 0 {
		query += " AND account_id = ?"
		args = append(args, filter.AccountID)
	}
	if filter.DisplayName != "" {
		query += " AND display_name = ?"
		args = append(args, filter.DisplayName)
	}

	var entity model.AgentEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByAccountIDs(ctx context.Context, ids []uint64) ([]model.AgentEntity, error) {
	agents := make([]model.AgentEntity, 0, len(ids))
	if len(ids) == 0 {
		return agents, nil
	}
	query, args, err := sqlx.In(getAgentBase+" AND account_id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &agents, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return agents, nil
}
