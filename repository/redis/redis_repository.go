package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/constant"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	goredis "github.com/redis/go-redis/v9"
)

// Repository stores login sessions keyed by JWT id.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, principal model.Principal, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*model.Principal, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// SetSession stores the session principal as a hash with TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, principal model.Principal, ttl time.Duration) error {
	key := sessionKey(sessionID)
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key, "account_id", principal.AccountID, "role", string(principal.Role))
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

// GetSession returns goredis.Nil when the session is unknown or expired.
func (r *redis) GetSession(ctx context.Context, sessionID string) (*model.Principal, error) {
	fields, err := r.client.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, goredis.Nil
	}

	id, err := strconv.ParseUint(fields["account_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt session %s: %w", sessionID, err)
	}
	role := constant.Role(fields["role"])
	if !role.Valid() {
		return nil, fmt.Errorf("corrupt session %s: unknown role %q", sessionID, role)
	}
	return &model.Principal{AccountID: id, Role: role}, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}
