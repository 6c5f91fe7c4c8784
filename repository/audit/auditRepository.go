// Package audit records admin actions (payout decisions, bans, deletions)
// into a local Postgres table. The trail is best-effort: a nil pool disables
// it and write failures are logged by callers, never surfaced to the admin.
package audit

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Entry struct {
	ActorEmail string
	Action     string
	EntityType string
	EntityID   string
	Metadata   map[string]any
}

type Repo interface {
	Write(ctx context.Context, e Entry) error
}

type repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) Repo { return &repo{pool: pool} }

func (r *repo) Write(ctx context.Context, e Entry) error {
	if r.pool == nil {
		return nil
	}

	var metadata any
	if len(e.Metadata) > 0 {
		b, err := json.Marshal(e.Metadata)
		if err != nil {
			return err
		}
		metadata = json.RawMessage(b)
	}

	_, err := r.pool.Exec(ctx, `
INSERT INTO admin_audit_logs (id, actor_email, action, entity_type, entity_id, metadata)
VALUES ($1, $2, $3, $4, $5, $6)
`, uuid.NewString(), e.ActorEmail, e.Action, e.EntityType, e.EntityID, metadata)

	return err
}
