package auditrepo

import (
	"context"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/GlebRadaev/rewardcore/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	query := `
		INSERT INTO audit_log (actor_id, target_id, action, detail, created_at)
		VALUES (NULLIF($1, '')::uuid, NULLIF($2, '')::uuid, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, event.ActorID, event.TargetID, event.Action, event.Detail, event.CreatedAt)
	if err != nil {
		zap.L().Error("can't insert audit event", zap.Error(err))
		return err
	}
	return nil
}
