package ledgerrepo

import (
	"context"
	"time"

	"github.com/google/uuid"

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

// Append inserts a new ledger entry. Entries are never updated or deleted
// after this point.
func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (id, entry_type, from_account_id, from_name, to_account_id, to_name, amount, description)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, NULLIF($5, '')::uuid, $6, $7, $8)
		RETURNING created_at
	`
	entry.ID = uuid.NewString()
	err := r.db.QueryRow(ctx, query,
		entry.ID, entry.Type, entry.FromAccountID, entry.FromName,
		entry.ToAccountID, entry.ToName, entry.Amount, entry.Description,
	).Scan(&entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// WindowStats returns the count and amount sum of entries of the given type
// authored by the account since the cutoff.
func (r *Repository) WindowStats(ctx context.Context, accountID string, entryType domain.LedgerType, since time.Time) (int64, int64, error) {
	query := `
        SELECT COUNT(*), COALESCE(SUM(amount), 0)
        FROM ledger_entries
        WHERE from_account_id = $1 AND entry_type = $2 AND created_at >= $3
    `
	var count, sum int64
	err := r.db.QueryRow(ctx, query, accountID, entryType, since).Scan(&count, &sum)
	if err != nil {
		zap.L().Error("can't compute ledger window stats", zap.Error(err))
		return 0, 0, err
	}
	return count, sum, nil
}

// FindByAccount returns the newest entries touching the account, capped at limit.
func (r *Repository) FindByAccount(ctx context.Context, accountID string, limit int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, entry_type, COALESCE(from_account_id::text, ''), from_name,
               COALESCE(to_account_id::text, ''), to_name, amount, description, created_at
        FROM ledger_entries
        WHERE from_account_id = $1 OR to_account_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("can't get ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.Type, &e.FromAccountID, &e.FromName, &e.ToAccountID, &e.ToName, &e.Amount, &e.Description, &e.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
