package accountrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/GlebRadaev/rewardcore/internal/pg"
	"go.uber.org/zap"
)

// errPreconditionFailed aborts a conditional multi-statement mutation without
// surfacing an error to the caller: a conditional update matching zero rows
// means "someone else already did this", not a failure.
var errPreconditionFailed = errors.New("precondition failed")

const accountColumns = `id, username, display_name, password_hash, role, level, balance, achievement_points,
		banned_from_chat, banned_from_coins, ban_reason, ban_updated_at, is_deleted, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.ID, &acc.Username, &acc.DisplayName, &acc.PasswordHash, &acc.Role, &acc.Level,
		&acc.Balance, &acc.AchievementPoints, &acc.BannedFromChat, &acc.BannedFromCoins,
		&acc.BanReason, &acc.BanUpdatedAt, &acc.IsDeleted, &acc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE username = $1 AND is_deleted = FALSE
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account by username", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

// Create inserts a fresh account: balance 0, level 1, role user, empty sets.
func (r *Repository) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (id, username, display_name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + accountColumns + `
	`
	acc.ID = uuid.NewString()
	created, err := scanAccount(r.db.QueryRow(ctx, query, acc.ID, acc.Username, acc.DisplayName, acc.PasswordHash))
	if err != nil {
		zap.L().Error("can't create account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// GrantAchievementWithCoins atomically adds code to the achievement set and
// credits the coin reward, conditioned on "account exists AND does not hold
// code AND is not coin-banned". Returns false when the condition does not
// match, with no effect at all.
func (r *Repository) GrantAchievementWithCoins(ctx context.Context, accountID, code string, coins int64) (bool, error) {
	insertQuery := `
		INSERT INTO account_achievements (account_id, code)
		SELECT id, $2 FROM accounts
		WHERE id = $1 AND banned_from_coins = FALSE
		ON CONFLICT DO NOTHING
	`
	creditQuery := `
		UPDATE accounts
		SET balance = balance + $2
		WHERE id = $1
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, insertQuery, accountID, code)
		if err != nil {
			zap.L().Error("can't grant achievement with coins", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return errPreconditionFailed
		}
		if _, err := r.db.Exec(ctx, creditQuery, accountID, coins); err != nil {
			zap.L().Error("can't credit achievement reward", zap.Error(err))
			return err
		}
		return nil
	})
	if errors.Is(err, errPreconditionFailed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GrantAchievement adds code to the achievement set without touching the
// balance, conditioned only on "account exists AND does not hold code".
func (r *Repository) GrantAchievement(ctx context.Context, accountID, code string) (bool, error) {
	query := `
		INSERT INTO account_achievements (account_id, code)
		SELECT id, $2 FROM accounts
		WHERE id = $1
		ON CONFLICT DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, accountID, code)
	if err != nil {
		zap.L().Error("can't grant achievement", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) GetAchievements(ctx context.Context, accountID string) ([]domain.AchievementEarned, error) {
	query := `
        SELECT account_id, code, earned_at
        FROM account_achievements
        WHERE account_id = $1
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get achievements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var earned []domain.AchievementEarned
	for rows.Next() {
		var a domain.AchievementEarned
		if err := rows.Scan(&a.AccountID, &a.Code, &a.EarnedAt); err != nil {
			zap.L().Error("can't scan achievement row", zap.Error(err))
			return nil, err
		}
		earned = append(earned, a)
	}
	return earned, nil
}

// AwardMilestone records a milestone code and bumps the AP total in one
// conditional step. Recording the same code twice never double-pays.
func (r *Repository) AwardMilestone(ctx context.Context, accountID, code string, ap int64) (bool, error) {
	insertQuery := `
		INSERT INTO account_milestones (account_id, code)
		SELECT id, $2 FROM accounts
		WHERE id = $1
		ON CONFLICT DO NOTHING
	`
	bumpQuery := `
		UPDATE accounts
		SET achievement_points = achievement_points + $2
		WHERE id = $1
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, insertQuery, accountID, code)
		if err != nil {
			zap.L().Error("can't record milestone", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return errPreconditionFailed
		}
		if _, err := r.db.Exec(ctx, bumpQuery, accountID, ap); err != nil {
			zap.L().Error("can't add achievement points", zap.Error(err))
			return err
		}
		return nil
	})
	if errors.Is(err, errPreconditionFailed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IncrementStat atomically adds delta to the named counter and returns the
// new value. The second return is false when the account does not exist.
func (r *Repository) IncrementStat(ctx context.Context, accountID, statKey string, delta int64) (int64, bool, error) {
	query := `
		INSERT INTO account_stats (account_id, stat_key, value)
		SELECT id, $2, $3 FROM accounts
		WHERE id = $1
		ON CONFLICT (account_id, stat_key)
		DO UPDATE SET value = account_stats.value + EXCLUDED.value
		RETURNING value
	`
	var value int64
	err := r.db.QueryRow(ctx, query, accountID, statKey, delta).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		zap.L().Error("can't increment stat", zap.Error(err))
		return 0, false, err
	}
	return value, true, nil
}

// DebitIfSufficient decrements the balance only when it covers the amount,
// as one atomic statement, so the balance can't go negative under
// concurrent debits.
func (r *Repository) DebitIfSufficient(ctx context.Context, accountID string, amount int64) (bool, error) {
	query := `
		UPDATE accounts
		SET balance = balance - $2
		WHERE id = $1 AND balance >= $2
	`
	tag, err := r.db.Exec(ctx, query, accountID, amount)
	if err != nil {
		zap.L().Error("can't debit account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Credit adds coins unless the account is coin-banned; a suppressed credit
// is not an error, the coins are simply not delivered.
func (r *Repository) Credit(ctx context.Context, accountID string, amount int64) (bool, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $2
		WHERE id = $1 AND banned_from_coins = FALSE
	`
	tag, err := r.db.Exec(ctx, query, accountID, amount)
	if err != nil {
		zap.L().Error("can't credit account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// PurchaseUnlock sets the feature flag and deducts the price in one
// transaction. Returns false with no effect when the feature is already
// unlocked or the balance no longer covers the price.
func (r *Repository) PurchaseUnlock(ctx context.Context, accountID, featureKey string, price int64) (bool, error) {
	unlockQuery := `
		INSERT INTO account_unlocks (account_id, feature_key)
		SELECT id, $2 FROM accounts
		WHERE id = $1
		ON CONFLICT DO NOTHING
	`
	debitQuery := `
		UPDATE accounts
		SET balance = balance - $2
		WHERE id = $1 AND balance >= $2 AND banned_from_coins = FALSE
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, unlockQuery, accountID, featureKey)
		if err != nil {
			zap.L().Error("can't set unlock flag", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return errPreconditionFailed
		}
		tag, err = r.db.Exec(ctx, debitQuery, accountID, price)
		if err != nil {
			zap.L().Error("can't deduct feature price", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return errPreconditionFailed
		}
		return nil
	})
	if errors.Is(err, errPreconditionFailed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repository) GetUnlocks(ctx context.Context, accountID string) ([]domain.FeatureUnlock, error) {
	query := `
        SELECT account_id, feature_key, unlocked_at
        FROM account_unlocks
        WHERE account_id = $1
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get unlocks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var unlocks []domain.FeatureUnlock
	for rows.Next() {
		var u domain.FeatureUnlock
		if err := rows.Scan(&u.AccountID, &u.FeatureKey, &u.UnlockedAt); err != nil {
			zap.L().Error("can't scan unlock row", zap.Error(err))
			return nil, err
		}
		unlocks = append(unlocks, u)
	}
	return unlocks, nil
}

// SetLevelPaid moves the account from fromLevel to toLevel and deducts the
// cost, all in one statement conditioned on the level not having changed
// since the caller read it. Cost 0 skips no checks except the balance one,
// which is then trivially true.
func (r *Repository) SetLevelPaid(ctx context.Context, accountID string, fromLevel, toLevel int, cost int64) (bool, error) {
	query := `
		UPDATE accounts
		SET balance = balance - $4, level = $3
		WHERE id = $1 AND level = $2 AND balance >= $4
	`
	tag, err := r.db.Exec(ctx, query, accountID, fromLevel, toLevel, cost)
	if err != nil {
		zap.L().Error("can't level up account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AdjustBalanceClamped applies a signed delta, clamping the result at zero.
// Returns the account after the update, or nil when it does not exist.
func (r *Repository) AdjustBalanceClamped(ctx context.Context, accountID string, delta int64) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET balance = GREATEST(0, balance + $2)
		WHERE id = $1
		RETURNING ` + accountColumns + `
	`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, accountID, delta))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't adjust balance", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) UpdateRole(ctx context.Context, accountID string, role domain.Role) (bool, error) {
	query := `
		UPDATE accounts
		SET role = $2
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, accountID, role)
	if err != nil {
		zap.L().Error("can't update role", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) UpdateLevel(ctx context.Context, accountID string, level int) (bool, error) {
	query := `
		UPDATE accounts
		SET level = $2
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, accountID, level)
	if err != nil {
		zap.L().Error("can't update level", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) UpdateBans(ctx context.Context, accountID string, chatBan, coinBan bool, reason string) (bool, error) {
	query := `
		UPDATE accounts
		SET banned_from_chat = $2, banned_from_coins = $3, ban_reason = $4, ban_updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, accountID, chatBan, coinBan, reason)
	if err != nil {
		zap.L().Error("can't update bans", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
