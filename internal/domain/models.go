package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleMod   Role = "mod"
	RoleAdmin Role = "admin"
)

const (
	MinLevel = 1
	MaxLevel = 10
)

type Account struct {
	ID                string    `db:"id"`
	Username          string    `db:"username"`
	DisplayName       string    `db:"display_name"`
	PasswordHash      string    `db:"password_hash"`
	Role              Role      `db:"role"`
	Level             int       `db:"level"`
	Balance           int64     `db:"balance"`
	AchievementPoints int64     `db:"achievement_points"`
	BannedFromChat    bool      `db:"banned_from_chat"`
	BannedFromCoins   bool      `db:"banned_from_coins"`
	BanReason         string    `db:"ban_reason"`
	BanUpdatedAt      time.Time `db:"ban_updated_at"`
	IsDeleted         bool      `db:"is_deleted"`
	CreatedAt         time.Time `db:"created_at"`
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// AchievementEarned is one entry of an account's achievement set.
// Codes are unique per account; insertion order carries no meaning.
type AchievementEarned struct {
	AccountID string    `db:"account_id"`
	Code      string    `db:"code"`
	EarnedAt  time.Time `db:"earned_at"`
}

type FeatureUnlock struct {
	AccountID  string    `db:"account_id"`
	FeatureKey string    `db:"feature_key"`
	UnlockedAt time.Time `db:"unlocked_at"`
}

type LedgerType string

const (
	LedgerTransfer          LedgerType = "transfer"
	LedgerAchievementReward LedgerType = "achievement_reward"
	LedgerLevelUp           LedgerType = "level_up"
	LedgerFeaturePurchase   LedgerType = "feature_purchase"
	LedgerAdminAdjust       LedgerType = "admin_adjust"
	LedgerAdminSetRole      LedgerType = "admin_set_role"
	LedgerAdminSetLevel     LedgerType = "admin_set_level"
	LedgerAdminSetBans      LedgerType = "admin_set_bans"
)

// LedgerEntry is immutable once written; entries are only ever inserted,
// as the terminal step of a successful economic mutation.
type LedgerEntry struct {
	ID            string     `db:"id"`
	Type          LedgerType `db:"entry_type"`
	FromAccountID string     `db:"from_account_id"`
	FromName      string     `db:"from_name"`
	ToAccountID   string     `db:"to_account_id"`
	ToName        string     `db:"to_name"`
	Amount        int64      `db:"amount"`
	Description   string     `db:"description"`
	CreatedAt     time.Time  `db:"created_at"`
}

type AuditEvent struct {
	ActorID   string    `db:"actor_id"`
	TargetID  string    `db:"target_id"`
	Action    string    `db:"action"`
	Detail    string    `db:"detail"`
	CreatedAt time.Time `db:"created_at"`
}
