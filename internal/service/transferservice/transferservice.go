package transferservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/rewardcore/internal/catalog"
	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/GlebRadaev/rewardcore/internal/pg"
	"github.com/GlebRadaev/rewardcore/pkg/metrics"
	"go.uber.org/zap"
)

type AccountRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	DebitIfSufficient(ctx context.Context, accountID string, amount int64) (bool, error)
	Credit(ctx context.Context, accountID string, amount int64) (bool, error)
	PurchaseUnlock(ctx context.Context, accountID, featureKey string, price int64) (bool, error)
	GetUnlocks(ctx context.Context, accountID string) ([]domain.FeatureUnlock, error)
	SetLevelPaid(ctx context.Context, accountID string, fromLevel, toLevel int, cost int64) (bool, error)
	AdjustBalanceClamped(ctx context.Context, accountID string, delta int64) (*domain.Account, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	FindByAccount(ctx context.Context, accountID string, limit int) ([]domain.LedgerEntry, error)
}

type Quota interface {
	WithinLimit(ctx context.Context, accountID string, entryType domain.LedgerType, window time.Duration, maxCount, maxSum int64) (bool, error)
}

type Awarder interface {
	GrantOnce(ctx context.Context, accountID, code string) (bool, *domain.Account, error)
}

type Audit interface {
	Record(event domain.AuditEvent)
}

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrSelfTransfer       = errors.New("can't transfer to yourself")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrCoinBanned         = errors.New("account is banned from coin operations")
	ErrQuotaExceeded      = errors.New("transfer quota exceeded")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrUnknownFeature     = errors.New("unknown feature")
	ErrAlreadyUnlocked    = errors.New("feature already unlocked")
	ErrInvalidTargetLevel = errors.New("target level out of range")
	ErrNotAdmin           = errors.New("admin role required")
)

const (
	levelUpCostPerLevel = 100
	historyLimit        = 100

	firstTransferCode = "FIRST_TRANSFER"
	level2Code        = "LEVEL2_UNLOCKED"
	level3Code        = "LEVEL3_UNLOCKED"
)

type Service struct {
	accountRepo AccountRepo
	ledgerRepo  LedgerRepo
	txManager   pg.TXManager
	quota       Quota
	awarder     Awarder
	audit       Audit
	catalog     *catalog.Catalog

	window   time.Duration
	maxCount int64
	maxSum   int64
}

func New(
	accountRepo AccountRepo,
	ledgerRepo LedgerRepo,
	txManager pg.TXManager,
	quota Quota,
	awarder Awarder,
	audit Audit,
	cat *catalog.Catalog,
	window time.Duration,
	maxCount, maxSum int64,
) *Service {
	return &Service{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
		quota:       quota,
		awarder:     awarder,
		audit:       audit,
		catalog:     cat,
		window:      window,
		maxCount:    maxCount,
		maxSum:      maxSum,
	}
}

// Transfer moves coins from one account to another. Debit, credit and the
// ledger entry commit in a single transaction; a coin-banned recipient keeps
// the ledger entry at full amount but the credit itself is suppressed.
func (s *Service) Transfer(ctx context.Context, fromID, toUsername string, amount int64) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	from, err := s.accountRepo.FindByID(ctx, fromID)
	if err != nil {
		return nil, err
	}
	if from == nil {
		return nil, ErrAccountNotFound
	}
	if from.BannedFromCoins {
		metrics.Denied("coin_ban")
		return nil, ErrCoinBanned
	}

	to, err := s.accountRepo.FindByUsername(ctx, strings.TrimSpace(toUsername))
	if err != nil {
		return nil, err
	}
	if to == nil {
		return nil, ErrRecipientNotFound
	}
	if to.ID == from.ID {
		return nil, ErrSelfTransfer
	}

	if !from.IsAdmin() {
		ok, err := s.quota.WithinLimit(ctx, from.ID, domain.LedgerTransfer, s.window, s.maxCount, s.maxSum)
		if err != nil {
			return nil, err
		}
		if !ok {
			metrics.Denied("quota")
			return nil, ErrQuotaExceeded
		}
	}

	var entry *domain.LedgerEntry
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		debited, err := s.accountRepo.DebitIfSufficient(ctx, from.ID, amount)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientFunds
		}
		// Suppressed for a coin-banned recipient; the debit and the ledger
		// entry stand regardless, so the paper trail shows intent.
		if _, err := s.accountRepo.Credit(ctx, to.ID, amount); err != nil {
			return err
		}
		entry, err = s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			Type:          domain.LedgerTransfer,
			FromAccountID: from.ID,
			FromName:      from.Username,
			ToAccountID:   to.ID,
			ToName:        to.Username,
			Amount:        amount,
			Description:   fmt.Sprintf("transfer from %s to %s", from.Username, to.Username),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			metrics.Denied("balance")
			return nil, ErrInsufficientFunds
		}
		zap.L().Error("transfer failed", zap.Error(err))
		return nil, err
	}

	metrics.TransfersExecuted.Inc()
	if _, _, err := s.awarder.GrantOnce(ctx, from.ID, firstTransferCode); err != nil {
		zap.L().Error("can't grant first transfer achievement", zap.Error(err))
	}
	return entry, nil
}

// PurchaseFeature unlocks a catalog feature for its coin price. The price
// deduction and the unlock flag commit as one mutation.
func (s *Service) PurchaseFeature(ctx context.Context, accountID, featureKey string) (*domain.LedgerEntry, error) {
	price, known := s.catalog.FeaturePrice(featureKey)
	if !known {
		return nil, ErrUnknownFeature
	}

	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	if acc.BannedFromCoins {
		metrics.Denied("coin_ban")
		return nil, ErrCoinBanned
	}

	unlocks, err := s.accountRepo.GetUnlocks(ctx, accountID)
	if err != nil {
		return nil, err
	}
	for _, u := range unlocks {
		if u.FeatureKey == featureKey {
			return nil, ErrAlreadyUnlocked
		}
	}
	if acc.Balance < price {
		metrics.Denied("balance")
		return nil, ErrInsufficientFunds
	}

	purchased, err := s.accountRepo.PurchaseUnlock(ctx, accountID, featureKey, price)
	if err != nil {
		return nil, err
	}
	if !purchased {
		// A concurrent request unlocked it or spent the balance first.
		metrics.Denied("balance")
		return nil, ErrInsufficientFunds
	}

	entry, err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
		Type:          domain.LedgerFeaturePurchase,
		FromAccountID: acc.ID,
		FromName:      acc.Username,
		Amount:        price,
		Description:   "feature purchase: " + featureKey,
	})
	if err != nil {
		zap.L().Error("can't record feature purchase", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// LevelUp raises the account to targetLevel at 100 coins per level; admins
// pay nothing. Crossing levels 2 and 3 grants their unlock achievements,
// idempotently, so re-leveling past an earned threshold is a no-op grant.
func (s *Service) LevelUp(ctx context.Context, accountID string, targetLevel int) (*domain.Account, error) {
	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	if targetLevel <= acc.Level || targetLevel > domain.MaxLevel {
		return nil, ErrInvalidTargetLevel
	}
	if acc.BannedFromCoins && !acc.IsAdmin() {
		metrics.Denied("coin_ban")
		return nil, ErrCoinBanned
	}

	cost := int64(targetLevel-acc.Level) * levelUpCostPerLevel
	if acc.IsAdmin() {
		cost = 0
	}

	leveled, err := s.accountRepo.SetLevelPaid(ctx, accountID, acc.Level, targetLevel, cost)
	if err != nil {
		return nil, err
	}
	if !leveled {
		metrics.Denied("balance")
		return nil, ErrInsufficientFunds
	}

	if _, err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
		Type:          domain.LedgerLevelUp,
		FromAccountID: acc.ID,
		FromName:      acc.Username,
		Amount:        cost,
		Description:   fmt.Sprintf("level up %d -> %d", acc.Level, targetLevel),
	}); err != nil {
		zap.L().Error("can't record level up", zap.Error(err))
		return nil, err
	}

	if targetLevel >= 2 {
		if _, _, err := s.awarder.GrantOnce(ctx, accountID, level2Code); err != nil {
			zap.L().Error("can't grant level 2 achievement", zap.Error(err))
		}
	}
	if targetLevel >= 3 {
		if _, _, err := s.awarder.GrantOnce(ctx, accountID, level3Code); err != nil {
			zap.L().Error("can't grant level 3 achievement", zap.Error(err))
		}
	}

	updated, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AdminAdjust applies a signed balance delta to the target account, clamped
// at zero. The ledger records the unsigned magnitude with a signed
// description; the audit log is informed but never consulted, and its
// failure never reverses the adjustment.
func (s *Service) AdminAdjust(ctx context.Context, actorID, targetUsername string, delta int64, reason string) (*domain.Account, error) {
	if delta == 0 {
		return nil, ErrInvalidAmount
	}

	actor, err := s.accountRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrAccountNotFound
	}
	if !actor.IsAdmin() {
		return nil, ErrNotAdmin
	}

	target, err := s.accountRepo.FindByUsername(ctx, strings.TrimSpace(targetUsername))
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrRecipientNotFound
	}

	updated, err := s.accountRepo.AdjustBalanceClamped(ctx, target.ID, delta)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrRecipientNotFound
	}

	magnitude := delta
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if _, err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
		Type:          domain.LedgerAdminAdjust,
		FromAccountID: actor.ID,
		FromName:      actor.Username,
		ToAccountID:   target.ID,
		ToName:        target.Username,
		Amount:        magnitude,
		Description:   fmt.Sprintf("admin adjustment %+d: %s", delta, reason),
	}); err != nil {
		zap.L().Error("can't record admin adjustment", zap.Error(err))
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		ActorID:   actor.ID,
		TargetID:  target.ID,
		Action:    "balance_adjust",
		Detail:    fmt.Sprintf("%+d: %s", delta, reason),
		CreatedAt: time.Now(),
	})

	return updated, nil
}

func (s *Service) GetHistory(ctx context.Context, accountID string) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.FindByAccount(ctx, accountID, historyLimit)
	if err != nil {
		zap.L().Error("failed to fetch ledger history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
