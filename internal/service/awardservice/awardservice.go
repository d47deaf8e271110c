package awardservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/rewardcore/internal/catalog"
	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/GlebRadaev/rewardcore/pkg/metrics"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	GrantAchievementWithCoins(ctx context.Context, accountID, code string, coins int64) (bool, error)
	GrantAchievement(ctx context.Context, accountID, code string) (bool, error)
	GetAchievements(ctx context.Context, accountID string) ([]domain.AchievementEarned, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
}

var ErrAccountNotFound = errors.New("account not found")

type Service struct {
	accountRepo Repo
	ledgerRepo  LedgerRepo
	catalog     *catalog.Catalog
}

func New(accountRepo Repo, ledgerRepo LedgerRepo, cat *catalog.Catalog) *Service {
	return &Service{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		catalog:     cat,
	}
}

// GrantOnce grants rewardCode to the account at most once. The sequence is
// attempt-with-coins, then attempt-without-coins, then read current state:
// the first step carries the precondition "exists AND does not hold the code
// AND is not coin-banned" so the achievement and its coin payment land in
// one atomic step; the second drops the ban clause so a banned account still
// earns the achievement, just without coins. When both steps match nothing,
// the account already held the reward (or a concurrent caller won the race),
// which is a no-op success, not an error.
func (s *Service) GrantOnce(ctx context.Context, accountID, code string) (bool, *domain.Account, error) {
	def, known := s.catalog.Achievement(code)
	title := def.Title
	if !known {
		title = code
	}

	if def.Coins > 0 {
		granted, err := s.accountRepo.GrantAchievementWithCoins(ctx, accountID, code, def.Coins)
		if err != nil {
			zap.L().Error("can't grant achievement with coins", zap.Error(err))
			return false, nil, err
		}
		if granted {
			_, err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
				Type:        domain.LedgerAchievementReward,
				ToAccountID: accountID,
				Amount:      def.Coins,
				Description: "achievement reward: " + title,
			})
			if err != nil {
				zap.L().Error("can't record achievement reward", zap.Error(err))
				return false, nil, err
			}
			metrics.RewardsGranted.Inc()
			return s.granted(ctx, accountID)
		}
	}

	granted, err := s.accountRepo.GrantAchievement(ctx, accountID, code)
	if err != nil {
		zap.L().Error("can't grant achievement", zap.Error(err))
		return false, nil, err
	}
	if granted {
		// No ledger entry on the coinless path: no economic mutation happened.
		metrics.RewardsGranted.Inc()
		return s.granted(ctx, accountID)
	}

	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return false, nil, err
	}
	if acc == nil {
		return false, nil, ErrAccountNotFound
	}
	return false, acc, nil
}

func (s *Service) granted(ctx context.Context, accountID string) (bool, *domain.Account, error) {
	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return false, nil, err
	}
	if acc == nil {
		return false, nil, ErrAccountNotFound
	}
	return true, acc, nil
}

func (s *Service) GetAchievements(ctx context.Context, accountID string) ([]domain.AchievementEarned, error) {
	earned, err := s.accountRepo.GetAchievements(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch achievements", zap.Error(err))
		return nil, err
	}
	return earned, nil
}
