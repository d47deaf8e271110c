package quotaservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"go.uber.org/zap"
)

type LedgerRepo interface {
	WindowStats(ctx context.Context, accountID string, entryType domain.LedgerType, since time.Time) (int64, int64, error)
}

// Service evaluates rolling-window quotas over the ledger. The check is
// read-then-decide: the operation being attempted is not yet in the ledger
// when its window is computed.
type Service struct {
	ledgerRepo LedgerRepo
}

func New(ledgerRepo LedgerRepo) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
	}
}

// WithinLimit reports whether the account is still under both the count and
// sum quotas for entries of the given type inside the trailing window.
func (s *Service) WithinLimit(ctx context.Context, accountID string, entryType domain.LedgerType, window time.Duration, maxCount, maxSum int64) (bool, error) {
	since := time.Now().Add(-window)
	count, sum, err := s.ledgerRepo.WindowStats(ctx, accountID, entryType, since)
	if err != nil {
		zap.L().Error("failed to compute rate window", zap.Error(err))
		return false, err
	}
	if count >= maxCount || sum >= maxSum {
		zap.L().Info("rate window quota exceeded",
			zap.String("account_id", accountID),
			zap.Int64("count", count),
			zap.Int64("sum", sum),
		)
		return false, nil
	}
	return true, nil
}
