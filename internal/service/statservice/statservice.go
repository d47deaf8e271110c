package statservice

import (
	"context"
	"errors"
	"strings"

	"github.com/GlebRadaev/rewardcore/internal/catalog"
	"github.com/GlebRadaev/rewardcore/pkg/metrics"
	"go.uber.org/zap"
)

type Repo interface {
	IncrementStat(ctx context.Context, accountID, statKey string, delta int64) (int64, bool, error)
	AwardMilestone(ctx context.Context, accountID, code string, ap int64) (bool, error)
}

var ErrAccountNotFound = errors.New("account not found")

type Service struct {
	accountRepo Repo
	catalog     *catalog.Catalog
}

func New(accountRepo Repo, cat *catalog.Catalog) *Service {
	return &Service{
		accountRepo: accountRepo,
		catalog:     cat,
	}
}

// RecordAction increments the named stat counter and awards every catalog
// milestone for (featureKey, statKey) whose threshold the new value has
// reached. Milestones are independent: one increment can pay out several at
// once, and each is idempotent, so oscillating across a threshold never pays
// twice. Returns the new counter value; recorded is false for a no-op call.
func (s *Service) RecordAction(ctx context.Context, accountID, featureKey, statKey string, delta int64) (int64, bool, error) {
	featureKey = strings.TrimSpace(featureKey)
	statKey = strings.TrimSpace(statKey)
	if delta == 0 || featureKey == "" || statKey == "" {
		return 0, false, nil
	}

	value, found, err := s.accountRepo.IncrementStat(ctx, accountID, statKey, delta)
	if err != nil {
		zap.L().Error("can't increment stat", zap.Error(err))
		return 0, false, err
	}
	if !found {
		return 0, false, ErrAccountNotFound
	}

	for _, m := range s.catalog.Milestones(featureKey, statKey) {
		if m.Threshold > value {
			break
		}
		awarded, err := s.awardAPOnce(ctx, accountID, m.Code, m.AP)
		if err != nil {
			// The counter increment is already committed and the award is
			// replay-safe; the next crossing of this threshold retries it.
			zap.L().Error("can't award milestone",
				zap.String("code", m.Code), zap.Error(err))
			continue
		}
		if awarded {
			metrics.MilestonesAwarded.Inc()
			zap.L().Info("milestone awarded",
				zap.String("account_id", accountID),
				zap.String("code", m.Code),
				zap.Int64("ap", m.AP),
			)
		}
	}

	return value, true, nil
}

// awardAPOnce records the milestone code and adds its AP in one conditional
// update; awarded is false when the code was invalid or already recorded.
func (s *Service) awardAPOnce(ctx context.Context, accountID, code string, ap int64) (bool, error) {
	if code == "" || ap <= 0 {
		return false, nil
	}
	return s.accountRepo.AwardMilestone(ctx, accountID, code, ap)
}
