package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RewardsGranted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rewardcore_rewards_granted_total",
		Help: "Achievements granted, coin-paying and coinless paths combined.",
	})

	MilestonesAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rewardcore_milestones_awarded_total",
		Help: "Stat milestones that paid out achievement points.",
	})

	TransfersExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rewardcore_transfers_executed_total",
		Help: "P2P transfers that committed.",
	})

	operationsDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rewardcore_operations_denied_total",
		Help: "Economic operations rejected before mutation, by reason.",
	}, []string{"reason"})
)

func Denied(reason string) {
	operationsDenied.WithLabelValues(reason).Inc()
}
