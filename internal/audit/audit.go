package audit

import (
	"context"
	"sync"
	"time"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repo interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// Service collects audit events in memory and drains them to the store in
// the background. It is informed, never consulted: Record never blocks the
// caller and a failed insert is logged, not raised, so an audit outage can
// never roll back an already-committed economic mutation.
type Service struct {
	repo          Repo
	workerPool    WorkerPoolI
	flushInterval time.Duration

	mu    sync.Mutex
	queue []domain.AuditEvent
}

func New(repo Repo) *Service {
	return &Service{
		repo:          repo,
		workerPool:    NewWorkerPool(4),
		flushInterval: time.Second * 2,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Audit service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Final drain; inserts get a short grace period of their own.
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			s.flush(flushCtx)
			cancel()
			s.workerPool.Close()
			zap.L().Info("Audit service stopped")
			return
		case <-ticker.C:
			s.flush(ctx)
		}
	}
}

// Record enqueues an event for the next flush. Fire-and-forget.
func (s *Service) Record(event domain.AuditEvent) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	s.mu.Lock()
	s.queue = append(s.queue, event)
	s.mu.Unlock()
}

func (s *Service) flush(ctx context.Context) {
	s.mu.Lock()
	pending := s.queue
	s.queue = nil
	s.mu.Unlock()

	if len(pending) == 0 {
		return
	}

	var g errgroup.Group
	for _, event := range pending {
		event := event

		g.Go(func() error {
			return s.workerPool.AddTask(ctx, func() error {
				return s.repo.Insert(ctx, &event)
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error flushing audit events", zap.Error(err))
	}
}
