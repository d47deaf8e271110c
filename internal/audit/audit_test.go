package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func waitFor(t *testing.T, done <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for audit inserts")
		}
	}
}

func TestFlush(t *testing.T) {
	service, repo := NewMock(t)

	done := make(chan struct{}, 2)
	repo.EXPECT().
		Insert(gomock.Any(), gomock.AssignableToTypeOf(&domain.AuditEvent{})).
		DoAndReturn(func(ctx context.Context, event *domain.AuditEvent) error {
			done <- struct{}{}
			return nil
		}).
		Times(2)

	service.Record(domain.AuditEvent{ActorID: "a1", Action: "set_role", Detail: "mod"})
	service.Record(domain.AuditEvent{ActorID: "a1", Action: "set_level", Detail: "5"})
	service.flush(context.Background())

	waitFor(t, done, 2)
}

func TestFlushEmptyQueue(t *testing.T) {
	service, _ := NewMock(t)

	// No expectations set; an insert would fail the controller.
	service.flush(context.Background())
}

func TestFlushInsertFailure(t *testing.T) {
	service, repo := NewMock(t)

	done := make(chan struct{}, 1)
	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *domain.AuditEvent) error {
			done <- struct{}{}
			return errors.New("db error")
		})

	service.Record(domain.AuditEvent{ActorID: "a1", Action: "set_bans"})
	service.flush(context.Background())

	waitFor(t, done, 1)
}

func TestRecordFillsTimestamp(t *testing.T) {
	service, _ := NewMock(t)

	service.Record(domain.AuditEvent{ActorID: "a1", Action: "set_role"})

	service.mu.Lock()
	defer service.mu.Unlock()
	assert.Len(t, service.queue, 1)
	assert.False(t, service.queue[0].CreatedAt.IsZero())
}

func TestRunDrainsOnShutdown(t *testing.T) {
	service, repo := NewMock(t)
	service.flushInterval = time.Hour

	done := make(chan struct{}, 1)
	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *domain.AuditEvent) error {
			done <- struct{}{}
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)

	service.Record(domain.AuditEvent{ActorID: "a1", Action: "balance_adjust", Detail: "+200"})
	cancel()

	waitFor(t, done, 1)
}
