package auditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/rewardcore/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	event := &domain.AuditEvent{
		ActorID:   "8a6f1c2e-64dc-4b0a-9c2f-0a8f6f1c2e64",
		TargetID:  "2b9d4e71-3fa5-4c88-b1d0-9e52b9d4e713",
		Action:    "set_role",
		Detail:    "mod",
		CreatedAt: now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Event inserted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO audit_log")).
					WithArgs(event.ActorID, event.TargetID, event.Action, event.Detail, now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO audit_log")).
					WithArgs(event.ActorID, event.TargetID, event.Action, event.Detail, now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Insert(context.Background(), event)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
