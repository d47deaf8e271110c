package auth

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/GlebRadaev/rewardcore/internal/service/authservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	accountID := "8a6f1c2e-64dc-4b0a-9c2f-0a8f6f1c2e64"

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"username":"gopher","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "gopher", "secret").
					Return(&domain.Account{ID: accountID, Username: "gopher"}, nil)
				service.EXPECT().GenerateToken(accountID).Return("token123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid JSON",
			body:         `{not json`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing credentials",
			body:         `{"username":"  ","password":""}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Username already taken",
			body: `{"username":"gopher","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "gopher", "secret").
					Return(nil, authservice.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal error",
			body: `{"username":"gopher","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "gopher", "secret").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token123", w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	accountID := "8a6f1c2e-64dc-4b0a-9c2f-0a8f6f1c2e64"

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"username":"gopher","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "gopher", "secret").
					Return(&domain.Account{ID: accountID, Username: "gopher"}, nil)
				service.EXPECT().GenerateToken(accountID).Return("token123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid JSON",
			body:         `{not json`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"username":"gopher","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "gopher", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
