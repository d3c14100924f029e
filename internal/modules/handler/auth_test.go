package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockAuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful login",
			body: `{"username":"alice","password":"secret123"}`,
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "alice", "secret123").Return("signed-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"signed-token"`,
		},
		{
			name: "wrong credentials",
			body: `{"username":"alice","password":"nope"}`,
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "alice", "nope").Return("", service.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing fields rejected before the service",
			body:           `{"username":"alice"}`,
			setup:          func(svc *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockAuthService{}
			tt.setup(mockService)

			h := NewAuthHandler(mockService)
			router := setupRouter()
			router.POST("/auth/login", h.Login)

			req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockService.AssertExpectations(t)
		})
	}
}
