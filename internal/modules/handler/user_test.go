package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"github.com/Alaebelamkaddame/content-management/internal/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, in service.CreateUserInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uuid.UUID, in service.UpdateUserInput) (*model.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) Projects(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func sessionFor(userID uuid.UUID, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("claims", &token.SessionClaims{UserID: userID, Role: role})
	}
}

func TestUserHandler_UpdateUser(t *testing.T) {
	selfID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name           string
		caller         uuid.UUID
		role           model.Role
		target         uuid.UUID
		body           string
		setup          func(*MockUserService)
		expectedStatus int
	}{
		{
			name:   "user updates their own profile",
			caller: selfID,
			role:   model.RoleTeamMember,
			target: selfID,
			body:   `{"full_name":"New Name"}`,
			setup: func(svc *MockUserService) {
				svc.On("Update", mock.Anything, selfID, mock.Anything).
					Return(&model.User{ID: selfID, FullName: "New Name"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-admin cannot touch another user",
			caller:         selfID,
			role:           model.RoleTeamLeader,
			target:         otherID,
			body:           `{"full_name":"New Name"}`,
			setup:          func(svc *MockUserService) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "non-admin cannot change their own role",
			caller:         selfID,
			role:           model.RoleTeamMember,
			target:         selfID,
			body:           `{"role":"admin"}`,
			setup:          func(svc *MockUserService) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "admin updates anyone",
			caller: selfID,
			role:   model.RoleAdmin,
			target: otherID,
			body:   `{"role":"team_leader"}`,
			setup: func(svc *MockUserService) {
				svc.On("Update", mock.Anything, otherID, mock.Anything).
					Return(&model.User{ID: otherID, Role: model.RoleTeamLeader}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "unknown target",
			caller: selfID,
			role:   model.RoleAdmin,
			target: otherID,
			body:   `{"full_name":"x"}`,
			setup: func(svc *MockUserService) {
				svc.On("Update", mock.Anything, otherID, mock.Anything).
					Return(nil, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockUserService{}
			tt.setup(mockService)

			h := NewUserHandler(mockService)
			router := setupRouter()
			router.PUT("/users/:id", sessionFor(tt.caller, tt.role), h.UpdateUser)

			req := httptest.NewRequest("PUT", "/users/"+tt.target.String(), strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestUserHandler_DeleteUser(t *testing.T) {
	userID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		mockService := &MockUserService{}
		mockService.On("Delete", mock.Anything, userID).Return(true, nil)

		h := NewUserHandler(mockService)
		router := setupRouter()
		router.DELETE("/users/:id", h.DeleteUser)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/users/"+userID.String(), nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing row turns into 404", func(t *testing.T) {
		mockService := &MockUserService{}
		mockService.On("Delete", mock.Anything, userID).Return(false, nil)

		h := NewUserHandler(mockService)
		router := setupRouter()
		router.DELETE("/users/:id", h.DeleteUser)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/users/"+userID.String(), nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id never reaches the service", func(t *testing.T) {
		mockService := &MockUserService{}

		h := NewUserHandler(mockService)
		router := setupRouter()
		router.DELETE("/users/:id", h.DeleteUser)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/users/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("duplicate username", func(t *testing.T) {
		mockService := &MockUserService{}
		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrConflict)

		h := NewUserHandler(mockService)
		router := setupRouter()
		router.POST("/users", h.CreateUser)

		body := `{"username":"alice","password":"pw","role":"admin","full_name":"Alice","email":"a@b.co"}`
		req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("role outside the enum rejected by binding", func(t *testing.T) {
		mockService := &MockUserService{}

		h := NewUserHandler(mockService)
		router := setupRouter()
		router.POST("/users", h.CreateUser)

		body := `{"username":"alice","password":"pw","role":"root","full_name":"Alice","email":"a@b.co"}`
		req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
