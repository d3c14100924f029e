package service

import (
	"context"
	"testing"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepo is a mock implementation of repo.UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) ListProjects(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func TestUserService_Create(t *testing.T) {
	t.Run("hashes the password before storing", func(t *testing.T) {
		repo := &MockUserRepo{}
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			if u.PasswordHash == "secret123" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) == nil
		})).Return(nil)

		svc := NewUserService(repo)
		u, err := svc.Create(context.Background(), CreateUserInput{
			Username: "alice",
			Password: "secret123",
			Role:     model.RoleTeamMember,
			FullName: "Alice Example",
			Email:    "alice@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, model.RoleTeamMember, u.Role)
		repo.AssertExpectations(t)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		repo := &MockUserRepo{}
		svc := NewUserService(repo)

		_, err := svc.Create(context.Background(), CreateUserInput{Username: "alice"})

		assert.ErrorIs(t, err, ErrValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		repo := &MockUserRepo{}
		svc := NewUserService(repo)

		_, err := svc.Create(context.Background(), CreateUserInput{
			Username: "alice",
			Password: "secret123",
			Role:     "superuser",
			FullName: "Alice Example",
			Email:    "alice@example.com",
		})

		assert.ErrorIs(t, err, ErrValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("maps a duplicate username to a conflict", func(t *testing.T) {
		repo := &MockUserRepo{}
		repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		svc := NewUserService(repo)
		_, err := svc.Create(context.Background(), CreateUserInput{
			Username: "alice",
			Password: "secret123",
			Role:     model.RoleAdmin,
			FullName: "Alice Example",
			Email:    "alice@example.com",
		})

		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestUserService_Update(t *testing.T) {
	userID := uuid.New()

	t.Run("empty patch returns the current row without writing", func(t *testing.T) {
		repo := &MockUserRepo{}
		current := &model.User{ID: userID, Username: "alice"}
		repo.On("GetByID", mock.Anything, userID).Return(current, nil)

		svc := NewUserService(repo)
		u, err := svc.Update(context.Background(), userID, UpdateUserInput{})

		assert.NoError(t, err)
		assert.Equal(t, current, u)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("writes only the provided fields", func(t *testing.T) {
		repo := &MockUserRepo{}
		name := "Alice Updated"
		updated := &model.User{ID: userID, FullName: name}
		repo.On("Update", mock.Anything, userID, map[string]any{"full_name": name}).Return(updated, nil)

		svc := NewUserService(repo)
		u, err := svc.Update(context.Background(), userID, UpdateUserInput{FullName: &name})

		assert.NoError(t, err)
		assert.Equal(t, name, u.FullName)
		repo.AssertExpectations(t)
	})

	t.Run("rejects an unknown role in the patch", func(t *testing.T) {
		repo := &MockUserRepo{}
		bad := model.Role("owner")

		svc := NewUserService(repo)
		_, err := svc.Update(context.Background(), userID, UpdateUserInput{Role: &bad})

		assert.ErrorIs(t, err, ErrValidation)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		repo := &MockUserRepo{}
		name := "whoever"
		repo.On("Update", mock.Anything, userID, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(repo)
		_, err := svc.Update(context.Background(), userID, UpdateUserInput{Username: &name})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	userID := uuid.New()

	repo := &MockUserRepo{}
	repo.On("Delete", mock.Anything, userID).Return(false, nil)

	svc := NewUserService(repo)
	deleted, err := svc.Delete(context.Background(), userID)

	assert.NoError(t, err)
	assert.False(t, deleted)
}
