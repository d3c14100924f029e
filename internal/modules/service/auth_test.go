package service

import (
	"context"
	"testing"
	"time"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/pkg/token"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func testTokenManager() *token.Manager {
	return token.NewManager("test-secret", time.Hour, 24*time.Hour)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := HashPassword("correct horse")
	assert.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: hash,
		Role:         model.RoleTeamLeader,
	}

	t.Run("returns a verifiable session token", func(t *testing.T) {
		repo := &MockUserRepo{}
		repo.On("GetByUsername", mock.Anything, "alice").Return(user, nil)

		tm := testTokenManager()
		svc := NewAuthService(repo, tm)

		raw, err := svc.Login(context.Background(), "alice", "correct horse")
		assert.NoError(t, err)

		claims, err := tm.VerifySession(raw)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, model.RoleTeamLeader, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &MockUserRepo{}
		repo.On("GetByUsername", mock.Anything, "alice").Return(user, nil)

		svc := NewAuthService(repo, testTokenManager())
		_, err := svc.Login(context.Background(), "alice", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		repo := &MockUserRepo{}
		repo.On("GetByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(repo, testTokenManager())
		_, err := svc.Login(context.Background(), "nobody", "whatever")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("blank credentials never hit the store", func(t *testing.T) {
		repo := &MockUserRepo{}

		svc := NewAuthService(repo, testTokenManager())
		_, err := svc.Login(context.Background(), "", "")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		repo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	})
}
