package service

import (
	"context"
	"errors"
	"time"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/modules/repo"
	"github.com/Alaebelamkaddame/content-management/internal/pkg/token"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const clientTokenKeyPrefix = "client_token:"

type ClientTokenService interface {
	GetByProject(ctx context.Context, projectID uuid.UUID) (*model.ClientToken, error)
	// Issue signs a fresh client token for the project and rotates the
	// persisted row, revoking any previously issued token.
	Issue(ctx context.Context, projectID uuid.UUID) (*model.ClientToken, error)
	// VerifyActive reports whether a verified client token is still the
	// active one for its project (rotation revokes older tokens). Lookups
	// are cached in redis with a short TTL.
	VerifyActive(ctx context.Context, raw string) (bool, error)
	// Delete removes a token row and drops its cache entry so revocation
	// is immediate rather than waiting out the cache TTL.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type clientTokenService struct {
	r        repo.ClientTokenRepo
	projects repo.ProjectRepo
	tokens   *token.Manager
	rdb      *redis.Client
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewClientTokenService(
	r repo.ClientTokenRepo,
	projects repo.ProjectRepo,
	tokens *token.Manager,
	rdb *redis.Client,
	cacheTTL time.Duration,
	log *zap.Logger,
) ClientTokenService {
	return &clientTokenService{
		r:        r,
		projects: projects,
		tokens:   tokens,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

func (s *clientTokenService) GetByProject(ctx context.Context, projectID uuid.UUID) (*model.ClientToken, error) {
	ct, err := s.r.GetByProject(ctx, projectID)
	if err != nil {
		return nil, storeErr(err)
	}
	return ct, nil
}

func (s *clientTokenService) Issue(ctx context.Context, projectID uuid.UUID) (*model.ClientToken, error) {
	ok, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	prior, err := s.r.GetByProject(ctx, projectID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	raw, err := s.tokens.IssueClient(projectID)
	if err != nil {
		return nil, err
	}

	ct, err := s.r.Rotate(ctx, projectID, raw)
	if err != nil {
		return nil, storeErr(err)
	}

	// Drop the cached entry of the replaced token so revocation takes
	// effect before the cache TTL would expire it.
	if prior != nil && s.rdb != nil {
		if err := s.rdb.Del(ctx, clientTokenKeyPrefix+prior.Token).Err(); err != nil {
			s.log.Warn("client token cache invalidation failed", zap.Error(err))
		}
	}
	return ct, nil
}

func (s *clientTokenService) VerifyActive(ctx context.Context, raw string) (bool, error) {
	key := clientTokenKeyPrefix + raw

	if s.rdb != nil {
		val, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			return val == "1", nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("client token cache read failed", zap.Error(err))
		}
	}

	active := true
	if _, err := s.r.GetByToken(ctx, raw); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
		active = false
	}

	if s.rdb != nil {
		val := "0"
		if active {
			val = "1"
		}
		if err := s.rdb.Set(ctx, key, val, s.cacheTTL).Err(); err != nil {
			s.log.Warn("client token cache write failed", zap.Error(err))
		}
	}
	return active, nil
}

func (s *clientTokenService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ct, err := s.r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	deleted, err := s.r.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, clientTokenKeyPrefix+ct.Token).Err(); err != nil {
			s.log.Warn("client token cache invalidation failed", zap.Error(err))
		}
	}
	return true, nil
}
