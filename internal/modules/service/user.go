package service

import (
	"context"
	"fmt"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/modules/repo"
	"github.com/google/uuid"
)

type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Projects(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
}

type CreateUserInput struct {
	Username  string
	Password  string
	Role      model.Role
	FullName  string
	Email     string
	AvatarURL string
}

// UpdateUserInput is a patch: only non-nil fields are written.
type UpdateUserInput struct {
	Username  *string
	Role      *model.Role
	FullName  *string
	Email     *string
	AvatarURL *string
}

type userService struct {
	r repo.UserRepo
}

func NewUserService(r repo.UserRepo) UserService {
	return &userService{r: r}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.r.List(ctx)
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.r.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return u, nil
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	if in.Username == "" || in.Password == "" || in.FullName == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: username, password, full_name and email are required", ErrValidation)
	}
	role, err := model.ParseRole(string(in.Role))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:     in.Username,
		PasswordHash: hash,
		Role:         role,
		FullName:     in.FullName,
		Email:        in.Email,
		AvatarURL:    in.AvatarURL,
	}
	if err := s.r.Create(ctx, u); err != nil {
		return nil, storeErr(err)
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*model.User, error) {
	fields := map[string]any{}
	if in.Username != nil {
		fields["username"] = *in.Username
	}
	if in.Role != nil {
		role, err := model.ParseRole(string(*in.Role))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		fields["role"] = role
	}
	if in.FullName != nil {
		fields["full_name"] = *in.FullName
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.AvatarURL != nil {
		fields["avatar_url"] = *in.AvatarURL
	}

	// Empty patch is a no-op: return the current row, updated_at untouched.
	if len(fields) == 0 {
		return s.Get(ctx, id)
	}

	u, err := s.r.Update(ctx, id, fields)
	if err != nil {
		return nil, storeErr(err)
	}
	return u, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.r.Delete(ctx, id)
}

func (s *userService) Projects(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	return s.r.ListProjects(ctx, userID)
}
