package user

import (
	"context"
	"strings"

	"go-writeup/internal/rbac"
	"go-writeup/internal/shared/contextutil"
	usererrors "go-writeup/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)


type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	UpdateRole(ctx context.Context, id string, role string) (UserResponse, error)
	SetDisabled(ctx context.Context, id string, disabled bool) (UserResponse, error)
	ResetPassword(ctx context.Context, id string, newPassword string) error
	Delete(ctx context.Context, id string) error
	EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	role, ok := rbac.ParseRole(req.Role)
	if !ok {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	if len(req.Password) < 8 {
		return UserResponse{}, usererrors.ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:           uuid.New(),
		Username:     normalizeUsername(req.Username),
		PasswordHash: string(hashed),
		Role:         string(role),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		l.Error("failed to create user", zap.String("username", u.Username), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	l.Info("user created",
		zap.String("username", u.Username),
		zap.String("role", u.Role),
		zap.String("actor", contextutil.GetUsername(ctx)),
	)
	return mapToResponse(*u), nil
}

func (s *service) UpdateRole(ctx context.Context, id string, role string) (UserResponse, error) {
	r, ok := rbac.ParseRole(role)
	if !ok {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	if err := s.repo.UpdateFields(ctx, id, map[string]any{"role": string(r)}); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u.Role = string(r)
	contextutil.GetLogger(ctx, s.logger).Info("user role updated",
		zap.String("username", u.Username),
		zap.String("role", u.Role),
	)
	return mapToResponse(*u), nil
}

func (s *service) SetDisabled(ctx context.Context, id string, disabled bool) (UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	// re-enabling yourself is harmless, disabling would lock you out
	if disabled && s.isSelf(ctx, u) {
		return UserResponse{}, usererrors.ErrSelfModification
	}

	if err := s.repo.UpdateFields(ctx, id, map[string]any{"is_disabled": disabled}); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u.IsDisabled = disabled
	contextutil.GetLogger(ctx, s.logger).Info("user status updated",
		zap.String("username", u.Username),
		zap.Bool("is_disabled", disabled),
	)
	return mapToResponse(*u), nil
}

func (s *service) ResetPassword(ctx context.Context, id string, newPassword string) error {
	if len(newPassword) < 8 {
		return usererrors.ErrInvalidPassword
	}

	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return mapRepositoryError(s.repo.UpdateFields(ctx, id, map[string]any{"password_hash": string(hashed)}))
}

func (s *service) Delete(ctx context.Context, id string) error {
	u, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if s.isSelf(ctx, u) {
		return usererrors.ErrSelfModification
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("user deleted",
		zap.String("username", u.Username),
		zap.String("actor", contextutil.GetUsername(ctx)),
	)
	return nil
}

// EnsureDefaultAdmin seeds one admin account when the users table is empty.
// Returns true when a user was created.
func (s *service) EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return false, nil
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	if _, err := s.Create(ctx, CreateUserRequest{
		Username: username,
		Password: password,
		Role:     string(rbac.RoleAdmin),
	}); err != nil {
		return false, err
	}

	s.logger.Warn("seeded default admin account, change its password", zap.String("username", normalizeUsername(username)))
	return true, nil
}

func (s *service) find(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return u, nil
}

func (s *service) isSelf(ctx context.Context, u *User) bool {
	actor := contextutil.GetUsername(ctx)
	return actor != "" && strings.EqualFold(actor, u.Username)
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		Username:   u.Username,
		Role:       u.Role,
		IsDisabled: u.IsDisabled,
		CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
