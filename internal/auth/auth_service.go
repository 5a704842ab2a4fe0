package auth

import (
	"context"
	"errors"
	"time"

	autherrors "go-writeup/internal/auth/errors"
	"go-writeup/internal/rbac"
	"go-writeup/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type Service interface {
	CheckCredentials(ctx context.Context, username, password string) (bool, rbac.Role)
	Login(ctx context.Context, username, password string) (TokenPair, AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	users  user.Repository
	secret []byte
	now    func() time.Time
	logger *zap.Logger
}

func NewService(users user.Repository, secret string, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, secret: []byte(secret), now: time.Now, logger: l}
}

// CheckCredentials reports whether the pair matches an enabled account.
// Unknown or disabled users yield (false, "").
func (s *service) CheckCredentials(ctx context.Context, username, password string) (bool, rbac.Role) {
	u, ok := s.authenticate(ctx, username, password)
	if !ok {
		return false, ""
	}
	role, _ := rbac.ParseRole(u.Role)
	return true, role
}

func (s *service) Login(ctx context.Context, username, password string) (TokenPair, AuthResponse, error) {
	u, ok := s.authenticate(ctx, username, password)
	if !ok {
		s.logger.Info("login rejected", zap.String("username", username))
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	pair, err := s.issue(u)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}

	s.logger.Info("login succeeded", zap.String("username", u.Username), zap.String("role", u.Role))
	return pair, toResponse(u), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	if len(s.secret) == 0 {
		return TokenPair{}, AuthResponse{}, autherrors.ErrMissingSecret
	}

	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrTokenExpired
		}
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != tokenTypeRefresh {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userID, _ := claims["user_id"].(string)
	if _, err := uuid.Parse(userID); err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidToken
	}

	// role bisa berubah sejak token dibuat, ambil ulang dari store
	u, err := s.users.FindByID(ctx, userID)
	if err != nil || u.IsDisabled {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	pair, err := s.issue(u)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}
	return pair, toResponse(u), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil || u.IsDisabled {
		return nil, autherrors.ErrInvalidToken
	}

	resp := toResponse(u)
	return &resp, nil
}

func (s *service) authenticate(ctx context.Context, username, password string) (*user.User, bool) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil || u == nil || u.IsDisabled {
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, false
	}
	return u, true
}

func (s *service) issue(u *user.User) (TokenPair, error) {
	if len(s.secret) == 0 {
		return TokenPair{}, autherrors.ErrMissingSecret
	}

	access, err := s.generateToken(u, tokenTypeAccess, AccessTokenTTL)
	if err != nil {
		s.logger.Error("failed to sign access token", zap.Error(err))
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.generateToken(u, tokenTypeRefresh, RefreshTokenTTL)
	if err != nil {
		s.logger.Error("failed to sign refresh token", zap.Error(err))
		return TokenPair{}, autherrors.ErrTokenGenerationFailed
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) generateToken(u *user.User, typ string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  u.ID.String(),
		"username": u.Username,
		"role":     u.Role,
		"typ":      typ,
		"exp":      s.now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func toResponse(u *user.User) AuthResponse {
	return AuthResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Role:     u.Role,
	}
}
