package auth_test

import (
	"context"
	"testing"

	"go-writeup/internal/auth"
	autherrors "go-writeup/internal/auth/errors"
	"go-writeup/internal/rbac"
	"go-writeup/internal/user"
	userMock "go-writeup/internal/user/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newUser(t *testing.T, role string, disabled bool) *user.User {
	pw, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &user.User{
		ID:           uuid.New(),
		Username:     "jdoe",
		PasswordHash: string(pw),
		Role:         role,
		IsDisabled:   disabled,
	}
}

func parseClaims(t *testing.T, tok string) jwt.MapClaims {
	parsed, err := jwt.Parse(tok, func(*jwt.Token) (interface{}, error) { return []byte(testSecret), nil })
	require.NoError(t, err)
	return parsed.Claims.(jwt.MapClaims)
}

func TestService_CheckCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("valid manager", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret)

		repo.EXPECT().FindByUsername(ctx, "jdoe").Return(newUser(t, "manager", false), nil)

		ok, role := svc.CheckCredentials(ctx, "jdoe", "password123")
		assert.True(t, ok)
		assert.Equal(t, rbac.RoleManager, role)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret)

		repo.EXPECT().FindByUsername(ctx, "jdoe").Return(newUser(t, "manager", false), nil)

		ok, role := svc.CheckCredentials(ctx, "jdoe", "nope")
		assert.False(t, ok)
		assert.Equal(t, rbac.Role(""), role)
	})

	t.Run("disabled user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret)

		repo.EXPECT().FindByUsername(ctx, "jdoe").Return(newUser(t, "admin", true), nil)

		ok, role := svc.CheckCredentials(ctx, "jdoe", "password123")
		assert.False(t, ok)
		assert.Empty(t, role)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret)

		repo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		ok, _ := svc.CheckCredentials(ctx, "ghost", "password123")
		assert.False(t, ok)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues typed tokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret)
		u := newUser(t, "viewer", false)

		repo.EXPECT().FindByUsername(ctx, "jdoe").Return(u, nil)

		pair, resp, err := svc.Login(ctx, "jdoe", "password123")
		require.NoError(t, err)
		assert.Equal(t, "viewer", resp.Role)

		access := parseClaims(t, pair.AccessToken)
		assert.Equal(t, "access", access["typ"])
		assert.Equal(t, u.ID.String(), access["user_id"])
		assert.Equal(t, "jdoe", access["username"])

		refresh := parseClaims(t, pair.RefreshToken)
		assert.Equal(t, "refresh", refresh["typ"])
	})

	t.Run("bad password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret)

		repo.EXPECT().FindByUsername(ctx, "jdoe").Return(newUser(t, "viewer", false), nil)

		_, _, err := svc.Login(ctx, "jdoe", "wrong")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("missing secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, "")

		repo.EXPECT().FindByUsername(ctx, "jdoe").Return(newUser(t, "viewer", false), nil)

		_, _, err := svc.Login(ctx, "jdoe", "password123")
		assert.ErrorIs(t, err, autherrors.ErrMissingSecret)
	})
}

func TestService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("refresh picks up new role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret)
		u := newUser(t, "viewer", false)

		repo.EXPECT().FindByUsername(ctx, "jdoe").Return(u, nil)
		pair, _, err := svc.Login(ctx, "jdoe", "password123")
		require.NoError(t, err)

		promoted := *u
		promoted.Role = "manager"
		repo.EXPECT().FindByID(ctx, u.ID.String()).Return(&promoted, nil)

		next, resp, err := svc.RefreshToken(ctx, pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, "manager", resp.Role)
		assert.Equal(t, "manager", parseClaims(t, next.AccessToken)["role"])
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret)

		repo.EXPECT().FindByUsername(ctx, "jdoe").Return(newUser(t, "viewer", false), nil)
		pair, _, err := svc.Login(ctx, "jdoe", "password123")
		require.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, pair.AccessToken)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := auth.NewService(userMock.NewMockRepository(ctrl), testSecret)

		_, _, err := svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("disabled since login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := userMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret)
		u := newUser(t, "viewer", false)

		repo.EXPECT().FindByUsername(ctx, "jdoe").Return(u, nil)
		pair, _, err := svc.Login(ctx, "jdoe", "password123")
		require.NoError(t, err)

		disabled := *u
		disabled.IsDisabled = true
		repo.EXPECT().FindByID(ctx, u.ID.String()).Return(&disabled, nil)

		_, _, err = svc.RefreshToken(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}
