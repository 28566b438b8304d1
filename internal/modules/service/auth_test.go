package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fieldtrack-io/fieldtrack/internal/config"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
	"github.com/fieldtrack-io/fieldtrack/internal/pkg/utils/secrets"
)

// MockUserRepo is a mock implementation of UserRepo
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

func (m *MockUserRepo) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) ExistsByIdentifier(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func authTestConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			TokenPrefix:  "ft_",
			SecretPepper: "test-pepper",
			TokenTTLSec:  3600,
		},
	}
}

func setupAuthService(t *testing.T, users *MockUserRepo) (AuthService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewAuthService(users, rdb, authTestConfig(), zap.NewNop()), mr
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	phc, err := secrets.HashPassword("secret")
	require.NoError(t, err)
	user := &model.User{ID: uuid.New(), Username: "alice", Email: "alice@fieldtrack.io", Password: phc}

	tests := []struct {
		name       string
		identifier string
		password   string
		setup      func(*MockUserRepo)
		wantUser   bool
	}{
		{
			name:       "username and correct password",
			identifier: "alice",
			password:   "secret",
			setup: func(users *MockUserRepo) {
				users.On("GetByIdentifier", ctx, "alice").Return(user, nil)
			},
			wantUser: true,
		},
		{
			name:       "email and correct password",
			identifier: "alice@fieldtrack.io",
			password:   "secret",
			setup: func(users *MockUserRepo) {
				users.On("GetByIdentifier", ctx, "alice@fieldtrack.io").Return(user, nil)
			},
			wantUser: true,
		},
		{
			name:       "wrong password",
			identifier: "alice",
			password:   "nope",
			setup: func(users *MockUserRepo) {
				users.On("GetByIdentifier", ctx, "alice").Return(user, nil)
			},
			wantUser: false,
		},
		{
			name:       "unknown identifier",
			identifier: "bob",
			password:   "secret",
			setup: func(users *MockUserRepo) {
				users.On("GetByIdentifier", ctx, "bob").Return(nil, nil)
			},
			wantUser: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &MockUserRepo{}
			tt.setup(users)
			svc, _ := setupAuthService(t, users)

			got, err := svc.Authenticate(ctx, tt.identifier, tt.password)
			require.NoError(t, err)
			if tt.wantUser {
				require.NotNil(t, got)
				assert.Equal(t, user.ID, got.ID)
			} else {
				assert.Nil(t, got)
			}
			users.AssertExpectations(t)
		})
	}
}

func TestAuthService_TokenLifecycle(t *testing.T) {
	ctx := context.Background()
	user := &model.User{ID: uuid.New(), Username: "alice"}

	users := &MockUserRepo{}
	users.On("GetByID", ctx, user.ID).Return(user, nil)
	svc, mr := setupAuthService(t, users)

	token, err := svc.IssueToken(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "ft_"))

	// the raw token secret must not appear anywhere in the store
	for _, key := range mr.Keys() {
		assert.NotContains(t, key, strings.TrimPrefix(token, "ft_"))
	}

	resolved, err := svc.ResolveToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	require.NoError(t, svc.RevokeToken(ctx, token))
	_, err = svc.ResolveToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ResolveToken_Invalid(t *testing.T) {
	ctx := context.Background()
	users := &MockUserRepo{}
	svc, mr := setupAuthService(t, users)

	t.Run("wrong prefix", func(t *testing.T) {
		_, err := svc.ResolveToken(ctx, "tk_deadbeef")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown secret", func(t *testing.T) {
		_, err := svc.ResolveToken(ctx, "ft_AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired session", func(t *testing.T) {
		userID := uuid.New()
		users.On("GetByID", ctx, userID).Return(&model.User{ID: userID}, nil).Maybe()

		token, err := svc.IssueToken(ctx, userID)
		require.NoError(t, err)

		mr.FastForward(2 * time.Hour)
		_, err = svc.ResolveToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_CreateUser(t *testing.T) {
	ctx := context.Background()
	users := &MockUserRepo{}
	users.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
		// only the argon2id PHC string may hit the repo
		return u.Username == "alice" &&
			strings.HasPrefix(u.Password, "$argon2id$") &&
			u.UserUUID != ""
	})).Return(nil)

	svc, _ := setupAuthService(t, users)

	created, err := svc.CreateUser(ctx, "alice", "alice@fieldtrack.io", "secret")
	require.NoError(t, err)

	ok, err := secrets.VerifyPassword("secret", created.Password)
	require.NoError(t, err)
	assert.True(t, ok)
	users.AssertExpectations(t)
}
