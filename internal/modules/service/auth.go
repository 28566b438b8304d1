package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fieldtrack-io/fieldtrack/internal/config"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/repo"
	"github.com/fieldtrack-io/fieldtrack/internal/pkg/utils/secrets"
	"github.com/fieldtrack-io/fieldtrack/internal/pkg/utils/tokens"
)

const sessionKeyPrefix = "session:"

type AuthService interface {
	// Authenticate matches the identifier against username or email
	// case-insensitively and verifies the password. A failed match returns
	// (nil, nil), not an error.
	Authenticate(ctx context.Context, identifier, password string) (*model.User, error)
	// IssueToken creates an opaque bearer token for the user, valid for the
	// configured TTL.
	IssueToken(ctx context.Context, userID uuid.UUID) (string, error)
	// ResolveToken returns the user a bearer token belongs to, or
	// ErrInvalidToken.
	ResolveToken(ctx context.Context, rawToken string) (*model.User, error)
	RevokeToken(ctx context.Context, rawToken string) error
	// CreateUser hashes the password and stores the user. Registration and
	// seeding both go through here; there is no path that writes a plaintext
	// password.
	CreateUser(ctx context.Context, username, email, password string) (*model.User, error)
}

type authService struct {
	users repo.UserRepo
	rdb   *redis.Client
	cfg   *config.Config
	log   *zap.Logger
}

func NewAuthService(users repo.UserRepo, rdb *redis.Client, cfg *config.Config, log *zap.Logger) AuthService {
	return &authService{users: users, rdb: rdb, cfg: cfg, log: log}
}

func (s *authService) Authenticate(ctx context.Context, identifier, password string) (*model.User, error) {
	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	ok, err := secrets.VerifyPassword(password, user.Password)
	if err != nil {
		// A malformed stored hash is a data problem, log it but present the
		// same face as a wrong password.
		s.log.Warn("stored password hash unverifiable", zap.String("username", user.Username), zap.Error(err))
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *authService) IssueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	secret, err := tokens.NewSecret()
	if err != nil {
		return "", err
	}

	key := sessionKeyPrefix + tokens.HMAC256Hex(s.cfg.Auth.SecretPepper, secret)
	ttl := time.Duration(s.cfg.Auth.TokenTTLSec) * time.Second
	if err := s.rdb.Set(ctx, key, userID.String(), ttl).Err(); err != nil {
		return "", err
	}

	return s.cfg.Auth.TokenPrefix + secret, nil
}

func (s *authService) ResolveToken(ctx context.Context, rawToken string) (*model.User, error) {
	secret, ok := tokens.ParseToken(rawToken, s.cfg.Auth.TokenPrefix)
	if !ok {
		return nil, ErrInvalidToken
	}

	key := sessionKeyPrefix + tokens.HMAC256Hex(s.cfg.Auth.SecretPepper, secret)
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return s.users.GetByID(ctx, userID)
}

func (s *authService) RevokeToken(ctx context.Context, rawToken string) error {
	secret, ok := tokens.ParseToken(rawToken, s.cfg.Auth.TokenPrefix)
	if !ok {
		return ErrInvalidToken
	}
	key := sessionKeyPrefix + tokens.HMAC256Hex(s.cfg.Auth.SecretPepper, secret)
	return s.rdb.Del(ctx, key).Err()
}

func (s *authService) CreateUser(ctx context.Context, username, email, password string) (*model.User, error) {
	phc, err := secrets.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username: username,
		Email:    email,
		Password: phc,
		UserUUID: uuid.NewString(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
