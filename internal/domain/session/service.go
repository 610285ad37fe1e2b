package session

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

const DefaultTTL = 24 * time.Hour

var ErrInvalidSession = errors.New("invalid session")

type Servicer interface {
	Create(ctx context.Context, userID int) (string, error)
	Validate(ctx context.Context, token string) (int, error)
	Revoke(ctx context.Context, token string) error
	CSRFToken(token string) string
	VerifyCSRF(token, csrf string) bool
}

type Service struct {
	repo   Repository
	secret []byte
	ttl    time.Duration
	log    *slog.Logger
}

func NewService(repo Repository, secret string, ttl time.Duration, log *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		log:    log.With("component", "session_service"),
	}
}

func (s *Service) Create(ctx context.Context, userID int) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(tokenBytes)

	expiresAt := time.Now().Add(s.ttl)
	if err := s.repo.Create(ctx, userID, hashToken(token), expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

func (s *Service) Validate(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, ErrInvalidSession
	}
	return s.repo.Validate(ctx, hashToken(token))
}

// Revoke удаляет сессию. Повторный вызов не считается ошибкой.
func (s *Service) Revoke(ctx context.Context, token string) error {
	if err := s.repo.Revoke(ctx, hashToken(token)); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// CSRFToken выводит анти-подделочный токен из токена сессии: HMAC-SHA256
// с секретом сервера. Хранить его не нужно.
func (s *Service) CSRFToken(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Service) VerifyCSRF(token, csrf string) bool {
	if token == "" || csrf == "" {
		return false
	}
	return hmac.Equal([]byte(s.CSRFToken(token)), []byte(csrf))
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
