package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dshu-atelier/storefront/internal/gateway"
	"github.com/dshu-atelier/storefront/internal/hash"
	"github.com/dshu-atelier/storefront/internal/kvstore"
	"github.com/dshu-atelier/storefront/internal/logging"
	"github.com/dshu-atelier/storefront/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBusy               = errors.New("request already in progress")
)

const loginLatency = time.Second

// Credentials is the single account the mock backend knows about. Only the
// bcrypt hash of the password is held.
type Credentials struct {
	Email        string
	Name         string
	PasswordHash string
}

// Service owns the current session: Anonymous until Login/Register succeeds,
// back to Anonymous on Logout. The user record is mirrored into the persisted
// store after every change; the authenticated and in-flight flags are
// transient.
type Service struct {
	store  kvstore.Store
	gw     gateway.Gateway
	secret []byte
	cred   Credentials

	mu            sync.Mutex
	user          *models.User
	authenticated bool
	loading       bool
}

func NewService(store kvstore.Store, gw gateway.Gateway, secret []byte, cred Credentials) *Service {
	return &Service{store: store, gw: gw, secret: secret, cred: cred}
}

func (s *Service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrBusy
	}
	s.loading = true
	return nil
}

func (s *Service) finish(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if user != nil {
		s.user = user
		s.authenticated = true
	}
}

// Login checks the credentials against the single known account after a
// simulated round trip. On success the minted user is persisted and the
// session becomes authenticated; on failure the session stays anonymous.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	if err := s.gw.Call(ctx, loginLatency); err != nil {
		s.finish(nil)
		return nil, err
	}

	if email != s.cred.Email || !hash.Check(s.cred.PasswordHash, password) {
		s.finish(nil)
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	token, err := s.mintToken("1", email, now)
	if err != nil {
		s.finish(nil)
		return nil, err
	}

	user := &models.User{ID: "1", Email: email, Name: s.cred.Name, Token: token}
	if err := kvstore.SetJSON(ctx, s.store, kvstore.AuthUserKey, user); err != nil {
		s.finish(nil)
		return nil, fmt.Errorf("persist user: %w", err)
	}

	s.finish(user)
	return user, nil
}

// Register mints a fresh user after the simulated round trip. There is no
// duplicate-email check: registering again simply overwrites the local
// session, matching the mock backend's behavior.
func (s *Service) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	if err := s.gw.Call(ctx, loginLatency); err != nil {
		s.finish(nil)
		return nil, err
	}

	now := time.Now()
	id := strconv.FormatInt(now.UnixMilli(), 10)
	token, err := s.mintToken(id, email, now)
	if err != nil {
		s.finish(nil)
		return nil, err
	}

	user := &models.User{ID: id, Email: email, Name: name, Token: token}
	if err := kvstore.SetJSON(ctx, s.store, kvstore.AuthUserKey, user); err != nil {
		s.finish(nil)
		return nil, fmt.Errorf("persist user: %w", err)
	}

	s.finish(user)
	return user, nil
}

// Logout resets the session to anonymous and clears both persisted records:
// a new session deliberately starts with an empty cart as well.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, kvstore.AuthUserKey); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	if err := s.store.Delete(ctx, kvstore.CartItemsKey); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()
	return nil
}

// Initialize restores the session from the persisted store at startup. A
// corrupt record is discarded and the session stays anonymous; Initialize
// never fails.
func (s *Service) Initialize(ctx context.Context) {
	var user models.User
	err := kvstore.GetJSON(ctx, s.store, kvstore.AuthUserKey, &user)
	switch {
	case err == nil:
		s.mu.Lock()
		s.user = &user
		s.authenticated = true
		s.mu.Unlock()
	case errors.Is(err, kvstore.ErrNotFound):
	default:
		logging.FromContext(ctx).Warn("discarding corrupt session record", "error", err)
		_ = s.store.Delete(ctx, kvstore.AuthUserKey)
	}
}

// Current returns a copy of the signed-in user, if any.
func (s *Service) Current() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated || s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Service) mintToken(id, email string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  id,
		Audience: jwt.ClaimStrings{email},
		IssuedAt: jwt.NewNumericDate(now),
		ID:       strconv.FormatInt(now.UnixMilli(), 10),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("mint token: %w", err)
	}
	return signed, nil
}
