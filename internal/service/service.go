package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Dan9191/unidash/internal/config"
	"github.com/Dan9191/unidash/internal/models"
	"github.com/Dan9191/unidash/internal/repository"
	"github.com/Dan9191/unidash/internal/session"
	"github.com/Dan9191/unidash/internal/state"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingFields      = errors.New("email, name and password are required")
	ErrInvalidEmail       = errors.New("a valid email address is required")
	ErrUserExists         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("no active session")
	ErrNotFound           = errors.New("not found")
)

// WeatherSource supplies weather snapshots for the dashboard.
type WeatherSource interface {
	Lookup(ctx context.Context, city string) models.WeatherSnapshot
	Snapshot(city string) models.WeatherSnapshot
}

// Mailer delivers the balance sheet by email.
type Mailer interface {
	SendBalanceSheet(to, name string, sheet []byte) error
}

// Service handles business logic
type Service struct {
	repo    *repository.Repository
	log     *logrus.Logger
	config  *config.Config
	gen     state.Generator
	weather WeatherSource
	mailer  Mailer
	locks   keyedMutex
	// loc is the fallback zone for greetings when settings name none.
	loc *time.Location
}

// NewService initializes a new service. weather and mailer may be nil, which
// disables the features that need them.
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, weather WeatherSource, mailer Mailer) *Service {
	return &Service{
		repo:    repo,
		log:     log,
		config:  cfg,
		gen:     state.DefaultGenerator(),
		weather: weather,
		mailer:  mailer,
		loc:     time.Local,
	}
}

// Register creates a new user with hashed password, signs them in and returns a JWT token
func (s *Service) Register(ctx context.Context, email, name, password string) (string, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		return "", ErrMissingFields
	}
	// Accounts are keyed by address; anything else could claim the
	// single-user namespace.
	if !isAddress(email) {
		return "", ErrInvalidEmail
	}

	unlock := s.locks.lock(accountsLock)
	defer unlock()

	if _, err := s.repo.FindUser(ctx, email); err == nil {
		return "", ErrUserExists
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
	}
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return "", err
	}
	sess := session.Session{Identity: email}
	if err := s.repo.SaveProfile(ctx, sess, state.NewUserProfile(name)); err != nil {
		return "", fmt.Errorf("failed to create profile: %w", err)
	}
	if err := s.repo.StartSession(ctx, email); err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}

	s.log.Infof("User registered: %s", user.Email)
	return s.issueToken(user.Email)
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindUser(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if err := s.repo.StartSession(ctx, user.Email); err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return s.issueToken(user.Email)
}

// Logout clears the active session marker when it belongs to sess
func (s *Service) Logout(ctx context.Context, sess session.Session) error {
	active, ok := s.repo.ActiveSession(ctx)
	if !ok || !strings.EqualFold(active.Identity, sess.Identity) {
		return nil
	}
	if err := s.repo.EndSession(ctx); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	s.log.Infof("User logged out: %s", sess.Identity)
	return nil
}

// ActiveSession returns the session of the last user to sign in
func (s *Service) ActiveSession(ctx context.Context) (session.Session, bool) {
	return s.repo.ActiveSession(ctx)
}

// Authorize validates a JWT token and returns the session it names
func (s *Service) Authorize(ctx context.Context, tokenString string) (session.Session, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return session.Session{}, ErrUnauthorized
	}

	user, err := s.repo.FindUser(ctx, claims.Subject)
	if err != nil {
		return session.Session{}, ErrUnauthorized
	}
	return session.Session{Identity: user.Email}, nil
}

// isAddress reports whether identity looks like user@domain.
func isAddress(identity string) bool {
	at := strings.LastIndex(identity, "@")
	return at > 0 && at < len(identity)-1 && !strings.ContainsAny(identity, " \t<>")
}

func (s *Service) issueToken(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL())),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

func (s *Service) tokenTTL() time.Duration {
	if s.config.TokenTTL <= 0 {
		return 24 * time.Hour
	}
	return s.config.TokenTTL
}

// begin checks sess and serializes mutations of its data. The returned func
// releases the lock.
func (s *Service) begin(sess session.Session) (func(), error) {
	if !sess.Valid() {
		return nil, ErrUnauthorized
	}
	return s.locks.lock(strings.ToLower(sess.Identity)), nil
}

// accountsLock guards the shared user list. Identities are emails or
// local_user, so it cannot collide with one.
const accountsLock = " accounts"

// keyedMutex hands out one mutex per key and forgets keys nobody holds.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*refMutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
