package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hotel-console/models"
	"hotel-console/storage"
)

// InvalidCredentials is the only failure message Login gives, whichever
// field was wrong.
const InvalidCredentials = "Invalid credentials"

const sessionPrefix = "session:"

var ErrNoSession = errors.New("no active session")

// LoginResult mirrors what the console expects back from a login attempt.
type LoginResult struct {
	Success bool            `json:"success"`
	User    *models.Session `json:"user,omitempty"`
	Token   string          `json:"token,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Service checks credentials against the users collection and keeps issued
// sessions in a separate short-lived backend.
//
// Credentials are stored by the operator in plaintext unless provisioned as
// bcrypt hashes. This is only acceptable while the console is run by a single
// trusted operator.
type Service struct {
	users    *storage.Collection[models.User, *models.User]
	sessions storage.Backend
	log      *slog.Logger
	now      func() time.Time
}

func NewService(users *storage.Collection[models.User, *models.User], sessions storage.Backend, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{users: users, sessions: sessions, log: log, now: time.Now}
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func passwordMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// Login looks for a user whose email and password both match exactly. The
// error is only non-nil when the session could not be stored.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var found *models.User
	for _, u := range s.users.All(ctx) {
		if u.Email == email && passwordMatches(u.Password, password) {
			found = u
			break
		}
	}
	if found == nil {
		s.log.Info("login rejected", slog.String("email", email))
		return LoginResult{Success: false, Message: InvalidCredentials}, nil
	}

	sess := &models.Session{
		Email:     found.Email,
		Role:      found.Role,
		Name:      found.Name,
		LoginTime: s.now().UTC(),
	}
	token, err := generateTokenHex(32)
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate session token: %w", err)
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return LoginResult{}, err
	}
	if err := s.sessions.SetItem(ctx, sessionPrefix+token, raw); err != nil {
		return LoginResult{}, fmt.Errorf("store session: %w", err)
	}

	s.log.Info("login", slog.String("email", sess.Email), slog.String("role", sess.Role))
	return LoginResult{Success: true, User: sess, Token: token}, nil
}

// Logout drops the session behind token. Unknown tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.RemoveItem(ctx, sessionPrefix+token)
}

// GetSession returns the session behind token, or ErrNoSession.
func (s *Service) GetSession(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	raw, ok, err := s.sessions.GetItem(ctx, sessionPrefix+token)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return nil, ErrNoSession
	}
	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.log.Warn("dropping unreadable session", slog.Any("error", err))
		_ = s.sessions.RemoveItem(ctx, sessionPrefix+token)
		return nil, ErrNoSession
	}
	return &sess, nil
}

func (s *Service) IsAuthenticated(ctx context.Context, token string) bool {
	sess, err := s.GetSession(ctx, token)
	return err == nil && sess != nil
}

// GetRole returns the session role, or "" without a session.
func (s *Service) GetRole(ctx context.Context, token string) string {
	sess, err := s.GetSession(ctx, token)
	if err != nil {
		return ""
	}
	return sess.Role
}

func (s *Service) IsAdmin(ctx context.Context, token string) bool {
	return s.GetRole(ctx, token) == models.RoleAdmin
}
