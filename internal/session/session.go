package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/market-chat/internal/model"
)

const (
	dirName  = "market-chat"
	fileName = "session.json"
)

// Session is the authenticated identity of the terminal user. The token is
// treated as opaque and forwarded verbatim; its claims are only read to find
// out when it stops being usable.
type Session struct {
	token     string
	user      model.User
	expiresAt time.Time
	now       func() time.Time
}

type stored struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func New(token string, user model.User) *Session {
	s := &Session{
		token: token,
		user:  user,
		now:   time.Now,
	}

	claims := &model.SessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if claims.ExpiresAt != nil {
			s.expiresAt = claims.ExpiresAt.Time
		}
		if s.user.ID == "" {
			s.user.ID = claims.Subject
		}
	}

	return s
}

// Token returns the bearer token, or "" when there is none or it expired.
func (s *Session) Token() string {
	if s == nil || s.token == "" {
		return ""
	}
	if !s.expiresAt.IsZero() && !s.now().Before(s.expiresAt) {
		return ""
	}
	return s.token
}

func (s *Session) UserID() string {
	if s == nil {
		return ""
	}
	return s.user.ID
}

func (s *Session) User() model.User {
	if s == nil {
		return model.User{}
	}
	return s.user
}

func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find config dir: %w", err)
	}

	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads a saved session. A missing file yields an empty session.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New("", model.User{}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var st stored
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return New(st.Token, st.User), nil
}

func (s *Session) Save(path string) error {
	data, err := json.MarshalIndent(stored{Token: s.token, User: s.user}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}

func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	return nil
}
