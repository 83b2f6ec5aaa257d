package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"grocery_admin/internal/api"
	"grocery_admin/internal/config"

	"go.uber.org/zap"
)

var ErrNoSession = errors.New("not logged in")

// Session is the admin identity captured from the login response. It is
// set on login, cleared on logout, and handed to consumers explicitly
// instead of being re-read from shared storage all over the place.
type Session struct {
	Email       string    `json:"email"`
	Message     string    `json:"message,omitempty"`
	IsSuperuser bool      `json:"is_superuser"`
	Permissions []string  `json:"permissions,omitempty"`
	SavedAt     time.Time `json:"saved_at"`
}

func FromLogin(email string, result api.LoginResult) Session {
	if result.Email != "" {
		email = result.Email
	}
	return Session{
		Email:       email,
		Message:     result.Message,
		IsSuperuser: result.IsSuperuser,
		Permissions: result.Permissions,
		SavedAt:     time.Now(),
	}
}

func (s Session) HasPermission(name string) bool {
	if s.IsSuperuser {
		return true
	}
	for _, perm := range s.Permissions {
		if perm == name {
			return true
		}
	}
	return false
}

// Store persists the session record as a JSON file.
type Store struct {
	path   string
	logger *zap.Logger
}

func NewStore(cfg config.Config, logger *zap.Logger) (*Store, error) {
	path := cfg.SessionFile
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving session path: %w", err)
		}
		path = filepath.Join(dir, "grocery-admin", "session.json")
	}

	return &Store{
		path:   path,
		logger: logger.Named("session"),
	}, nil
}

func NewStoreAt(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger.Named("session")}
}

func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}

	s.logger.Info("session saved", zap.String("email", sess.Email), zap.Bool("is_superuser", sess.IsSuperuser))
	return nil
}

func (s *Store) Load() (Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("reading session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("decoding session: %w", err)
	}
	return sess, nil
}

func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.logger.Info("session cleared")
	return nil
}
