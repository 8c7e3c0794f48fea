package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var ErrNoSession = errors.New("no session")

type session struct {
	Username string `json:"username"`
}

// Logout removes the session marker. A missing marker is not an error.
func (s *Store) Logout() error {
	err := os.Remove(s.SessionFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	s.Logger.Info("logged out")
	return nil
}

// ReadSession returns the user named by the session marker, if that user still has a directory.
func (s *Store) ReadSession() (string, error) {
	content, err := os.ReadFile(s.SessionFile)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoSession
	} else if err != nil {
		return "", err
	}
	var sess session
	if err := json.Unmarshal(content, &sess); err != nil {
		return "", fmt.Errorf("parse session: %w", err)
	}
	if sess.Username == "" {
		return "", fmt.Errorf("%w: empty username", ErrNoSession)
	}
	if !s.Exists(sess.Username) {
		return "", fmt.Errorf("%w: %s", ErrUserNotFound, sess.Username)
	}
	return sess.Username, nil
}

// TryAutoLogin is ReadSession with every failure treated as logged out.
func (s *Store) TryAutoLogin() (string, bool) {
	username, err := s.ReadSession()
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			s.Logger.Debug("auto login skipped", "error", err)
		}
		return "", false
	}
	return username, true
}
