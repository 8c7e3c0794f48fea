package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/cestudio/logs"
	"github.com/reusee/cestudio/vars"
)

const (
	accountFileName = "account.json"
	sessionFileName = "current_user.json"
	usersDirName    = "Users"
)

var writeFile = os.WriteFile

// Store keeps one directory per user under UsersDir and the current session marker in SessionFile.
type Store struct {
	UsersDir    string
	SessionFile string
	Storage     PasswordStorage
	Logger      logs.Logger
}

func NewStore(dataDir string, storage PasswordStorage, logger logs.Logger) *Store {
	return &Store{
		UsersDir:    filepath.Join(dataDir, usersDirName),
		SessionFile: filepath.Join(dataDir, sessionFileName),
		Storage:     storage,
		Logger:      logger,
	}
}

func (s *Store) userDir(username string) (string, error) {
	if username == "." || username == ".." ||
		strings.ContainsAny(username, `/\`) ||
		strings.ContainsRune(username, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}
	return filepath.Join(s.UsersDir, username), nil
}

func (s *Store) Exists(username string) bool {
	dir, err := s.userDir(username)
	if err != nil || username == "" {
		return false
	}
	stat, err := os.Stat(dir)
	return err == nil && stat.IsDir()
}

func (s *Store) CreateAccount(username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if vars.Blank(username, password) {
		return ErrEmptyField
	}

	dir, err := s.userDir(username)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateUser, username)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	rec, err := newRecord(username, password, s.Storage)
	if err != nil {
		return err
	}
	content, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.UsersDir, 0700); err != nil {
		return err
	}
	// Mkdir fails if another process created the user in between
	if err := os.Mkdir(dir, 0700); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrDuplicateUser, username)
		}
		return err
	}
	if err := writeFile(filepath.Join(dir, accountFileName), content, 0600); err != nil {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			s.Logger.Warn("remove partial account", "dir", dir, "error", rmErr)
		}
		return err
	}

	s.Logger.Info("account created",
		"username", username,
		"storage", vars.FirstNonZero(s.Storage, StorageBcrypt),
	)
	return nil
}

func (s *Store) readRecord(username string) (rec record, err error) {
	dir, err := s.userDir(username)
	if err != nil {
		return rec, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}
	content, err := os.ReadFile(filepath.Join(dir, accountFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return rec, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	} else if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(content, &rec); err != nil {
		return rec, fmt.Errorf("read account %s: %w", username, err)
	}
	return rec, nil
}

// Login checks the password and writes the session marker, replacing any prior one.
func (s *Store) Login(username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" {
		return ErrUserNotFound
	}

	rec, err := s.readRecord(username)
	if err != nil {
		return err
	}
	ok, err := rec.verify(password)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.Logger.Info("login rejected", "username", username)
		return ErrWrongPassword
	}

	content, err := json.Marshal(session{
		Username: username,
	})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.SessionFile), 0700); err != nil {
		return err
	}
	if err := os.WriteFile(s.SessionFile, content, 0600); err != nil {
		return err
	}

	s.Logger.Info("logged in", "username", username)
	return nil
}
