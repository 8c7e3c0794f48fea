package accounts

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type PasswordStorage string

const (
	StorageBcrypt PasswordStorage = "bcrypt"
	// StoragePlain writes the password in clear text, the record format of the first releases.
	StoragePlain PasswordStorage = "plain"
)

// record is the content of account.json.
type record struct {
	Username     string `json:"username"`
	Password     string `json:"password,omitempty"`
	PasswordHash string `json:"password_hash,omitempty"`
}

func newRecord(username, password string, storage PasswordStorage) (record, error) {
	rec := record{
		Username: username,
	}
	switch storage {
	case StoragePlain:
		rec.Password = password
	case StorageBcrypt, "":
		hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
		if err != nil {
			return rec, fmt.Errorf("hash password: %w", err)
		}
		rec.PasswordHash = string(hash)
	default:
		return rec, fmt.Errorf("unknown password storage: %s", storage)
	}
	return rec, nil
}

// bcryptInput digests the password so that bcrypt sees a fixed 44 bytes whatever its length.
func bcryptInput(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func (r record) verify(password string) (bool, error) {
	if r.PasswordHash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(r.PasswordHash), bcryptInput(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
	// plain records compare by exact equality
	return r.Password == password, nil
}
