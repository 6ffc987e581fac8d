package bill

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	sessionBucketName = "session"
	userKey           = "user"
)

// ErrNoUser is returned when no user record is present in the session
var ErrNoUser = errors.New("no user in session")

// Session defines the interface for the local session store holding the
// logged-in user's identity
type Session interface {
	// User returns the logged-in user record
	User() (User, error)

	// SetUser stores the logged-in user record
	SetUser(u User) error

	// Clear removes the user record
	Clear() error
}

// BoltSession implements the Session interface using BoltDB
type BoltSession struct {
	db *bbolt.DB
}

// NewBoltSession creates a new BoltSession instance
func NewBoltSession(path string) (*BoltSession, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating session bucket: %w", err)
	}

	return &BoltSession{db: db}, nil
}

// User returns the logged-in user record
func (s *BoltSession) User() (User, error) {
	var user User
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucketName))
		data := bucket.Get([]byte(userKey))
		if data == nil {
			return ErrNoUser
		}
		return json.Unmarshal(data, &user)
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

// SetUser stores the logged-in user record
func (s *BoltSession) SetUser(u User) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucketName))
		data, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("marshaling user: %w", err)
		}
		return bucket.Put([]byte(userKey), data)
	})
}

// Clear removes the user record
func (s *BoltSession) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucketName))
		return bucket.Delete([]byte(userKey))
	})
}

// Close closes the session database
func (s *BoltSession) Close() error {
	return s.db.Close()
}
