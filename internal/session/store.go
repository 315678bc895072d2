// Package session persists CLI login sessions in a bbolt file, one JSON
// record per profile.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/fivetwenty-io/governance-client/internal/constants"
)

const sessionBucket = "sessions"

var errBucketMissing = errors.New("session bucket missing")

// Session is the stored login for a profile.
type Session struct {
	Profile  string    `json:"profile"             yaml:"profile"`
	BaseURL  string    `json:"base_url,omitempty"  yaml:"base_url,omitempty"`
	Token    string    `json:"token"               yaml:"token"`
	TenantID string    `json:"tenant_id,omitempty" yaml:"tenant_id,omitempty"`
	SavedAt  time.Time `json:"saved_at"            yaml:"saved_at"`
}

// Store is a bbolt-backed session store.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the session file at path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		err := os.MkdirAll(dir, constants.ConfigDirPerm)
		if err != nil {
			return nil, fmt.Errorf("create session directory: %w", err)
		}
	}

	db, err := bolt.Open(path, constants.ConfigFilePerm, &bolt.Options{Timeout: constants.SessionLockTimeout})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))

		return err //nolint:wrapcheck // wrapped below
	})
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("init session bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the session file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close() //nolint:wrapcheck // nothing to add
}

// Save stores session under its profile, replacing any previous one.
func (s *Store) Save(session *Session) error {
	if session.Token == "" {
		return constants.ErrEmptyToken
	}

	if session.Profile == "" {
		session.Profile = constants.DefaultProfile
	}

	if session.SavedAt.IsZero() {
		session.SavedAt = time.Now().UTC()
	}

	value, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		if bucket == nil {
			return errBucketMissing
		}

		return bucket.Put([]byte(session.Profile), value)
	})
	if err != nil {
		return fmt.Errorf("save session %q: %w", session.Profile, err)
	}

	return nil
}

// Load returns the session stored for profile, or ErrSessionNotFound.
func (s *Store) Load(profile string) (*Session, error) {
	var session *Session

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		if bucket == nil {
			return errBucketMissing
		}

		value := bucket.Get([]byte(profile))
		if value == nil {
			return constants.ErrSessionNotFound
		}

		session = &Session{}

		return json.Unmarshal(value, session)
	})
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", profile, err)
	}

	return session, nil
}

// Delete removes the session for profile. Deleting a missing session
// returns ErrSessionNotFound.
func (s *Store) Delete(profile string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		if bucket == nil {
			return errBucketMissing
		}

		if bucket.Get([]byte(profile)) == nil {
			return constants.ErrSessionNotFound
		}

		return bucket.Delete([]byte(profile))
	})
	if err != nil {
		return fmt.Errorf("delete session %q: %w", profile, err)
	}

	return nil
}

// Profiles lists the stored profile names in order.
func (s *Store) Profiles() ([]string, error) {
	var profiles []string

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		if bucket == nil {
			return errBucketMissing
		}

		return bucket.ForEach(func(k, _ []byte) error {
			profiles = append(profiles, string(k))

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	sort.Strings(profiles)

	return profiles, nil
}
