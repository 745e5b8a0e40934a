// Package kv is a durable key-value mirror for named pieces of application
// state. Values are JSON files on disk with an in-memory cache in front, so a
// Set is visible to the next Get immediately and survives restarts. Failures
// never reach the caller: a missing, unreadable, or unparseable value falls
// back to the provided default with a logged warning.
package kv

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/airdroplab/backend/pkg/logger"
	"github.com/puzpuzpuz/xsync"
)

// Well-known keys. Values under other keys are allowed, these are the ones
// the application itself uses.
const (
	KeyAirdrops             = "airdrops"
	KeyConnectedUsers       = "connectedUsers"
	KeyUser                 = "user"
	KeyIsAdmin              = "isAdmin"
	KeyIsAdminAuthenticated = "isAdminAuthenticated"
	KeyUserSettings         = "user_settings"
	KeyAdminSettings        = "admin_settings"
	KeyWelcomeBonusClaimed  = "welcomeBonusClaimed"
	KeyWalletConnected      = "walletConnected"
)

type Store struct {
	dir    string
	cache  *xsync.MapOf[string, []byte]
	logger logger.Logger
}

func NewStore(dir string, logger logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &Store{
		dir:    dir,
		cache:  xsync.NewMapOf[[]byte](),
		logger: logger,
	}, nil
}

// Get returns the stored value under key if present and parseable, otherwise
// def.
func Get[T any](s *Store, key string, def T) T {
	b, ok := s.cache.Load(key)
	if !ok {
		var err error
		b, err = os.ReadFile(s.path(key))
		if err != nil {
			if !os.IsNotExist(err) {
				s.logger.Warnf("Cannot read key %s: %v", key, err)
			}
			return def
		}

		s.cache.Store(key, b)
	}

	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		s.logger.Warnf("Cannot parse stored value of key %s: %v", key, err)
		return def
	}

	return value
}

// Set serializes value and stores it durably under key. The in-memory copy is
// updated first, so the caller's next Get reflects the write even if the disk
// write fails. Every call is one durable write, there is no batching.
func Set[T any](s *Store, key string, value T) {
	b, err := json.Marshal(value)
	if err != nil {
		s.logger.Warnf("Cannot serialize value of key %s: %v", key, err)
		return
	}

	s.cache.Store(key, b)
	if err := os.WriteFile(s.path(key), b, 0o644); err != nil {
		s.logger.Warnf("Cannot persist key %s: %v", key, err)
	}
}

// Delete removes the key from the store and from disk.
func (s *Store) Delete(key string) {
	s.cache.Delete(key)
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.logger.Warnf("Cannot remove key %s: %v", key, err)
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
