package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/exp/slices"

	"github.com/hailam/cherris/internal/session"
)

// Storage keys
const (
	keyPreferences = "preferences"
	prefixSession  = "session/"
)

// ErrSessionNotFound is returned when no session is stored under a name.
var ErrSessionNotFound = errors.New("session not found")

// UserPreferences stores user settings
type UserPreferences struct {
	Username        string    `json:"username"`
	ShowCoordinates bool      `json:"show_coordinates"`
	Flipped         bool      `json:"flipped"`
	LastSession     string    `json:"last_session"`
	LastPlayed      time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:        "Player",
		ShowCoordinates: true,
		LastPlayed:      time.Now(),
	}
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db  *badger.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewStorage opens the database in the platform data directory
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) a database in dir
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		db.Close()
		return nil, err
	}

	return &Storage{db: db, enc: enc, dec: dec}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.dec != nil {
		s.dec.Close()
	}
	if s.enc != nil {
		s.enc.Close()
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

func sessionKey(name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "/ \t\n") {
		return nil, fmt.Errorf("invalid session name %q", name)
	}
	return []byte(prefixSession + name), nil
}

// SaveSession stores a session snapshot under name, replacing any previous one
func (s *Storage) SaveSession(name string, snap session.Snapshot) error {
	key, err := sessionKey(name)
	if err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	packed := s.enc.EncodeAll(data, nil)

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, packed)
	})
}

// LoadSession returns the snapshot stored under name
func (s *Storage) LoadSession(name string) (session.Snapshot, error) {
	var snap session.Snapshot
	key, err := sessionKey(name)
	if err != nil {
		return snap, err
	}

	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			data, err := s.dec.DecodeAll(val, nil)
			if err != nil {
				return fmt.Errorf("decompress session %s: %w", name, err)
			}
			return json.Unmarshal(data, &snap)
		})
	})

	return snap, err
}

// DeleteSession removes a stored session
func (s *Storage) DeleteSession(name string) error {
	key, err := sessionKey(name)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// ListSessions returns the stored session names in order
func (s *Storage) ListSessions() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefixSession)

		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, prefixSession))
		}
		return nil
	})

	slices.Sort(names)
	return names, err
}
