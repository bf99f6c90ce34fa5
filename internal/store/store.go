package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"stargaze/internal/domain"
)

// Bucket names
var (
	bucketStars = []byte("stars")
)

// Keys within bucketStars
const (
	keyList      = "list"
	keyFetchedAt = "fetched_at"
)

// StarStore persists the last successful star list using BoltDB, with
// an in-memory cache promoted on access. With an empty cache dir it
// runs memory-only.
type StarStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	cache map[string][]byte
}

// NewStarStore opens (or creates) the store under baseCacheDir. The
// backend URL is hashed into the directory name so switching servers
// never serves another server's stars.
func NewStarStore(baseCacheDir, serverURL string) (*StarStore, error) {
	if baseCacheDir == "" {
		// Memory-only mode (no persistence)
		return &StarStore{cache: make(map[string][]byte)}, nil
	}

	dir := baseCacheDir
	if serverURL != "" {
		dir = filepath.Join(baseCacheDir, hashServerURL(serverURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "stargaze.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketStars)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &StarStore{db: db, cache: make(map[string][]byte)}, nil
}

func hashServerURL(serverURL string) string {
	normalized := strings.TrimRight(strings.ToLower(serverURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

func (s *StarStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *StarStore) get(key string, dest interface{}) bool {
	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketStars)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *StarStore) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketStars)
		return b.Put([]byte(key), data)
	})
}

func (s *StarStore) delete(key string) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketStars)
		if b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// === Stars ===

// GetStars returns the last saved star list, if any
func (s *StarStore) GetStars() ([]domain.Star, bool) {
	var stars []domain.Star
	ok := s.get(keyList, &stars)
	return stars, ok
}

// SaveStars stores a successful fetch result along with its timestamp
func (s *StarStore) SaveStars(stars []domain.Star, fetchedAt time.Time) error {
	if err := s.set(keyList, stars); err != nil {
		return err
	}
	return s.set(keyFetchedAt, fetchedAt.Unix())
}

// FetchedAt returns when the saved list was fetched
func (s *StarStore) FetchedAt() (time.Time, bool) {
	var unix int64
	if !s.get(keyFetchedAt, &unix) {
		return time.Time{}, false
	}
	return time.Unix(unix, 0), true
}

// Invalidate removes the saved list and its timestamp
func (s *StarStore) Invalidate() {
	s.delete(keyList)
	s.delete(keyFetchedAt)
}
