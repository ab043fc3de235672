// Package snapshot opens the host application's profile store and
// materialises the compressed SRS database image it keeps there as a
// queryable SQLite database.
package snapshot

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// The profile store keeps binary payloads in a single key-value table.
// The SRS database image lives under one fixed store/key pair.
const (
	DefaultStore = "binary-data"
	DefaultKey   = "srs-database"
)

const blobQuery = `SELECT value FROM kvstore WHERE store = ? AND key = ?`

// Option customises Open behaviour.
type Option func(*options)

type options struct {
	store string
	key   string
}

// WithStore overrides the store name the database image is read from.
func WithStore(name string) Option { return func(o *options) { o.store = name } }

// WithKey overrides the key the database image is read from.
func WithKey(key string) Option { return func(o *options) { o.key = key } }

// Session holds an opened SRS database snapshot. It owns both the profile
// store connection and the temp-file database materialised from it; the
// caller must Close it. A Session is meant for sequential use.
type Session struct {
	profile *sql.DB
	srs     *sql.DB
	tempDir string
}

// Open reads the compressed database image from the profile store at path,
// decompresses it to a temporary file and opens it as SQLite.
func Open(path string, opts ...Option) (*Session, error) {
	o := options{store: DefaultStore, key: DefaultKey}
	for _, opt := range opts {
		opt(&o)
	}

	profile, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening profile store: %w", err)
	}
	s := &Session{profile: profile}

	var blob []byte
	err = profile.QueryRow(blobQuery, o.store, o.key).Scan(&blob)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("reading database image %s/%s: %w", o.store, o.key, err)
	}

	raw, err := Decompress(blob)
	if err != nil {
		s.Close()
		return nil, err
	}

	tempDir, err := os.MkdirTemp("", "srsexport-*")
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	s.tempDir = tempDir

	dbPath := filepath.Join(tempDir, "srs.db")
	if err := os.WriteFile(dbPath, raw, 0o600); err != nil {
		s.Close()
		return nil, fmt.Errorf("writing database image: %w", err)
	}

	srs, err := sql.Open("sqlite", dbPath)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s.srs = srs

	if err := srs.Ping(); err != nil {
		s.Close()
		return nil, fmt.Errorf("opening decompressed database: %w", err)
	}

	return s, nil
}

// DB returns the opened SRS database.
func (s *Session) DB() *sql.DB {
	return s.srs
}

// Close releases both database handles and removes the temp directory.
func (s *Session) Close() error {
	if s.srs != nil {
		s.srs.Close()
	}
	if s.profile != nil {
		s.profile.Close()
	}
	if s.tempDir != "" {
		os.RemoveAll(s.tempDir)
	}
	return nil
}
