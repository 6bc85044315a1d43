package store

import (
	"fmt"

	"github.com/ZygmaCore/orbit/database"
)

// BoltSlot persists a credential in a bucket of the local BBolt database
type BoltSlot struct {
	db     *database.DB
	bucket string
	key    string
}

// NewBoltSlot creates a slot backed by the given bucket and key
func NewBoltSlot(db *database.DB, bucket, key string) *BoltSlot {
	return &BoltSlot{db: db, bucket: bucket, key: key}
}

// Read returns the stored value or ErrNotFound
func (s *BoltSlot) Read() (string, error) {
	data, err := s.db.Get(s.bucket, s.key)
	if err != nil {
		return "", fmt.Errorf("failed to read slot %s/%s: %w", s.bucket, s.key, err)
	}
	if data == nil {
		return "", ErrNotFound
	}
	return string(data), nil
}

// Write stores the value
func (s *BoltSlot) Write(value string) error {
	if err := s.db.Set(s.bucket, s.key, []byte(value)); err != nil {
		return fmt.Errorf("failed to write slot %s/%s: %w", s.bucket, s.key, err)
	}
	return nil
}

// Clear removes the stored value
func (s *BoltSlot) Clear() error {
	if err := s.db.Delete(s.bucket, s.key); err != nil {
		return fmt.Errorf("failed to clear slot %s/%s: %w", s.bucket, s.key, err)
	}
	return nil
}
