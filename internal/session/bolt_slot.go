package session

import (
	"context"
	"encoding/binary"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"
)

var sessionBucket = []byte("session")

// BoltSlot stores entries in a bbolt bucket. Each value is prefixed with its expiry as
// unix nanoseconds, zero meaning no expiry.
type BoltSlot struct {
	db  *bolt.DB
	now func() time.Time
}

// NewBoltSlot ensures the session bucket exists.
func NewBoltSlot(db *bolt.DB) (*BoltSlot, error) {
	if db == nil {
		return nil, errors.New("bolt db is nil")
	}
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &BoltSlot{db: db, now: time.Now}, nil
}

func (b *BoltSlot) Get(_ context.Context, key string) ([]byte, bool, error) {
	var (
		value   []byte
		found   bool
		expired bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(sessionBucket).Get([]byte(key))
		if len(raw) < 8 {
			return nil
		}
		if exp := int64(binary.BigEndian.Uint64(raw[:8])); exp != 0 && b.now().UnixNano() >= exp {
			expired = true
			return nil
		}
		value = append([]byte(nil), raw[8:]...)
		found = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if expired {
		return nil, false, b.Delete(context.Background(), key)
	}
	return value, found, nil
}

func (b *BoltSlot) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	buf := make([]byte, 8+len(value))
	if ttl > 0 {
		binary.BigEndian.PutUint64(buf[:8], uint64(b.now().Add(ttl).UnixNano()))
	}
	copy(buf[8:], value)
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Put([]byte(key), buf)
	})
}

func (b *BoltSlot) Delete(_ context.Context, key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Delete([]byte(key))
	})
}
