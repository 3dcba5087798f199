package tokenstore

import (
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketAuth = []byte("auth")
	keyToken   = []byte("token")
)

type BoltStore struct {
	db *bolt.DB
}

var _ Store = (*BoltStore)(nil)

func Open(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open token store")
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketAuth)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init token store")
	}
	return &BoltStore{db: db}, nil
}

// Get returns the stored token, empty when none is stored.
func (s *BoltStore) Get() (string, error) {
	var token string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketAuth).Get(keyToken); v != nil {
			token = string(v)
		}
		return nil
	})
	return token, err
}

func (s *BoltStore) Set(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAuth).Put(keyToken, []byte(token))
	})
}

func (s *BoltStore) Remove() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAuth).Delete(keyToken)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
