package dal

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// BoltDB is the bbolt-backed store. Buckets are created by migrations
// before the store is constructed.
type BoltDB struct {
	db  *bbolt.DB
	now func() time.Time
}

func NewBoltDB(db *bbolt.DB) (*BoltDB, error) {
	if err := db.View(func(tx *bbolt.Tx) error {
		for _, name := range []string{listingsBucket, subscriptionsBucket} {
			if tx.Bucket([]byte(name)) == nil {
				return fmt.Errorf("bucket %q not found; run migrations first", name)
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return &BoltDB{
		db:  db,
		now: time.Now,
	}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

func i64tob(id int64) []byte {
	return []byte(fmt.Sprintf("%d", id))
}
