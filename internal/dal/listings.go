package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const listingsBucket = "listings"

// Listing is one advertised room as fetched from the portal. It lives for a
// single polling cycle; only its identifiers survive in the store. AltID is
// the detail url key when the primary identifier is the numeric portal id,
// so a listing stays recognizable no matter which of the two the next fetch
// reports.
type Listing struct {
	ID    string `json:"id"`
	AltID string `json:"alt_id,omitempty"`
	URL   string `json:"url"`
	Price string `json:"price"`
}

// SeenListing is a listing identifier that has been processed. The set of
// seen listings only grows: there is deliberately no delete operation, so a
// listing is never notified about twice within one deployment.
type SeenListing struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Price       string    `json:"price"`
	FirstSeenAt time.Time `json:"first_seen_at"`
	NotifiedAt  time.Time `json:"notified_at,omitzero"`
	Applied     bool      `json:"applied,omitempty"`
}

func (s *BoltDB) CountSeenListings() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(listingsBucket))
		res = b.Stats().KeyN
		return nil
	})
	return res, err
}

func (s *BoltDB) ExistsSeenListing(id string) (bool, error) {
	res := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(listingsBucket)).Get([]byte(id)) != nil {
			res = true
		}
		return nil
	})

	return res, err
}

func (s *BoltDB) GetSeenListing(id string) (SeenListing, bool, error) {
	var res SeenListing
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(listingsBucket)).Get([]byte(id))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

// GetSeenListingIDs returns the known-identifier set used to diff a fetch
// result against previously processed listings.
func (s *BoltDB) GetSeenListingIDs() (map[string]struct{}, error) {
	res := make(map[string]struct{})

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(listingsBucket))
		return b.ForEach(func(k, _ []byte) error {
			res[string(k)] = struct{}{}
			return nil
		})
	})

	return res, err
}

func (s *BoltDB) PutSeenListing(l SeenListing) error {
	if l.ID == "" {
		return errors.New("seen listing id is empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(listingsBucket))

		if l.FirstSeenAt.IsZero() {
			l.FirstSeenAt = s.now()
		}

		data, err := json.Marshal(&l)
		if err != nil {
			return fmt.Errorf("marshal seen listing id=%s: %w", l.ID, err)
		}
		if err := b.Put([]byte(l.ID), data); err != nil {
			return fmt.Errorf("put seen listing id=%s: %w", l.ID, err)
		}

		return nil
	})
}
