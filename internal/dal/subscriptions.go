package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const subscriptionsBucket = "subscriptions"

// Subscription is a Telegram chat that receives new-listing notifications.
type Subscription struct {
	ChatID    int64     `json:"chat_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *BoltDB) CountSubscriptions() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscriptionsBucket))
		res = b.Stats().KeyN
		return nil
	})
	return res, err
}

func (s *BoltDB) ExistsSubscription(chatID int64) (bool, error) {
	res := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscriptionsBucket))
		if b.Get(i64tob(chatID)) != nil {
			res = true
		}
		return nil
	})

	return res, err
}

func (s *BoltDB) GetSubscription(chatID int64) (Subscription, bool, error) {
	var res Subscription
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(subscriptionsBucket)).Get(i64tob(chatID))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) GetAllSubscriptions() ([]Subscription, error) {
	var res []Subscription

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscriptionsBucket))
		c := b.Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			var sub Subscription
			if err := json.Unmarshal(v, &sub); err != nil {
				return fmt.Errorf("unmarshal subscription: %w", err)
			}
			res = append(res, sub)
		}

		return nil
	})

	return res, err
}

func (s *BoltDB) PutSubscription(sub Subscription) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscriptionsBucket))

		existing, exists, err := s.GetSubscription(sub.ChatID)
		if err != nil {
			return fmt.Errorf("get existing subscription: %w", err)
		}

		if !exists {
			sub.CreatedAt = s.now()
		} else {
			// make sure we do not override created at
			sub.CreatedAt = existing.CreatedAt
		}

		data, err := json.Marshal(&sub)
		if err != nil {
			return fmt.Errorf("marshal subscription for chatID=%d: %w", sub.ChatID, err)
		}
		if err := b.Put(i64tob(sub.ChatID), data); err != nil {
			return fmt.Errorf("put subscription for chatID=%d: %w", sub.ChatID, err)
		}

		return nil
	})
}

func (s *BoltDB) PurgeSubscription(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscriptionsBucket))

		if err := b.Delete(i64tob(chatID)); err != nil {
			return fmt.Errorf("delete subscription for chatID=%d: %w", chatID, err)
		}

		return nil
	})
}
