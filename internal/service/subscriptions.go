package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vholovko/kamer-notifier/internal/dal"
)

type Subscriptions struct {
	store SubscriptionsStore
	clock Clock

	log *slog.Logger
	mx  *sync.Mutex
}

func NewSubscriptions(store SubscriptionsStore, clock Clock, log *slog.Logger) *Subscriptions {
	return &Subscriptions{
		store: store,
		clock: clock,
		log:   log.With("component", "service").With("service", "subscriptions"),
		mx:    &sync.Mutex{},
	}
}

func (s *Subscriptions) IsSubscribed(chatID int64) (bool, error) {
	exists, err := s.store.ExistsSubscription(chatID)
	if err != nil {
		return false, fmt.Errorf("check if subscription exists: %w", err)
	}
	return exists, nil
}

func (s *Subscriptions) Subscribe(chatID int64) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	sub := dal.Subscription{
		ChatID:    chatID,
		CreatedAt: s.clock.Now(),
	}
	if err := s.store.PutSubscription(sub); err != nil {
		return fmt.Errorf("put subscription: %w", err)
	}

	s.log.Info("user subscribed", "chatID", chatID)
	return nil
}

func (s *Subscriptions) Unsubscribe(chatID int64) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	if err := s.store.PurgeSubscription(chatID); err != nil {
		return fmt.Errorf("purge subscription: %w", err)
	}

	s.log.Info("user unsubscribed", "chatID", chatID)
	return nil
}

// ImportSeed registers chat ids carried over from a legacy state file.
func (s *Subscriptions) ImportSeed(ctx context.Context, chatIDs []int64) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	imported := 0
	for _, chatID := range chatIDs {
		exists, err := s.store.ExistsSubscription(chatID)
		if err != nil {
			return fmt.Errorf("check seed subscription chatID=%d: %w", chatID, err)
		}
		if exists {
			continue
		}

		sub := dal.Subscription{
			ChatID:    chatID,
			CreatedAt: s.clock.Now(),
		}
		if err := s.store.PutSubscription(sub); err != nil {
			return fmt.Errorf("persist seed subscription chatID=%d: %w", chatID, err)
		}
		imported++
	}

	if imported > 0 {
		s.log.InfoContext(ctx, "imported seed subscriptions", "imported", imported, "total", len(chatIDs))
	}
	return nil
}
