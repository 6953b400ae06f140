package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Roma7-7-7/telegram"

	"github.com/vholovko/kamer-notifier/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/notifications.go . SubscriptionsStore,TelegramClient

type TelegramClient interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

type SubscriptionsStore interface {
	ExistsSubscription(chatID int64) (bool, error)
	GetAllSubscriptions() ([]dal.Subscription, error)
	GetSubscription(chatID int64) (dal.Subscription, bool, error)
	PutSubscription(sub dal.Subscription) error
	PurgeSubscription(chatID int64) error
}

type recipient struct {
	chatID int64
	// static recipients come from configuration and are never purged
	static bool
}

// Notifications fans one message per new listing out to every recipient.
// A failed send to one recipient never prevents attempts to the rest.
type Notifications struct {
	subscriptions SubscriptionsStore
	staticChatIDs []int64
	telegram      TelegramClient

	log *slog.Logger
}

func NewNotifications(subscriptions SubscriptionsStore, telegram TelegramClient, staticChatIDs []int64, log *slog.Logger) *Notifications {
	return &Notifications{
		subscriptions: subscriptions,
		staticChatIDs: staticChatIDs,
		telegram:      telegram,

		log: log.With("component", "service").With("service", "notifications"),
	}
}

// NotifyNewListing sends the listing to all recipients and reports how many
// deliveries succeeded out of how many were attempted.
func (s *Notifications) NotifyNewListing(ctx context.Context, l dal.Listing) (int, int, error) {
	recipients, err := s.recipients()
	if err != nil {
		return 0, 0, fmt.Errorf("collect recipients: %w", err)
	}
	if len(recipients) == 0 {
		s.log.WarnContext(ctx, "no recipients configured", "listingID", l.ID)
		return 0, 0, nil
	}

	msg := RenderNewListing(l)
	delivered := 0
	for _, r := range recipients {
		if s.send(ctx, r, l.ID, msg) {
			delivered++
		}
	}

	return delivered, len(recipients), nil
}

func (s *Notifications) send(ctx context.Context, r recipient, listingID, msg string) bool {
	log := s.log.With("chatID", r.chatID, "listingID", listingID)

	err := s.telegram.SendMessage(ctx, strconv.FormatInt(r.chatID, 10), msg)
	if err == nil {
		log.InfoContext(ctx, "notification sent")
		return true
	}

	if !errors.Is(err, telegram.ErrForbidden) || r.static {
		log.ErrorContext(ctx, "failed to send notification", "error", err)
		return false
	}

	log.InfoContext(ctx, "bot is blocked by user, purging subscription", "error", err)
	if err := s.subscriptions.PurgeSubscription(r.chatID); err != nil {
		log.ErrorContext(ctx, "failed to purge subscription", "error", err)
	}
	return false
}

// recipients is the union of config-listed chat ids and bot subscribers,
// statics first, deduplicated.
func (s *Notifications) recipients() ([]recipient, error) {
	subs, err := s.subscriptions.GetAllSubscriptions()
	if err != nil {
		return nil, fmt.Errorf("get all subscriptions: %w", err)
	}

	seen := make(map[int64]struct{}, len(s.staticChatIDs)+len(subs))
	res := make([]recipient, 0, len(s.staticChatIDs)+len(subs))

	for _, chatID := range s.staticChatIDs {
		if _, ok := seen[chatID]; ok {
			continue
		}
		seen[chatID] = struct{}{}
		res = append(res, recipient{chatID: chatID, static: true})
	}
	for _, sub := range subs {
		if _, ok := seen[sub.ChatID]; ok {
			continue
		}
		seen[sub.ChatID] = struct{}{}
		res = append(res, recipient{chatID: sub.ChatID})
	}

	return res, nil
}
