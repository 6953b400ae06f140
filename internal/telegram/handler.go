package telegram

import (
	"log/slog"

	tb "gopkg.in/telebot.v3"
)

//go:generate mockgen -package mocks -destination mocks/subscriptions.go . Subscriptions

const (
	msgWelcome          = "Hi! Want to get an alert as soon as a new room is listed?"
	msgSubscribedHello  = "Hi! You are subscribed to new listing alerts."
	msgSubscribed       = "Done. You will get an alert for every new listing."
	msgUnsubscribed     = "You are unsubscribed."
	msgStatusOn         = "Alerts are on."
	msgStatusOff        = "Alerts are off. Use /subscribe to turn them on."
	msgErrorGeneric     = "Something went wrong. Please try again later."
	msgErrorSubscribe   = "Could not subscribe. Please try again later."
	msgErrorUnsubscribe = "Could not unsubscribe. Please try again later."
)

type Subscriptions interface {
	IsSubscribed(chatID int64) (bool, error)
	Subscribe(chatID int64) error
	Unsubscribe(chatID int64) error
}

type Handler struct {
	subscriptions Subscriptions

	markups *markups

	log *slog.Logger
}

func NewHandler(subscriptions Subscriptions, log *slog.Logger) *Handler {
	return &Handler{
		subscriptions: subscriptions,
		markups:       newMarkups(),
		log:           log,
	}
}

func (h *Handler) Start(c tb.Context) error {
	chatID := c.Sender().ID

	subscribed, err := h.subscriptions.IsSubscribed(chatID)
	if err != nil {
		h.log.Error("failed to check if user is subscribed",
			"error", err,
			"chatID", chatID)
		return h.sendOrDelete(c, msgErrorGeneric, nil)
	}

	h.log.Debug("start handler called",
		"chatID", chatID,
		"subscribed", subscribed)

	if subscribed {
		return h.sendOrDelete(c, msgSubscribedHello, h.markups.main.subscribed.ReplyMarkup)
	}
	return h.sendOrDelete(c, msgWelcome, h.markups.main.unsubscribed.ReplyMarkup)
}

func (h *Handler) Subscribe(c tb.Context) error {
	chatID := c.Sender().ID

	if err := h.subscriptions.Subscribe(chatID); err != nil {
		h.log.Error("failed to subscribe",
			"error", err,
			"chatID", chatID)
		return h.sendOrDelete(c, msgErrorSubscribe, nil)
	}

	h.log.Info("user subscribed", "chatID", chatID)
	return h.sendOrDelete(c, msgSubscribed, h.markups.main.subscribed.ReplyMarkup)
}

func (h *Handler) Unsubscribe(c tb.Context) error {
	chatID := c.Sender().ID

	if err := h.subscriptions.Unsubscribe(chatID); err != nil {
		h.log.Error("failed to unsubscribe",
			"error", err,
			"chatID", chatID)
		return h.sendOrDelete(c, msgErrorUnsubscribe, h.markups.main.subscribed.ReplyMarkup)
	}

	h.log.Info("user unsubscribed", "chatID", chatID)
	return h.sendOrDelete(c, msgUnsubscribed, h.markups.main.unsubscribed.ReplyMarkup)
}

func (h *Handler) Status(c tb.Context) error {
	chatID := c.Sender().ID

	subscribed, err := h.subscriptions.IsSubscribed(chatID)
	if err != nil {
		h.log.Error("failed to check if user is subscribed",
			"error", err,
			"chatID", chatID)
		return h.sendOrDelete(c, msgErrorGeneric, nil)
	}

	if subscribed {
		return h.sendOrDelete(c, msgStatusOn, h.markups.main.subscribed.ReplyMarkup)
	}
	return h.sendOrDelete(c, msgStatusOff, h.markups.main.unsubscribed.ReplyMarkup)
}

func (h *Handler) Callback(c tb.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.log.Debug("callback router called with nil callback")
		return nil
	}

	chatID := c.Sender().ID
	h.log.Debug("callback received",
		"chatID", chatID,
		"data", callback.Data,
		"unique", callback.Unique)

	// Respond to callback first to remove loading state
	if err := c.Respond(); err != nil {
		h.log.Warn("failed to respond to callback", "error", err, "chatID", chatID)
	}

	data := callback.Data
	if len(data) > 0 && data[0] == '\f' {
		data = data[1:]
	}

	switch data {
	case "subscribe":
		return h.Subscribe(c)
	case "unsubscribe":
		return h.Unsubscribe(c)
	case "back":
		return h.Start(c)
	default:
		h.log.Debug("no handler matched for callback", "data", data)
		return nil
	}
}

// sendOrDelete deletes the previous message for callbacks and sends a new one
func (h *Handler) sendOrDelete(c tb.Context, text string, markup *tb.ReplyMarkup) error {
	if c.Callback() != nil {
		// Delete the old message to keep chat clean
		if err := c.Delete(); err != nil {
			h.log.Warn("failed to delete message",
				"error", err,
				"chatID", c.Sender().ID)
		}
	}

	if markup == nil {
		return c.Send(text)
	}
	return c.Send(text, markup)
}

type (
	// subscribedMarkup contains the markup for subscribed users
	subscribedMarkup struct {
		*tb.ReplyMarkup
		unsubscribe tb.Btn
	}

	// unsubscribedMarkup contains the markup for unsubscribed users
	unsubscribedMarkup struct {
		*tb.ReplyMarkup
		subscribe tb.Btn
	}

	// mainMarkups holds both subscribed and unsubscribed markups
	mainMarkups struct {
		subscribed   subscribedMarkup
		unsubscribed unsubscribedMarkup
	}

	markups struct {
		main mainMarkups
	}
)

func newMarkups() *markups {
	mainSubscribed := &tb.ReplyMarkup{}
	unsubscribeBtn := mainSubscribed.Data("Unsubscribe", "unsubscribe")
	mainSubscribed.Inline(mainSubscribed.Row(unsubscribeBtn))

	mainUnsubscribed := &tb.ReplyMarkup{}
	subscribeBtn := mainUnsubscribed.Data("Subscribe to new listings", "subscribe")
	mainUnsubscribed.Inline(mainUnsubscribed.Row(subscribeBtn))

	return &markups{
		main: mainMarkups{
			subscribed: subscribedMarkup{
				ReplyMarkup: mainSubscribed,
				unsubscribe: unsubscribeBtn,
			},
			unsubscribed: unsubscribedMarkup{
				ReplyMarkup: mainUnsubscribed,
				subscribe:   subscribeBtn,
			},
		},
	}
}
