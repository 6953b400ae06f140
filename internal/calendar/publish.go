package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vholovko/kamer-notifier/internal/dal"
)

// Basil — green in the Google Calendar palette
const colorIDNewListing = "10"

const eventDuration = time.Hour

// Clock provides current time for event placement and cleanup windows.
type Clock interface {
	Now() time.Time
}

// EventsClient is the subset of the Calendar API the publisher needs.
type EventsClient interface {
	ListOurEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]string, error)
	InsertEvent(ctx context.Context, calendarID, summary string, start, end time.Time, params EventParams) (string, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Publisher puts a reminder event on a Google Calendar for every new listing
// so a missed Telegram message still surfaces on the phone.
type Publisher struct {
	client     EventsClient
	calendarID string
	clock      Clock
	loc        *time.Location
	log        *slog.Logger
}

func NewPublisher(client EventsClient, calendarID string, clock Clock, loc *time.Location, log *slog.Logger) *Publisher {
	return &Publisher{
		client:     client,
		calendarID: calendarID,
		clock:      clock,
		loc:        loc,
		log:        log.With("component", "calendar"),
	}
}

// PublishNewListing inserts a one hour reminder event starting now.
func (p *Publisher) PublishNewListing(ctx context.Context, l dal.Listing) error {
	now := p.clock.Now().In(p.loc)
	summary, params := buildListingEvent(l)

	id, err := p.client.InsertEvent(ctx, p.calendarID, summary, now, now.Add(eventDuration), params)
	if err != nil {
		return fmt.Errorf("publish listing event: %w", err)
	}

	p.log.InfoContext(ctx, "published calendar event", "listingID", l.ID, "eventID", id)
	return nil
}

// CleanupStale deletes our events in the past lookbackDays (not including today).
// Window: [today - lookbackDays at 00:00, yesterday at 23:59:59]. Run periodically.
func (p *Publisher) CleanupStale(ctx context.Context, lookbackDays int) error {
	now := p.clock.Now().In(p.loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, p.loc)
	yesterdayEnd := todayStart.Add(-time.Second)
	timeMin := todayStart.AddDate(0, 0, -lookbackDays)

	p.log.InfoContext(ctx, "starting calendar stale cleanup", "timeMin", timeMin.Format(time.RFC3339), "timeMax", yesterdayEnd.Format(time.RFC3339))

	ids, err := p.client.ListOurEvents(ctx, p.calendarID, timeMin, yesterdayEnd)
	if err != nil {
		return fmt.Errorf("calendar cleanup failed: list: %w", err)
	}
	for _, id := range ids {
		if err := p.client.DeleteEvent(ctx, p.calendarID, id); err != nil {
			return fmt.Errorf("calendar cleanup failed: delete %s: %w", id, err)
		}
	}
	p.log.InfoContext(ctx, "calendar stale cleanup completed", "deleted", len(ids))
	return nil
}

func buildListingEvent(l dal.Listing) (string, EventParams) {
	summary := "React to listing " + l.ID
	desc := l.URL
	if l.Price != "" {
		desc += "\nPrice: " + l.Price
	}
	return summary, EventParams{
		ColorID:     colorIDNewListing,
		Description: desc,
	}
}
