package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vholovko/kamer-notifier/internal/dal"
	"github.com/vholovko/kamer-notifier/internal/providers"
)

//go:generate mockgen -package mocks -destination mocks/listings.go . ListingsStore,ListingsProvider,Applier,ListingNotifier

type Clock interface {
	Now() time.Time
}

type ListingsStore interface {
	ExistsSeenListing(id string) (bool, error)
	GetSeenListingIDs() (map[string]struct{}, error)
	PutSeenListing(l dal.SeenListing) error
}

type ListingsProvider interface {
	Listings(ctx context.Context) ([]dal.Listing, error)
}

type Applier interface {
	CanApply() bool
	Login(ctx context.Context) error
	Apply(ctx context.Context, listingID string) error
}

type ListingNotifier interface {
	NotifyNewListing(ctx context.Context, l dal.Listing) (delivered, total int, err error)
}

type Listings struct {
	store    ListingsStore
	provider ListingsProvider
	applier  Applier
	notifier ListingNotifier
	clock    Clock

	notifyOnFirstRun bool
	log              *slog.Logger
	mx               *sync.Mutex
}

func NewListings(
	store ListingsStore,
	provider ListingsProvider,
	applier Applier,
	notifier ListingNotifier,
	clock Clock,
	notifyOnFirstRun bool,
	log *slog.Logger,
) *Listings {
	return &Listings{
		store:    store,
		provider: provider,
		applier:  applier,
		notifier: notifier,
		clock:    clock,

		notifyOnFirstRun: notifyOnFirstRun,
		log:              log.With("component", "service").With("service", "listings"),
		mx:               &sync.Mutex{},
	}
}

// SelectNew returns the listings none of whose identifiers is present in
// known, preserving the fetch order. Pure function.
func SelectNew(current []dal.Listing, known map[string]struct{}) []dal.Listing {
	res := make([]dal.Listing, 0, len(current))
	for _, l := range current {
		if _, ok := known[l.ID]; ok {
			continue
		}
		if _, ok := known[l.AltID]; ok && l.AltID != "" {
			continue
		}
		res = append(res, l)
	}
	return res
}

// Refresh runs one full cycle: fetch, diff, notify, persist. Each processed
// listing is persisted right after its fan-out so a crash mid-cycle
// re-notifies at most one listing.
func (s *Listings) Refresh(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.log.InfoContext(ctx, "refreshing listings")

	ctx, cancelFunc := context.WithTimeout(ctx, time.Minute)
	defer cancelFunc()

	current, err := s.provider.Listings(ctx)
	if err != nil {
		return fmt.Errorf("fetch listings: %w", err)
	}

	known, err := s.store.GetSeenListingIDs()
	if err != nil {
		return fmt.Errorf("get seen listing ids: %w", err)
	}

	fresh := SelectNew(current, known)
	if len(fresh) == 0 {
		s.log.DebugContext(ctx, "no new listings", "current", len(current))
		return nil
	}

	if len(known) == 0 && !s.notifyOnFirstRun {
		return s.baseline(ctx, current)
	}

	now := s.clock.Now()
	canApply := s.applier != nil && s.applier.CanApply()
	if canApply {
		if err := s.applier.Login(ctx); err != nil {
			s.log.ErrorContext(ctx, "portal login failed, skipping auto-apply this cycle", "error", err)
			canApply = false
		}
	}

	for _, l := range fresh {
		s.processNewListing(ctx, l, now, canApply)
	}

	return nil
}

// baseline persists every current listing without notifying. Used on the
// very first run against an empty store so a fresh deployment does not flood
// recipients with every advertisement currently online.
func (s *Listings) baseline(ctx context.Context, current []dal.Listing) error {
	now := s.clock.Now()
	for _, l := range current {
		seen := dal.SeenListing{
			ID:          l.ID,
			URL:         l.URL,
			Price:       l.Price,
			FirstSeenAt: now,
		}
		if err := s.persistSeen(l, seen); err != nil {
			return fmt.Errorf("persist baseline listing id=%s: %w", l.ID, err)
		}
	}

	s.log.InfoContext(ctx, "established baseline without notifying", "count", len(current))
	return nil
}

func (s *Listings) processNewListing(ctx context.Context, l dal.Listing, now time.Time, canApply bool) {
	log := s.log.With("listingID", l.ID)
	log.InfoContext(ctx, "new listing found", "url", l.URL, "price", l.Price)

	applied := false
	if canApply {
		switch err := s.applier.Apply(ctx, l.ID); {
		case err == nil:
			applied = true
			log.InfoContext(ctx, "applied to listing")
		case errors.Is(err, providers.ErrAlreadyApplied):
			applied = true
			log.DebugContext(ctx, "already applied to listing")
		default:
			log.ErrorContext(ctx, "failed to apply to listing", "error", err)
		}
	}

	delivered, total, err := s.notifier.NotifyNewListing(ctx, l)
	if err != nil {
		log.ErrorContext(ctx, "failed to notify about listing, will retry next cycle", "error", err)
		return
	}
	if total > 0 && delivered == 0 {
		log.ErrorContext(ctx, "no recipient received the notification, will retry next cycle", "recipients", total)
		return
	}

	seen := dal.SeenListing{
		ID:          l.ID,
		URL:         l.URL,
		Price:       l.Price,
		FirstSeenAt: now,
		NotifiedAt:  now,
		Applied:     applied,
	}
	if err := s.persistSeen(l, seen); err != nil {
		// Duplicate notifications are possible until the next successful put.
		log.ErrorContext(ctx, "FAILED TO PERSIST NOTIFIED LISTING, duplicates possible", "error", err)
	}
}

// persistSeen stores the listing under every identifier it is known by. The
// HTML fallback only sees url keys while the JSON frontend reports numeric
// ids, so recording both keeps a listing recognized no matter which path
// discovers it first.
func (s *Listings) persistSeen(l dal.Listing, seen dal.SeenListing) error {
	if err := s.store.PutSeenListing(seen); err != nil {
		return err
	}
	if l.AltID == "" || l.AltID == l.ID {
		return nil
	}

	alias := seen
	alias.ID = l.AltID
	if err := s.store.PutSeenListing(alias); err != nil {
		return fmt.Errorf("persist alias id=%s: %w", l.AltID, err)
	}
	return nil
}

// ImportSeed merges previously known identifiers (e.g. from a legacy state
// file) into the store. Seeded identifiers count as already notified.
func (s *Listings) ImportSeed(ctx context.Context, ids []string) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	now := s.clock.Now()
	imported := 0
	for _, id := range ids {
		exists, err := s.store.ExistsSeenListing(id)
		if err != nil {
			return fmt.Errorf("check seed listing id=%s: %w", id, err)
		}
		if exists {
			continue
		}

		seen := dal.SeenListing{
			ID:          id,
			FirstSeenAt: now,
			NotifiedAt:  now,
		}
		if err := s.store.PutSeenListing(seen); err != nil {
			return fmt.Errorf("persist seed listing id=%s: %w", id, err)
		}
		imported++
	}

	if imported > 0 {
		s.log.InfoContext(ctx, "imported seed listing ids", "imported", imported, "total", len(ids))
	}
	return nil
}
