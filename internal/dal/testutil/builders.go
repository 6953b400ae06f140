package testutil

import (
	"time"

	"github.com/vholovko/kamer-notifier/internal/dal"
)

// ListingBuilder provides fluent API for building test listings
type ListingBuilder struct {
	listing dal.Listing
}

// NewListing creates a new listing builder with defaults
func NewListing(id string) *ListingBuilder {
	return &ListingBuilder{
		listing: dal.Listing{
			ID:    id,
			URL:   "https://www.klikvoorkamers.nl/en/offerings/now-for-rent/rooms/studios/details/room-" + id,
			Price: "500",
		},
	}
}

// WithAltID sets the alternate (detail url key) identifier
func (b *ListingBuilder) WithAltID(altID string) *ListingBuilder {
	b.listing.AltID = altID
	return b
}

// WithURL sets the listing detail URL
func (b *ListingBuilder) WithURL(url string) *ListingBuilder {
	b.listing.URL = url
	return b
}

// WithPrice sets the display price
func (b *ListingBuilder) WithPrice(price string) *ListingBuilder {
	b.listing.Price = price
	return b
}

// Build returns the constructed listing
func (b *ListingBuilder) Build() dal.Listing {
	return b.listing
}

// SeenListingBuilder provides fluent API for building test seen listings
type SeenListingBuilder struct {
	seen dal.SeenListing
}

// NewSeenListing creates a new seen-listing builder with defaults
func NewSeenListing(id string) *SeenListingBuilder {
	l := NewListing(id).Build()
	return &SeenListingBuilder{
		seen: dal.SeenListing{
			ID:    l.ID,
			URL:   l.URL,
			Price: l.Price,
		},
	}
}

// FromListing copies identifier, URL and price from a fetched listing
func FromListing(l dal.Listing) *SeenListingBuilder {
	return &SeenListingBuilder{
		seen: dal.SeenListing{
			ID:    l.ID,
			URL:   l.URL,
			Price: l.Price,
		},
	}
}

// WithID overrides the identifier, e.g. for alias records
func (b *SeenListingBuilder) WithID(id string) *SeenListingBuilder {
	b.seen.ID = id
	return b
}

// WithFirstSeenAt sets the discovery time
func (b *SeenListingBuilder) WithFirstSeenAt(t time.Time) *SeenListingBuilder {
	b.seen.FirstSeenAt = t
	return b
}

// WithNotifiedAt sets the notification time
func (b *SeenListingBuilder) WithNotifiedAt(t time.Time) *SeenListingBuilder {
	b.seen.NotifiedAt = t
	return b
}

// WithApplied marks the listing as auto-applied
func (b *SeenListingBuilder) WithApplied() *SeenListingBuilder {
	b.seen.Applied = true
	return b
}

// Build returns the constructed seen listing
func (b *SeenListingBuilder) Build() dal.SeenListing {
	return b.seen
}

// SubscriptionBuilder provides fluent API for building test subscriptions
type SubscriptionBuilder struct {
	sub dal.Subscription
}

// NewSubscription creates a new subscription builder with defaults
func NewSubscription(chatID int64) *SubscriptionBuilder {
	return &SubscriptionBuilder{
		sub: dal.Subscription{
			ChatID:    chatID,
			CreatedAt: time.Now(),
		},
	}
}

// WithCreatedAt sets the creation time
func (b *SubscriptionBuilder) WithCreatedAt(t time.Time) *SubscriptionBuilder {
	b.sub.CreatedAt = t
	return b
}

// Build returns the constructed subscription
func (b *SubscriptionBuilder) Build() dal.Subscription {
	return b.sub
}
