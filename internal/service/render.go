package service

import (
	"fmt"

	"github.com/vholovko/kamer-notifier/internal/dal"
)

// RenderNewListing formats the notification text for one new listing.
func RenderNewListing(l dal.Listing) string {
	price := l.Price
	if price == "" {
		price = "unknown"
	}
	return fmt.Sprintf("New listing available at %s\nID: %s\nPrice: %s", l.URL, l.ID, price)
}
