package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tc "github.com/Roma7-7-7/telegram"
	"go.etcd.io/bbolt"

	"github.com/vholovko/kamer-notifier/internal/calendar"
	"github.com/vholovko/kamer-notifier/internal/config"
	"github.com/vholovko/kamer-notifier/internal/dal"
	"github.com/vholovko/kamer-notifier/internal/dal/migrations"
	"github.com/vholovko/kamer-notifier/internal/providers"
	"github.com/vholovko/kamer-notifier/internal/service"
	"github.com/vholovko/kamer-notifier/internal/telegram"
	"github.com/vholovko/kamer-notifier/pkg/clock"
)

const (
	portalTimezone       = "Europe/Amsterdam"
	calendarLookbackDays = 7
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.NewConfig(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf)

	db, err := bbolt.Open(conf.DBPath, 0o600, nil)
	if err != nil {
		log.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	if err = migrations.RunMigrations(db, log); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	store, err := dal.NewBoltDB(db)
	if err != nil {
		log.Error("Failed to init database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	clk := clock.New()
	provider := providers.NewKlikvoorkamersProvider(conf.ListingsURL, conf.PortalURL, providers.Credentials{
		Username: conf.PortalUsername,
		Password: conf.PortalPassword,
	})
	sender := tc.NewClient(http.DefaultClient, conf.TelegramToken)

	notificationsSvc := service.NewNotifications(store, sender, conf.ChatIDs, log)
	subscriptionsSvc := service.NewSubscriptions(store, clk, log)

	var notifier service.ListingNotifier = notificationsSvc
	var publisher *calendar.Publisher
	if conf.CalendarEnabled() {
		publisher, err = calendarPublisher(ctx, conf, clk, log)
		if err != nil {
			log.Error("Failed to init calendar publisher", "error", err)
			os.Exit(1)
		}
		notifier = &calendarNotifier{inner: notificationsSvc, publisher: publisher, log: log}
	}

	listingsSvc := service.NewListings(store, provider, provider, notifier, clk, conf.NotifyOnFirstRun, log)

	if conf.SeedPath != "" {
		if err = importSeed(ctx, conf.SeedPath, listingsSvc, subscriptionsSvc); err != nil {
			log.Error("Failed to import seed", "error", err)
			os.Exit(1)
		}
	}

	handler := telegram.NewHandler(subscriptionsSvc, log)
	bot, err := telegram.NewBot(conf, handler, log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		refreshListings(ctx, listingsSvc, conf.PollInterval, log.With("component", "schedule").With("action", "refresh"))
	}()
	if publisher != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cleanupCalendar(ctx, publisher, conf.CalendarCleanupInterval, log.With("component", "schedule").With("action", "calendar_cleanup"))
		}()
	}

	log.Info("Starting bot")
	err = bot.Start(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("Failed to start bot", "error", err)
		}
	}

	wg.Wait()
	log.Info("Stopped bot")
}

func refreshListings(ctx context.Context, svc *service.Listings, delay time.Duration, log *slog.Logger) {
	defer func() {
		log.InfoContext(ctx, "Stopped refresh listings schedule")
	}()

	log.InfoContext(ctx, "Starting refresh listings schedule", "interval", delay)
	// first cycle right away so a restart does not wait a full interval
	if err := svc.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.ErrorContext(ctx, "Error refreshing listings", "error", err)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
			err := svc.Refresh(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				if errors.Is(err, context.DeadlineExceeded) {
					log.WarnContext(ctx, "Error refreshing listings", "error", err)
					continue
				}

				log.ErrorContext(ctx, "Error refreshing listings", "error", err)
			}
		}
	}
}

func cleanupCalendar(ctx context.Context, publisher *calendar.Publisher, delay time.Duration, log *slog.Logger) {
	defer func() {
		log.InfoContext(ctx, "Stopped calendar cleanup schedule")
	}()

	log.InfoContext(ctx, "Starting calendar cleanup schedule", "interval", delay)
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
			err := publisher.CleanupStale(ctx, calendarLookbackDays)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}

				log.ErrorContext(ctx, "Error cleaning up calendar", "error", err)
			}
		}
	}
}

func importSeed(ctx context.Context, path string, listings *service.Listings, subscriptions *service.Subscriptions) error {
	seed, err := config.LoadSeed(path)
	if err != nil {
		return err
	}
	if err := listings.ImportSeed(ctx, seed.Listings); err != nil {
		return err
	}
	return subscriptions.ImportSeed(ctx, seed.ChatIDs)
}

func mustLogger(conf *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	if conf.Dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}

func calendarPublisher(ctx context.Context, conf *config.Config, clk *clock.Clock, log *slog.Logger) (*calendar.Publisher, error) {
	client, err := calendar.NewGoogle(ctx, conf.CalendarCredentialsPath)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(portalTimezone)
	if err != nil {
		return nil, err
	}
	return calendar.NewPublisher(client, conf.CalendarID, clk, loc, log), nil
}

// calendarNotifier publishes a calendar event after a successful Telegram
// fan-out. Calendar failures are logged, never propagated.
type calendarNotifier struct {
	inner     service.ListingNotifier
	publisher *calendar.Publisher
	log       *slog.Logger
}

func (n *calendarNotifier) NotifyNewListing(ctx context.Context, l dal.Listing) (int, int, error) {
	delivered, total, err := n.inner.NotifyNewListing(ctx, l)
	if err != nil {
		return delivered, total, err
	}

	if cerr := n.publisher.PublishNewListing(ctx, l); cerr != nil {
		n.log.ErrorContext(ctx, "Failed to publish calendar event", "listingID", l.ID, "error", cerr)
	}
	return delivered, total, err
}
