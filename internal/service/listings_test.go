package service_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vholovko/kamer-notifier/internal/dal"
	"github.com/vholovko/kamer-notifier/internal/dal/testutil"
	"github.com/vholovko/kamer-notifier/internal/providers"
	"github.com/vholovko/kamer-notifier/internal/service"
	"github.com/vholovko/kamer-notifier/internal/service/mocks"
	"github.com/vholovko/kamer-notifier/pkg/clock"
)

func TestSelectNew(t *testing.T) {
	l100 := testutil.NewListing("100").Build()
	l101 := testutil.NewListing("101").Build()
	l102 := testutil.NewListing("102").Build()
	l103 := testutil.NewListing("103").WithAltID("room-103-key").Build()

	tests := []struct {
		name    string
		current []dal.Listing
		known   map[string]struct{}
		want    []dal.Listing
	}{
		{
			name:    "all_new",
			current: []dal.Listing{l100, l101},
			known:   map[string]struct{}{},
			want:    []dal.Listing{l100, l101},
		},
		{
			name:    "all_known",
			current: []dal.Listing{l100, l101},
			known:   map[string]struct{}{"100": {}, "101": {}},
			want:    []dal.Listing{},
		},
		{
			name:    "mixed_preserves_order",
			current: []dal.Listing{l100, l101, l102},
			known:   map[string]struct{}{"101": {}},
			want:    []dal.Listing{l100, l102},
		},
		{
			name:    "empty_current",
			current: []dal.Listing{},
			known:   map[string]struct{}{"100": {}},
			want:    []dal.Listing{},
		},
		{
			name:    "nil_known",
			current: []dal.Listing{l100},
			known:   nil,
			want:    []dal.Listing{l100},
		},
		{
			name:    "known_not_in_current_is_ignored",
			current: []dal.Listing{l100},
			known:   map[string]struct{}{"999": {}},
			want:    []dal.Listing{l100},
		},
		{
			name:    "known_by_alternate_id",
			current: []dal.Listing{l103},
			known:   map[string]struct{}{"room-103-key": {}},
			want:    []dal.Listing{},
		},
		{
			name:    "unknown_alternate_id_stays_new",
			current: []dal.Listing{l103},
			known:   map[string]struct{}{"999": {}},
			want:    []dal.Listing{l103},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.SelectNew(tt.current, tt.known)
			assert.Equal(t, tt.want, got)

			for _, l := range got {
				assert.NotContains(t, tt.known, l.ID)
			}
			// selecting again against the same known set changes nothing
			assert.Equal(t, got, service.SelectNew(got, tt.known))
		})
	}
}

func TestListings_Refresh(t *testing.T) {
	now := time.Date(2025, time.November, 20, 12, 0, 0, 0, time.UTC)

	l100 := testutil.NewListing("100").Build()
	l101 := testutil.NewListing("101").WithPrice("612.50").Build()

	known100 := map[string]struct{}{"100": {}}

	noApplier := func(ctrl *gomock.Controller) service.Applier {
		res := mocks.NewMockApplier(ctrl)
		res.EXPECT().CanApply().Return(false).AnyTimes()
		return res
	}

	type fields struct {
		store            func(*gomock.Controller) service.ListingsStore
		provider         func(*gomock.Controller) service.ListingsProvider
		applier          func(*gomock.Controller) service.Applier
		notifier         func(*gomock.Controller) service.ListingNotifier
		notifyOnFirstRun bool
	}
	tests := []struct {
		name    string
		fields  fields
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "success_new_listing_notified_and_persisted",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					res := mocks.NewMockListingsStore(ctrl)
					res.EXPECT().GetSeenListingIDs().Return(known100, nil)
					seen := testutil.FromListing(l101).WithFirstSeenAt(now).WithNotifiedAt(now).Build()
					res.EXPECT().PutSeenListing(seen).Return(nil)
					return res
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return([]dal.Listing{l100, l101}, nil)
					return res
				},
				applier: noApplier,
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					res := mocks.NewMockListingNotifier(ctrl)
					res.EXPECT().NotifyNewListing(gomock.Any(), l101).Return(2, 2, nil)
					return res
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "listing_with_url_key_persisted_under_both_ids",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					res := mocks.NewMockListingsStore(ctrl)
					res.EXPECT().GetSeenListingIDs().Return(known100, nil)
					l := testutil.NewListing("101").WithAltID("room-101-key").Build()
					seen := testutil.FromListing(l).WithFirstSeenAt(now).WithNotifiedAt(now).Build()
					res.EXPECT().PutSeenListing(seen).Return(nil)
					res.EXPECT().PutSeenListing(testutil.FromListing(l).WithID("room-101-key").WithFirstSeenAt(now).WithNotifiedAt(now).Build()).Return(nil)
					return res
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return([]dal.Listing{testutil.NewListing("101").WithAltID("room-101-key").Build()}, nil)
					return res
				},
				applier: noApplier,
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					res := mocks.NewMockListingNotifier(ctrl)
					res.EXPECT().NotifyNewListing(gomock.Any(), testutil.NewListing("101").WithAltID("room-101-key").Build()).Return(1, 1, nil)
					return res
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "listing_known_by_url_key_is_not_renotified",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					res := mocks.NewMockListingsStore(ctrl)
					res.EXPECT().GetSeenListingIDs().Return(map[string]struct{}{"room-101-key": {}}, nil)
					return res
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return([]dal.Listing{testutil.NewListing("101").WithAltID("room-101-key").Build()}, nil)
					return res
				},
				applier: noApplier,
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					return mocks.NewMockListingNotifier(ctrl)
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "no_new_listings",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					res := mocks.NewMockListingsStore(ctrl)
					res.EXPECT().GetSeenListingIDs().Return(known100, nil)
					return res
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return([]dal.Listing{l100}, nil)
					return res
				},
				applier: noApplier,
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					return mocks.NewMockListingNotifier(ctrl)
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "fetch_failure_leaves_store_untouched",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					return mocks.NewMockListingsStore(ctrl)
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return(nil, assert.AnError)
					return res
				},
				applier: noApplier,
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					return mocks.NewMockListingNotifier(ctrl)
				},
			},
			wantErr: assert.Error,
		},
		{
			name: "first_run_establishes_baseline_without_notifying",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					res := mocks.NewMockListingsStore(ctrl)
					res.EXPECT().GetSeenListingIDs().Return(map[string]struct{}{}, nil)
					res.EXPECT().PutSeenListing(testutil.FromListing(l100).WithFirstSeenAt(now).Build()).Return(nil)
					res.EXPECT().PutSeenListing(testutil.FromListing(l101).WithFirstSeenAt(now).Build()).Return(nil)
					return res
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return([]dal.Listing{l100, l101}, nil)
					return res
				},
				applier: noApplier,
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					return mocks.NewMockListingNotifier(ctrl)
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "first_run_notifies_when_enabled",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					res := mocks.NewMockListingsStore(ctrl)
					res.EXPECT().GetSeenListingIDs().Return(map[string]struct{}{}, nil)
					res.EXPECT().PutSeenListing(testutil.FromListing(l100).WithFirstSeenAt(now).WithNotifiedAt(now).Build()).Return(nil)
					res.EXPECT().PutSeenListing(testutil.FromListing(l101).WithFirstSeenAt(now).WithNotifiedAt(now).Build()).Return(nil)
					return res
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return([]dal.Listing{l100, l101}, nil)
					return res
				},
				applier: noApplier,
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					res := mocks.NewMockListingNotifier(ctrl)
					res.EXPECT().NotifyNewListing(gomock.Any(), l100).Return(1, 1, nil)
					res.EXPECT().NotifyNewListing(gomock.Any(), l101).Return(1, 1, nil)
					return res
				},
				notifyOnFirstRun: true,
			},
			wantErr: assert.NoError,
		},
		{
			name: "all_sends_failed_skips_persist",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					res := mocks.NewMockListingsStore(ctrl)
					res.EXPECT().GetSeenListingIDs().Return(known100, nil)
					return res
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return([]dal.Listing{l101}, nil)
					return res
				},
				applier: noApplier,
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					res := mocks.NewMockListingNotifier(ctrl)
					res.EXPECT().NotifyNewListing(gomock.Any(), l101).Return(0, 2, nil)
					return res
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "notifier_failure_skips_persist",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					res := mocks.NewMockListingsStore(ctrl)
					res.EXPECT().GetSeenListingIDs().Return(known100, nil)
					return res
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return([]dal.Listing{l101}, nil)
					return res
				},
				applier: noApplier,
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					res := mocks.NewMockListingNotifier(ctrl)
					res.EXPECT().NotifyNewListing(gomock.Any(), l101).Return(0, 0, assert.AnError)
					return res
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "persist_failure_is_not_fatal",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					res := mocks.NewMockListingsStore(ctrl)
					res.EXPECT().GetSeenListingIDs().Return(known100, nil)
					seen := testutil.FromListing(l101).WithFirstSeenAt(now).WithNotifiedAt(now).Build()
					res.EXPECT().PutSeenListing(seen).Return(assert.AnError)
					return res
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return([]dal.Listing{l101}, nil)
					return res
				},
				applier: noApplier,
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					res := mocks.NewMockListingNotifier(ctrl)
					res.EXPECT().NotifyNewListing(gomock.Any(), l101).Return(1, 1, nil)
					return res
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "auto_apply_marks_listing_applied",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					res := mocks.NewMockListingsStore(ctrl)
					res.EXPECT().GetSeenListingIDs().Return(known100, nil)
					seen := testutil.FromListing(l101).WithFirstSeenAt(now).WithNotifiedAt(now).WithApplied().Build()
					res.EXPECT().PutSeenListing(seen).Return(nil)
					return res
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return([]dal.Listing{l101}, nil)
					return res
				},
				applier: func(ctrl *gomock.Controller) service.Applier {
					res := mocks.NewMockApplier(ctrl)
					res.EXPECT().CanApply().Return(true)
					res.EXPECT().Login(gomock.Any()).Return(nil)
					res.EXPECT().Apply(gomock.Any(), "101").Return(nil)
					return res
				},
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					res := mocks.NewMockListingNotifier(ctrl)
					res.EXPECT().NotifyNewListing(gomock.Any(), l101).Return(1, 1, nil)
					return res
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "already_applied_counts_as_applied",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					res := mocks.NewMockListingsStore(ctrl)
					res.EXPECT().GetSeenListingIDs().Return(known100, nil)
					seen := testutil.FromListing(l101).WithFirstSeenAt(now).WithNotifiedAt(now).WithApplied().Build()
					res.EXPECT().PutSeenListing(seen).Return(nil)
					return res
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return([]dal.Listing{l101}, nil)
					return res
				},
				applier: func(ctrl *gomock.Controller) service.Applier {
					res := mocks.NewMockApplier(ctrl)
					res.EXPECT().CanApply().Return(true)
					res.EXPECT().Login(gomock.Any()).Return(nil)
					res.EXPECT().Apply(gomock.Any(), "101").Return(providers.ErrAlreadyApplied)
					return res
				},
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					res := mocks.NewMockListingNotifier(ctrl)
					res.EXPECT().NotifyNewListing(gomock.Any(), l101).Return(1, 1, nil)
					return res
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "login_failure_disables_apply_for_cycle",
			fields: fields{
				store: func(ctrl *gomock.Controller) service.ListingsStore {
					res := mocks.NewMockListingsStore(ctrl)
					res.EXPECT().GetSeenListingIDs().Return(known100, nil)
					seen := testutil.FromListing(l101).WithFirstSeenAt(now).WithNotifiedAt(now).Build()
					res.EXPECT().PutSeenListing(seen).Return(nil)
					return res
				},
				provider: func(ctrl *gomock.Controller) service.ListingsProvider {
					res := mocks.NewMockListingsProvider(ctrl)
					res.EXPECT().Listings(gomock.Any()).Return([]dal.Listing{l101}, nil)
					return res
				},
				applier: func(ctrl *gomock.Controller) service.Applier {
					res := mocks.NewMockApplier(ctrl)
					res.EXPECT().CanApply().Return(true)
					res.EXPECT().Login(gomock.Any()).Return(assert.AnError)
					return res
				},
				notifier: func(ctrl *gomock.Controller) service.ListingNotifier {
					res := mocks.NewMockListingNotifier(ctrl)
					res.EXPECT().NotifyNewListing(gomock.Any(), l101).Return(1, 1, nil)
					return res
				},
			},
			wantErr: assert.NoError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := service.NewListings(
				tt.fields.store(ctrl),
				tt.fields.provider(ctrl),
				tt.fields.applier(ctrl),
				tt.fields.notifier(ctrl),
				clock.NewMock(now),
				tt.fields.notifyOnFirstRun,
				slog.New(slog.DiscardHandler),
			)
			tt.wantErr(t, s.Refresh(t.Context()), "Refresh(_)")
		})
	}
}

func TestListings_ImportSeed(t *testing.T) {
	now := time.Date(2025, time.November, 20, 12, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockListingsStore(ctrl)
	store.EXPECT().ExistsSeenListing("100").Return(false, nil)
	store.EXPECT().PutSeenListing(dal.SeenListing{
		ID:          "100",
		FirstSeenAt: now,
		NotifiedAt:  now,
	}).Return(nil)
	store.EXPECT().ExistsSeenListing("101").Return(true, nil)

	s := service.NewListings(
		store,
		mocks.NewMockListingsProvider(ctrl),
		nil,
		mocks.NewMockListingNotifier(ctrl),
		clock.NewMock(now),
		false,
		slog.New(slog.DiscardHandler),
	)
	assert.NoError(t, s.ImportSeed(t.Context(), []string{"100", "101"}))
}
