package service_test

import (
	"log/slog"
	"testing"

	"github.com/Roma7-7-7/telegram"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vholovko/kamer-notifier/internal/dal"
	"github.com/vholovko/kamer-notifier/internal/dal/testutil"
	"github.com/vholovko/kamer-notifier/internal/service"
	"github.com/vholovko/kamer-notifier/internal/service/mocks"
)

func TestNotifications_NotifyNewListing(t *testing.T) {
	listing := testutil.NewListing("100").WithPrice("512.34").Build()
	msg := service.RenderNewListing(listing)

	type fields struct {
		subscriptions func(*gomock.Controller) service.SubscriptionsStore
		telegram      func(*gomock.Controller) service.TelegramClient
		staticChatIDs []int64
	}
	tests := []struct {
		name          string
		fields        fields
		wantDelivered int
		wantTotal     int
		wantErr       assert.ErrorAssertionFunc
	}{
		{
			name: "one_recipient_failing_does_not_block_the_rest",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) service.SubscriptionsStore {
					res := mocks.NewMockSubscriptionsStore(ctrl)
					res.EXPECT().GetAllSubscriptions().Return([]dal.Subscription{
						testutil.NewSubscription(1).Build(),
						testutil.NewSubscription(2).Build(),
					}, nil)
					return res
				},
				telegram: func(ctrl *gomock.Controller) service.TelegramClient {
					res := mocks.NewMockTelegramClient(ctrl)
					res.EXPECT().SendMessage(gomock.Any(), "1", msg).Return(assert.AnError)
					res.EXPECT().SendMessage(gomock.Any(), "2", msg).Return(nil)
					return res
				},
			},
			wantDelivered: 1,
			wantTotal:     2,
			wantErr:       assert.NoError,
		},
		{
			name: "forbidden_purges_subscriber",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) service.SubscriptionsStore {
					res := mocks.NewMockSubscriptionsStore(ctrl)
					res.EXPECT().GetAllSubscriptions().Return([]dal.Subscription{
						testutil.NewSubscription(5).Build(),
					}, nil)
					res.EXPECT().PurgeSubscription(int64(5)).Return(nil)
					return res
				},
				telegram: func(ctrl *gomock.Controller) service.TelegramClient {
					res := mocks.NewMockTelegramClient(ctrl)
					res.EXPECT().SendMessage(gomock.Any(), "7", msg).Return(nil)
					res.EXPECT().SendMessage(gomock.Any(), "5", msg).Return(telegram.ErrForbidden)
					return res
				},
				staticChatIDs: []int64{7},
			},
			wantDelivered: 1,
			wantTotal:     2,
			wantErr:       assert.NoError,
		},
		{
			name: "forbidden_static_recipient_is_never_purged",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) service.SubscriptionsStore {
					res := mocks.NewMockSubscriptionsStore(ctrl)
					res.EXPECT().GetAllSubscriptions().Return(nil, nil)
					return res
				},
				telegram: func(ctrl *gomock.Controller) service.TelegramClient {
					res := mocks.NewMockTelegramClient(ctrl)
					res.EXPECT().SendMessage(gomock.Any(), "7", msg).Return(telegram.ErrForbidden)
					return res
				},
				staticChatIDs: []int64{7},
			},
			wantDelivered: 0,
			wantTotal:     1,
			wantErr:       assert.NoError,
		},
		{
			name: "static_and_subscriber_chat_ids_are_deduplicated",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) service.SubscriptionsStore {
					res := mocks.NewMockSubscriptionsStore(ctrl)
					res.EXPECT().GetAllSubscriptions().Return([]dal.Subscription{
						testutil.NewSubscription(3).Build(),
					}, nil)
					return res
				},
				telegram: func(ctrl *gomock.Controller) service.TelegramClient {
					res := mocks.NewMockTelegramClient(ctrl)
					res.EXPECT().SendMessage(gomock.Any(), "3", msg).Return(nil)
					return res
				},
				staticChatIDs: []int64{3},
			},
			wantDelivered: 1,
			wantTotal:     1,
			wantErr:       assert.NoError,
		},
		{
			name: "no_recipients",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) service.SubscriptionsStore {
					res := mocks.NewMockSubscriptionsStore(ctrl)
					res.EXPECT().GetAllSubscriptions().Return(nil, nil)
					return res
				},
				telegram: func(ctrl *gomock.Controller) service.TelegramClient {
					return mocks.NewMockTelegramClient(ctrl)
				},
			},
			wantDelivered: 0,
			wantTotal:     0,
			wantErr:       assert.NoError,
		},
		{
			name: "subscriptions_store_failure",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) service.SubscriptionsStore {
					res := mocks.NewMockSubscriptionsStore(ctrl)
					res.EXPECT().GetAllSubscriptions().Return(nil, assert.AnError)
					return res
				},
				telegram: func(ctrl *gomock.Controller) service.TelegramClient {
					return mocks.NewMockTelegramClient(ctrl)
				},
				staticChatIDs: []int64{7},
			},
			wantDelivered: 0,
			wantTotal:     0,
			wantErr:       assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := service.NewNotifications(
				tt.fields.subscriptions(ctrl),
				tt.fields.telegram(ctrl),
				tt.fields.staticChatIDs,
				slog.New(slog.DiscardHandler),
			)
			delivered, total, err := s.NotifyNewListing(t.Context(), listing)
			tt.wantErr(t, err, "NotifyNewListing(_)")
			assert.Equal(t, tt.wantDelivered, delivered)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}
