package dal_test

import (
	"time"

	"github.com/vholovko/kamer-notifier/internal/dal"
	"github.com/vholovko/kamer-notifier/internal/dal/testutil"
)

func (s *BoltDBTestSuite) TestBoltDB_Get_Put_Purge_Subscription() {
	chatID1 := int64(1)
	chatID2 := int64(2)

	for _, chatID := range []int64{chatID1, chatID2} {
		sub, ok, err := s.store.GetSubscription(chatID)
		s.Require().NoErrorf(err, "GetSubscription err for chatID=%d", chatID)
		if s.Falsef(ok, "Subscription should not be present for chatID=%d", chatID) {
			s.Emptyf(sub, "Subscription should not be present for chatID=%d", chatID)
		}
	}

	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutSubscription(testutil.NewSubscription(chatID1).Build()))
	s.Require().NoError(s.store.PutSubscription(testutil.NewSubscription(chatID2).Build()))

	for _, chatID := range []int64{chatID1, chatID2} {
		sub, ok, err := s.store.GetSubscription(chatID)
		s.Require().NoErrorf(err, "GetSubscription err for chatID=%d", chatID)
		if s.Truef(ok, "Subscription should be present for chatID=%d", chatID) {
			s.Equalf(chatID, sub.ChatID, "Invalid ChatID for chatID=%d", chatID)
			s.Equalf(now, sub.CreatedAt.UTC(), "Invalid CreatedAt for chatID=%d", chatID)
		}
	}

	count, err := s.store.CountSubscriptions()
	s.Require().NoError(err)
	s.Equal(2, count)

	all, err := s.store.GetAllSubscriptions()
	s.Require().NoError(err)
	s.Len(all, 2)

	s.Require().NoError(s.store.PurgeSubscription(chatID1))

	exists, err := s.store.ExistsSubscription(chatID1)
	s.Require().NoError(err)
	s.False(exists)

	exists, err = s.store.ExistsSubscription(chatID2)
	s.Require().NoError(err)
	s.True(exists)
}

func (s *BoltDBTestSuite) TestBoltDB_PutSubscription_KeepsCreatedAt() {
	chatID := int64(42)

	created := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	s.now.Set(created)
	s.Require().NoError(s.store.PutSubscription(dal.Subscription{ChatID: chatID}))

	// Later re-subscribe must not reset the original creation time.
	s.now.Set(created.AddDate(0, 1, 0))
	s.Require().NoError(s.store.PutSubscription(dal.Subscription{ChatID: chatID}))

	sub, ok, err := s.store.GetSubscription(chatID)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(created, sub.CreatedAt.UTC())
}

func (s *BoltDBTestSuite) TestBoltDB_PurgeSubscription_Missing() {
	s.NoError(s.store.PurgeSubscription(999))
}
