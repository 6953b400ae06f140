package dal_test

import (
	"time"

	"github.com/vholovko/kamer-notifier/internal/dal"
	"github.com/vholovko/kamer-notifier/internal/dal/testutil"
)

func (s *BoltDBTestSuite) TestBoltDB_Get_Put_SeenListing() {
	id1 := "100"
	id2 := "101"

	for _, id := range []string{id1, id2} {
		seen, ok, err := s.store.GetSeenListing(id)
		s.Require().NoErrorf(err, "GetSeenListing err for id=%s", id)
		if s.Falsef(ok, "SeenListing should not be present for id=%s", id) {
			s.Emptyf(seen, "SeenListing should not be present for id=%s", id)
		}
	}

	firstSeen := time.Now().UTC()
	notified := firstSeen.Add(time.Second)

	l1 := testutil.NewSeenListing(id1).
		WithFirstSeenAt(firstSeen).
		WithNotifiedAt(notified).
		Build()
	l2 := testutil.NewSeenListing(id2).
		WithFirstSeenAt(firstSeen.Add(time.Minute)).
		WithApplied().
		Build()

	s.Require().NoError(s.store.PutSeenListing(l1))
	s.Require().NoError(s.store.PutSeenListing(l2))

	for _, want := range []dal.SeenListing{l1, l2} {
		got, ok, err := s.store.GetSeenListing(want.ID)
		s.Require().NoErrorf(err, "GetSeenListing err for id=%s", want.ID)
		if s.Truef(ok, "SeenListing should be present for id=%s", want.ID) {
			s.Equalf(want.ID, got.ID, "Invalid ID for id=%s", want.ID)
			s.Equalf(want.URL, got.URL, "Invalid URL for id=%s", want.ID)
			s.Equalf(want.Price, got.Price, "Invalid Price for id=%s", want.ID)
			s.Equalf(want.FirstSeenAt.Truncate(time.Second), got.FirstSeenAt.UTC().Truncate(time.Second), "Invalid FirstSeenAt for id=%s", want.ID)
			s.Equalf(want.NotifiedAt.Truncate(time.Second), got.NotifiedAt.UTC().Truncate(time.Second), "Invalid NotifiedAt for id=%s", want.ID)
			s.Equalf(want.Applied, got.Applied, "Invalid Applied for id=%s", want.ID)
		}
	}
}

func (s *BoltDBTestSuite) TestBoltDB_PutSeenListing_DefaultsFirstSeenAt() {
	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	s.now.Set(now)

	seen := testutil.NewSeenListing("200").Build()
	s.Require().Zero(seen.FirstSeenAt)
	s.Require().NoError(s.store.PutSeenListing(seen))

	got, ok, err := s.store.GetSeenListing("200")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(now, got.FirstSeenAt.UTC())
}

func (s *BoltDBTestSuite) TestBoltDB_PutSeenListing_EmptyID() {
	s.Error(s.store.PutSeenListing(dal.SeenListing{}))
}

func (s *BoltDBTestSuite) TestBoltDB_GetSeenListingIDs() {
	ids, err := s.store.GetSeenListingIDs()
	s.Require().NoError(err)
	s.Empty(ids)

	for _, id := range []string{"100", "101", "102"} {
		s.Require().NoError(s.store.PutSeenListing(testutil.NewSeenListing(id).Build()))
	}

	ids, err = s.store.GetSeenListingIDs()
	s.Require().NoError(err)
	s.Equal(map[string]struct{}{
		"100": {},
		"101": {},
		"102": {},
	}, ids)

	count, err := s.store.CountSeenListings()
	s.Require().NoError(err)
	s.Equal(3, count)
}

func (s *BoltDBTestSuite) TestBoltDB_ExistsSeenListing() {
	exists, err := s.store.ExistsSeenListing("100")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.store.PutSeenListing(testutil.NewSeenListing("100").Build()))

	exists, err = s.store.ExistsSeenListing("100")
	s.Require().NoError(err)
	s.True(exists)
}
