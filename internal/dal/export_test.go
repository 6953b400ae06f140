package dal

import "time"

// SetNow overrides the store's clock; test-only (compiled into the test
// binary, not the package).
func (s *BoltDB) SetNow(now func() time.Time) {
	s.now = now
}
