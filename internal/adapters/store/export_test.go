package store

import "time"

// NewLogStoreAt returns a LogStore whose clock is fixed by now.
func NewLogStoreAt(now func() time.Time) *LogStore {
	return &LogStore{now: now}
}
