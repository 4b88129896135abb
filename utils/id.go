package utils

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastID int64

// NewID derives a record id from the creation instant's millisecond value.
// Calls landing in the same millisecond are bumped forward so ids stay
// unique and monotonic within the process.
func NewID(t time.Time) string {
	ms := t.UnixMilli()
	for {
		last := atomic.LoadInt64(&lastID)
		if ms <= last {
			ms = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastID, last, ms) {
			return strconv.FormatInt(ms, 10)
		}
	}
}
