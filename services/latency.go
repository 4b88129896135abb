package services

import "time"

// Latency models the artificial per-operation delay the app ships with
// to stand in for a future network or storage boundary. The async
// contract (callers treat every operation as a round trip) is part of
// the service API; the delay itself is configuration. The zero value
// disables all delays, which is what tests use.
type Latency struct {
	List   time.Duration
	Get    time.Duration
	Create time.Duration
	Update time.Duration
	Delete time.Duration
	Metric time.Duration
}

// DefaultLatency holds the per-operation delays the frontend was built
// against.
func DefaultLatency() Latency {
	return Latency{
		List:   300 * time.Millisecond,
		Get:    200 * time.Millisecond,
		Create: 400 * time.Millisecond,
		Update: 350 * time.Millisecond,
		Delete: 250 * time.Millisecond,
		Metric: 300 * time.Millisecond,
	}
}

// wait blocks for d. Once begun it always runs to completion; there is
// no cancellation path for an in-flight operation.
func wait(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
