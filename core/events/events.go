// Package events defines the simulation events emitted on the event bus.
//
// Available event types:
//   - ProgressEvent: periodic iteration progress of a running simulation
//   - RunCompletedEvent: final summary of a finished simulation run
package events

import "time"

// ProgressEvent is published periodically while iterations complete.
type ProgressEvent struct {
	RunID     string
	Completed int
	Total     int
}

// RunCompletedEvent is published once per finished run.
type RunCompletedEvent struct {
	RunID      string
	Iterations int
	Elapsed    time.Duration
}
