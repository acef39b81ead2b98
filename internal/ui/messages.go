package ui

import "time"

// refreshDoneMsg reports completion of a portal refresh.
type refreshDoneMsg struct {
	err error
}

// opDoneMsg reports that an optimistic operation settled. The outcome
// notification is already in the store by the time this arrives; the model
// only needs to re-read snapshots and tidy the cursor.
type opDoneMsg struct {
	err error
}

// tickMsg drives periodic re-render so expired notifications disappear on
// time.
type tickMsg time.Time
