// Package activity merges the ticket event log, the system event log and
// ticket comments into one chronologically ordered, human-readable feed.
package activity

import (
	"sort"
	"time"
)

// Record is one rendered entry of the activity feed. All three sources
// (ticket events, system events, comments) reduce to this shape so the merge
// and sort logic exists exactly once.
type Record struct {
	// Title is the related ticket's number, or "System" for events with no
	// ticket.
	Title string
	// Message is the rendered sentence, first person when the viewer is the
	// actor.
	Message string
	// TimeLabel is the relative-time rendering of Timestamp.
	TimeLabel string
	// Tag is the stable event-kind identifier clients key icons on.
	Tag string

	Timestamp time.Time
	// SourceID is the originating row's id, used only to break timestamp
	// ties deterministically.
	SourceID uint
}

// SystemTitle is the feed title for events not tied to a ticket.
const SystemTitle = "System"

// SortRecords orders a merged feed most recent first. Equal timestamps fall
// back to source id descending so the order is deterministic across runs.
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Timestamp.Equal(records[j].Timestamp) {
			return records[i].Timestamp.After(records[j].Timestamp)
		}
		return records[i].SourceID > records[j].SourceID
	})
}
