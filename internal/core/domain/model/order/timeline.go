package order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ReceivedKey is the timeline entry recording the payment-received moment.
// It is a parallel marker, not a member of the status enumeration: confirming
// payment opens it without touching whatever status interval is active, so
// the payment timeline and the kitchen workflow stay decoupled.
const ReceivedKey = "Received"

// Interval is a half-open time range [Start, End) recording how long an
// order dwelled in one status. End is nil while the interval is active.
type Interval struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end"`
}

// Open reports whether the interval has not been closed yet.
func (iv Interval) Open() bool {
	return iv.End == nil
}

// ComputeDuration returns the elapsed time of an interval split into whole
// minutes and remaining seconds. Open intervals are measured against now.
// The result is clamped to zero when the clock ran backwards (now before
// Start), never negative.
func ComputeDuration(iv Interval, now time.Time) (minutes, seconds int) {
	end := now
	if iv.End != nil {
		end = *iv.End
	}

	elapsed := end.Sub(iv.Start)
	if elapsed < 0 {
		return 0, 0
	}

	return int(elapsed / time.Minute), int(elapsed % time.Minute / time.Second)
}

// StatusDuration reports how long an order dwelled in one timeline entry.
type StatusDuration struct {
	Key     string
	Minutes int
	Seconds int

	// RecordedAt is set instead of an elapsed duration when the Delivered
	// entry was never closed (legacy data imported before the instantaneous
	// close existed). The duration is pinned to zero and the recorded start
	// is reported in its place.
	RecordedAt *time.Time
}

// Timeline is the status history of an order: a mapping from status key to
// interval with unique keys. Insertion order carries no transition semantics
// but is preserved for display, which is why this is an ordered slice rather
// than a map. Re-recording an existing key overwrites its interval in place,
// discarding the previous one (last write wins).
type Timeline struct {
	entries []timelineEntry
}

type timelineEntry struct {
	key      string
	interval Interval
}

// NewTimeline creates a timeline with a single open interval for key.
func NewTimeline(key string, start time.Time) Timeline {
	return Timeline{entries: []timelineEntry{{key: key, interval: Interval{Start: start}}}}
}

// Len returns the number of entries.
func (t Timeline) Len() int {
	return len(t.entries)
}

// Get returns the interval recorded for key.
func (t Timeline) Get(key string) (Interval, bool) {
	for _, e := range t.entries {
		if e.key == key {
			return e.interval, true
		}
	}
	return Interval{}, false
}

// Keys returns all entry keys in insertion order.
func (t Timeline) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.key
	}
	return keys
}

// OpenKeys returns the keys of all entries whose interval is still open.
func (t Timeline) OpenKeys() []string {
	var keys []string
	for _, e := range t.entries {
		if e.interval.Open() {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// CloseOpen closes the interval for key at the given time. It is a no-op
// when the key is absent or its interval is already closed, and reports
// whether an interval was closed.
func (t *Timeline) CloseOpen(key string, at time.Time) bool {
	for i, e := range t.entries {
		if e.key == key && e.interval.Open() {
			end := at
			t.entries[i].interval.End = &end
			return true
		}
	}
	return false
}

// Record stores an interval for key. An existing entry is overwritten in
// place, keeping its display position; otherwise the entry is appended.
func (t *Timeline) Record(key string, iv Interval) {
	for i, e := range t.entries {
		if e.key == key {
			t.entries[i].interval = iv
			return
		}
	}
	t.entries = append(t.entries, timelineEntry{key: key, interval: iv})
}

// Clone returns a deep copy of the timeline.
func (t Timeline) Clone() Timeline {
	entries := make([]timelineEntry, len(t.entries))
	copy(entries, t.entries)
	for i, e := range entries {
		if e.interval.End != nil {
			end := *e.interval.End
			entries[i].interval.End = &end
		}
	}
	return Timeline{entries: entries}
}

// Durations computes the dwell time of each entry for display, in insertion
// order:
//
//   - closed intervals report their recorded span;
//   - the open interval of the current status reports a live span against now;
//   - an open Delivered entry reports zero, annotated with its recorded start;
//   - other open entries (the Received payment marker, stale leftovers from
//     manual edits) carry no meaningful dwell time and are skipped.
func (t Timeline) Durations(current Status, now time.Time) []StatusDuration {
	var durations []StatusDuration
	for _, e := range t.entries {
		switch {
		case !e.interval.Open():
			m, s := ComputeDuration(e.interval, now)
			durations = append(durations, StatusDuration{Key: e.key, Minutes: m, Seconds: s})
		case e.key == Delivered.String():
			start := e.interval.Start
			durations = append(durations, StatusDuration{Key: e.key, RecordedAt: &start})
		case e.key == current.String():
			m, s := ComputeDuration(e.interval, now)
			durations = append(durations, StatusDuration{Key: e.key, Minutes: m, Seconds: s})
		}
	}
	return durations
}

// MarshalJSON encodes the timeline as a JSON object keyed by status name,
// preserving insertion order.
func (t Timeline) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		iv, err := json.Marshal(e.interval)
		if err != nil {
			return nil, err
		}
		buf.Write(iv)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the timeline, keeping the key
// order of the document.
func (t *Timeline) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("timeline: expected JSON object, got %v", tok)
	}

	entries := make([]timelineEntry, 0)
	for dec.More() {
		keyTok, keyErr := dec.Token()
		if keyErr != nil {
			return keyErr
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("timeline: expected string key, got %v", keyTok)
		}

		var iv Interval
		if err := dec.Decode(&iv); err != nil {
			return err
		}
		entries = append(entries, timelineEntry{key: key, interval: iv})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	t.entries = entries
	return nil
}
