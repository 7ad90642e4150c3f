// Package history owns the per-day task completion counts backing streaks
// and the activity chart.
package history

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"petrack/internal/events"
	"petrack/internal/storage"
)

// DateFormat is the ISO calendar-date key format used in the history map.
const DateFormat = "2006-01-02"

// Day formats t as a history key in UTC.
func Day(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// Entry is one point of the charting series.
type Entry struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

type Service struct {
	store *storage.Store
	bus   *events.Bus
}

func NewService(store *storage.Store, bus *events.Bus) *Service {
	return &Service{store: store, bus: bus}
}

// Get returns the date to completion-count mapping. The legacy array form
// ([{date, value}]) is normalized to the map form and values are coerced to
// numbers; malformed data yields an empty mapping.
func (s *Service) Get(ctx context.Context) (map[string]int, error) {
	raw, ok, err := s.store.GetString(ctx, storage.KeyTaskHistory)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]int{}, nil
	}
	return normalize([]byte(raw)), nil
}

// Series returns the history as a date-ordered list for charting.
func (s *Service) Series(ctx context.Context) ([]Entry, error) {
	m, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(m))
	for date, value := range m {
		out = append(out, Entry{Date: date, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// RecordCompletion increments the bucket for the given day by one, persists
// the mapping in canonical form and broadcasts the change.
func (s *Service) RecordCompletion(ctx context.Context, day string) (map[string]int, error) {
	m, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	m[day]++

	if err := s.store.SetJSON(ctx, storage.KeyTaskHistory, m); err != nil {
		return nil, err
	}
	if s.bus != nil {
		s.bus.Publish(events.Event{Type: events.HistoryUpdated, Date: day, History: m})
		s.bus.Publish(events.Event{Type: events.StateChanged, Key: storage.KeyTaskHistory})
	}
	return m, nil
}

func normalize(raw []byte) map[string]int {
	// Canonical object form first.
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		out := make(map[string]int, len(obj))
		for date, v := range obj {
			out[date] = coerce(v)
		}
		return out
	}

	// Legacy array-of-{date, value} form.
	var arr []struct {
		Date  string          `json:"date"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &arr); err == nil {
		out := make(map[string]int, len(arr))
		for _, e := range arr {
			if e.Date == "" {
				continue
			}
			out[e.Date] = coerce(e.Value)
		}
		return out
	}

	return map[string]int{}
}

// coerce mirrors the original's Number(value) || 0.
func coerce(raw json.RawMessage) int {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return 0
}
