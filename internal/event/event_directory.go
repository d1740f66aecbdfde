package event

import (
	"sort"
	"strings"
	"time"
)

// Directory views over an event list. These operate on the full snapshot
// rather than patching previous results, so a stale filter can never survive
// a refetch.

// FilterByName keeps events whose name contains the given substring,
// case-insensitively. An empty needle keeps everything.
func FilterByName(events []Event, needle string) []Event {
	if needle == "" {
		return events
	}
	needle = strings.ToLower(needle)
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}

// SortChronological orders events by start date, earliest first. Ties keep
// name order so the result is stable across refetches.
func SortChronological(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].Name < out[j].Name
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out
}

// SplitUpcoming partitions events into upcoming (ending at or after now) and
// past ones.
func SplitUpcoming(events []Event, now time.Time) (upcoming, past []Event) {
	for _, e := range events {
		if e.EndDate.Before(now) {
			past = append(past, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming, past
}
