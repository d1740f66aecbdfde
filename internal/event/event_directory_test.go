package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mkEvent(name string, start, end time.Time) Event {
	return Event{Name: name, StartDate: start, EndDate: end}
}

func TestFilterByName(t *testing.T) {
	now := time.Now()
	events := []Event{
		mkEvent("Spring Hackathon", now, now.Add(time.Hour)),
		mkEvent("Design Jam", now, now.Add(time.Hour)),
		mkEvent("HACKWEEK", now, now.Add(time.Hour)),
	}

	assert.Len(t, FilterByName(events, ""), 3)

	got := FilterByName(events, "hack")
	assert.Len(t, got, 2)
	assert.Equal(t, "Spring Hackathon", got[0].Name)
	assert.Equal(t, "HACKWEEK", got[1].Name)

	assert.Empty(t, FilterByName(events, "conference"))
}

func TestSortChronological(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	events := []Event{
		mkEvent("Later", base.Add(48*time.Hour), base.Add(72*time.Hour)),
		mkEvent("B same day", base, base.Add(time.Hour)),
		mkEvent("A same day", base, base.Add(time.Hour)),
	}

	got := SortChronological(events)
	assert.Equal(t, "A same day", got[0].Name)
	assert.Equal(t, "B same day", got[1].Name)
	assert.Equal(t, "Later", got[2].Name)

	// Input order is untouched.
	assert.Equal(t, "Later", events[0].Name)
}

func TestSplitUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ended := mkEvent("Ended", now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	running := mkEvent("Running", now.Add(-time.Hour), now.Add(time.Hour))
	future := mkEvent("Future", now.Add(24*time.Hour), now.Add(48*time.Hour))

	upcoming, past := SplitUpcoming([]Event{ended, running, future}, now)
	assert.Equal(t, []string{"Running", "Future"}, eventNames(upcoming))
	assert.Equal(t, []string{"Ended"}, eventNames(past))
}

func eventNames(events []Event) []string {
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.Name)
	}
	return names
}
