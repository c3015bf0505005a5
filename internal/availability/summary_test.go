package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeTodayAndTomorrow(t *testing.T) {
	loc := jst(t)
	now := at(t, "2025-03-01T09:00:00+09:00")

	slots := []Slot{
		openSlot(t, "2025-03-02T10:00:00+09:00", "2025-03-02T11:00:00+09:00"),
		openSlot(t, "2025-03-01T11:30:00+09:00", "2025-03-01T12:30:00+09:00"),
	}

	sum := Summarize(slots, now, loc, Options{})

	assert.True(t, sum.HasToday)
	assert.True(t, sum.HasFuture)
	require.NotNil(t, sum.NextLabel)
	assert.Equal(t, "本日 11:30〜", *sum.NextLabel) // earliest wins
}

func TestSummarizeNoAvailability(t *testing.T) {
	loc := jst(t)
	now := at(t, "2025-03-01T09:00:00+09:00")

	blocked := []Slot{
		{
			StartAt: at(t, "2025-03-01T11:30:00+09:00"),
			EndAt:   at(t, "2025-03-01T12:30:00+09:00"),
			Status:  StatusBlocked,
		},
	}

	sum := Summarize(blocked, now, loc, Options{})
	assert.False(t, sum.HasToday)
	assert.False(t, sum.HasFuture)
	assert.Nil(t, sum.NextLabel)

	past := []Slot{
		openSlot(t, "2025-03-01T07:00:00+09:00", "2025-03-01T08:00:00+09:00"),
	}

	sum = Summarize(past, now, loc, Options{})
	// The day still had an open slot, but nothing remains reservable.
	assert.True(t, sum.HasToday)
	assert.False(t, sum.HasFuture)
	assert.Nil(t, sum.NextLabel)
}

func TestSummarizeEmpty(t *testing.T) {
	loc := jst(t)
	sum := Summarize(nil, at(t, "2025-03-01T09:00:00+09:00"), loc, Options{})

	assert.False(t, sum.HasToday)
	assert.False(t, sum.HasFuture)
	assert.Nil(t, sum.NextLabel)
}

func TestDayItems(t *testing.T) {
	days := []Day{
		{
			Date:    "2025-03-01",
			IsToday: true,
			Slots: []Slot{
				{
					StartAt: at(t, "2025-03-01T11:30:00+09:00"),
					EndAt:   at(t, "2025-03-01T12:30:00+09:00"),
					Status:  StatusBlocked,
				},
			},
		},
		{
			Date:    "2025-03-02",
			IsToday: false,
			Slots: []Slot{
				openSlot(t, "2025-03-02T10:00:00+09:00", "2025-03-02T11:00:00+09:00"),
			},
		},
		{Date: "2025-03-03", IsToday: false},
	}

	items := DayItems(days, Options{})

	require.Len(t, items, 3)
	assert.False(t, items[0].HasAvailable)
	assert.True(t, items[1].HasAvailable)
	assert.False(t, items[2].HasAvailable)
}

func TestSortedByStart(t *testing.T) {
	slots := []Slot{
		openSlot(t, "2025-03-01T16:00:00+09:00", "2025-03-01T17:00:00+09:00"),
		openSlot(t, "2025-03-01T10:00:00+09:00", "2025-03-01T11:00:00+09:00"),
	}

	sorted := SortedByStart(slots)

	assert.True(t, sorted[0].StartAt.Before(sorted[1].StartAt))
	// Input order untouched.
	assert.True(t, slots[0].StartAt.After(slots[1].StartAt))
}
