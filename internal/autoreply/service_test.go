package autoreply

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type counterSpy struct {
	counts map[string]int
}

func (c *counterSpy) IncrementAutoReply(userID string) error {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[userID]++
	return nil
}

func (c *counterSpy) AutoReplyCount(userID string) int {
	return c.counts[userID]
}

func jakartaConfig(enabled bool) Config {
	loc, _ := time.LoadLocation("Asia/Jakarta")
	return Config{
		Enabled:    enabled,
		OpenTime:   "08:00",
		CloseTime:  "17:00",
		Location:   loc,
		WorkDays:   []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		MaxPerUser: 1,
	}
}

func newTestService(t *testing.T, enabled bool) (*Service, *counterSpy) {
	t.Helper()
	counter := &counterSpy{}
	svc, err := NewService(jakartaConfig(enabled), counter)
	require.NoError(t, err)
	svc.pick = func(int) int { return 0 }
	return svc, counter
}

// jakarta builds a WIB (+07:00) timestamp.
func jakarta(t *testing.T, year int, month time.Month, day, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return time.Date(year, month, day, hour, min, 0, 0, loc)
}

func TestWithinOperationalHours(t *testing.T) {
	svc, _ := newTestService(t, true)

	// 2026-08-31 is a Monday.
	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"MondayMidMorning", jakarta(t, 2026, 8, 31, 10, 0), true},
		{"MondayAtOpen", jakarta(t, 2026, 8, 31, 8, 0), true},
		{"MondayBeforeOpen", jakarta(t, 2026, 8, 31, 7, 59), false},
		{"MondayAtClose", jakarta(t, 2026, 8, 31, 17, 0), false},
		{"SaturdayMidMorning", jakarta(t, 2026, 9, 5, 10, 0), false},
		{"SundayMidMorning", jakarta(t, 2026, 9, 6, 10, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.WithinOperationalHours(tc.at))
		})
	}
}

func TestMaybe(t *testing.T) {
	ctx := context.Background()
	offHours := jakarta(t, 2026, 8, 31, 20, 0)

	t.Run("RepliesOncePerDay", func(t *testing.T) {
		svc, counter := newTestService(t, true)

		msg, ok := svc.Maybe(ctx, "u1", offHours)
		require.True(t, ok)
		assert.Contains(t, msg, "Jam Operasional")
		assert.Equal(t, 1, counter.counts["u1"])

		_, ok = svc.Maybe(ctx, "u1", offHours)
		assert.False(t, ok, "second message same day is silent")

		// A different contact still gets a reply.
		_, ok = svc.Maybe(ctx, "u2", offHours)
		assert.True(t, ok)
	})

	t.Run("SilentDuringOperationalHours", func(t *testing.T) {
		svc, _ := newTestService(t, true)
		_, ok := svc.Maybe(ctx, "u1", jakarta(t, 2026, 8, 31, 10, 0))
		assert.False(t, ok)
	})

	t.Run("SilentWhenDisabled", func(t *testing.T) {
		svc, _ := newTestService(t, false)
		_, ok := svc.Maybe(ctx, "u1", offHours)
		assert.False(t, ok)
	})

	t.Run("CounterResetAllowsNewReply", func(t *testing.T) {
		svc, counter := newTestService(t, true)

		_, ok := svc.Maybe(ctx, "u1", offHours)
		require.True(t, ok)

		counter.counts = nil // the daily cron reset
		_, ok = svc.Maybe(ctx, "u1", offHours)
		assert.True(t, ok)
	})
}

func TestNewServiceRejectsBadClock(t *testing.T) {
	cfg := jakartaConfig(true)
	cfg.OpenTime = "late"

	_, err := NewService(cfg, &counterSpy{})
	assert.Error(t, err)
}

func TestLimiter(t *testing.T) {
	l := NewLimiter(rate.Limit(1), 2)

	assert.True(t, l.Allow("chat1"))
	assert.True(t, l.Allow("chat1"))
	assert.False(t, l.Allow("chat1"), "burst exhausted")

	// Separate chats have separate buckets.
	assert.True(t, l.Allow("chat2"))
}
