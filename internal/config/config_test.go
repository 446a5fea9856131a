package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "TAM Store", cfg.StoreName)
	assert.Equal(t, "Asia/Jakarta", cfg.Timezone)
	assert.NotNil(t, cfg.Location)
	assert.Equal(t, "08:00", cfg.OpenTime)
	assert.Equal(t, "17:00", cfg.CloseTime)
	assert.Equal(t, []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	}, cfg.WorkDays)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 15000, cfg.ShippingFee)
	assert.Equal(t, 10, cfg.MaxOrderQty)
	assert.Equal(t, "memory", cfg.SessionBackend)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("SESSION_TTL_MIN", "15")
	t.Setenv("WORK_DAYS", "1,3,5")
	t.Setenv("MAX_AUTO_REPLY_PER_USER", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, cfg.WorkDays)
	assert.Equal(t, 2, cfg.MaxAutoReplyPerUser)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"BOT_TIMEZONE":    "Mars/Olympus",
		"OPEN_TIME":       "8am",
		"WORK_DAYS":       "1,9",
		"SESSION_BACKEND": "postgres",
		"SESSION_TTL_MIN": "0",
		"MAX_ORDER_QTY":   "-1",
	}

	for key, bad := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, bad)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
