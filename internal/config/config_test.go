package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(map[string]string{
		"DB_DSN":         "postgres://localhost/pousada",
		"TELEGRAM_TOKEN": "token",
	})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, DefaultMigrationsPath, cfg.MigrationsPath)
	assert.Equal(t, DefaultTimezone, cfg.Timezone)
	assert.Equal(t, DefaultKitchenTicketHour, cfg.KitchenTicketHour)
	assert.Equal(t, 10.0, cfg.APIRatePerSec)
	assert.Empty(t, cfg.AdminIDs)
	assert.Empty(t, cfg.StaticTokens)
	assert.Empty(t, cfg.HTTPAddr)
	assert.Zero(t, cfg.KitchenChatID)
}

func TestFromEnv_Lists(t *testing.T) {
	cfg, err := FromEnv(map[string]string{
		"DB_DSN":              "postgres://localhost/pousada",
		"TELEGRAM_TOKEN":      "token",
		"ADMIN_IDS":           "101,202",
		"STATIC_TOKENS":       "front, ops ,",
		"KITCHEN_CHAT_ID":     "-100123",
		"KITCHEN_TICKET_HOUR": "6",
		"TIMEZONE":            "UTC",
		"HTTP_ADDR":           " :8080 ",
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{101, 202}, cfg.AdminIDs)
	assert.Equal(t, []string{"front", "ops"}, cfg.StaticTokens)
	assert.Equal(t, int64(-100123), cfg.KitchenChatID)
	assert.Equal(t, 6, cfg.KitchenTicketHour)
	assert.Equal(t, ":8080", cfg.HTTPAddr)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestFromEnv_Errors(t *testing.T) {
	with := func(key, value string) map[string]string {
		values := map[string]string{"DB_DSN": "dsn", "TELEGRAM_TOKEN": "token"}
		values[key] = value
		return values
	}

	cases := map[string]map[string]string{
		"missing dsn":   with("DB_DSN", ""),
		"missing token": with("TELEGRAM_TOKEN", ""),
		"bad admin":     with("ADMIN_IDS", "abc"),
		"bad chat":      with("KITCHEN_CHAT_ID", "chat"),
		"bad hour":      with("KITCHEN_TICKET_HOUR", "24"),
		"bad rate":      with("API_RATE_PER_SEC", "0"),
		"bad timezone":  with("TIMEZONE", "Mars/Olympus"),
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(values)
			assert.Error(t, err)
		})
	}
}
