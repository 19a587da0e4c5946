package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ratel-online/influence/config"
	"github.com/ratel-online/influence/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		conf, err := config.FromEnv(func(string) string { return "" })
		require.NoError(t, err)
		assert.Equal(t, config.Default(), conf)
		assert.Equal(t, ":9999", conf.TCPAddr)
		assert.Equal(t, ":9998", conf.WSAddr)
		assert.Equal(t, 24*time.Hour, conf.RoomIdle)
		assert.Equal(t, time.Second, conf.TurnPoll)
		assert.Empty(t, conf.RoleNames)
	})

	t.Run("overrides", func(t *testing.T) {
		env := map[string]string{
			config.EnvTCPAddr:       ":7000",
			config.EnvWSAddr:        ":7001",
			config.EnvRoleNames:     "Banker, Hitman,Pirate,Diplomat , Bodyguard",
			config.EnvRoomIdleHours: "2",
			config.EnvTurnPollMS:    "250",
		}
		conf, err := config.FromEnv(func(key string) string { return env[key] })
		require.NoError(t, err)
		assert.Equal(t, ":7000", conf.TCPAddr)
		assert.Equal(t, ":7001", conf.WSAddr)
		assert.Equal(t, []string{"Banker", "Hitman", "Pirate", "Diplomat", "Bodyguard"}, conf.RoleNames)
		assert.Equal(t, 2*time.Hour, conf.RoomIdle)
		assert.Equal(t, 250*time.Millisecond, conf.TurnPoll)
	})

	scenarios := []struct {
		description string
		key         string
		value       string
	}{
		{description: "idle_hours_not_a_number", key: config.EnvRoomIdleHours, value: "soon"},
		{description: "idle_hours_zero", key: config.EnvRoomIdleHours, value: "0"},
		{description: "poll_negative", key: config.EnvTurnPollMS, value: "-5"},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := config.FromEnv(func(key string) string {
				if key == scenario.key {
					return scenario.value
				}
				return ""
			})
			assert.Equal(t, consts.ErrorsConfigInvalid, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads_dotenv_file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(file, []byte("INFLUENCE_TCP_ADDR=:6000\n"), 0o600))
		t.Setenv(config.EnvTCPAddr, "")
		require.NoError(t, os.Unsetenv(config.EnvTCPAddr))

		conf, err := config.Load(file)
		require.NoError(t, err)
		assert.Equal(t, ":6000", conf.TCPAddr)
	})

	t.Run("environment_wins", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(file, []byte("INFLUENCE_WS_ADDR=:6001\n"), 0o600))
		t.Setenv(config.EnvWSAddr, ":5001")

		conf, err := config.Load(file)
		require.NoError(t, err)
		assert.Equal(t, ":5001", conf.WSAddr)
	})

	t.Run("missing_file_is_fine", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
		assert.NoError(t, err)
	})
}
