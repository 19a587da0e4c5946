// Package config reads server settings from the environment and an optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/influence/consts"
)

const (
	EnvTCPAddr       = "INFLUENCE_TCP_ADDR"
	EnvWSAddr        = "INFLUENCE_WS_ADDR"
	EnvRoleNames     = "INFLUENCE_ROLE_NAMES"
	EnvRoomIdleHours = "INFLUENCE_ROOM_IDLE_HOURS"
	EnvTurnPollMS    = "INFLUENCE_TURN_POLL_MS"
)

type Config struct {
	TCPAddr   string
	WSAddr    string
	RoleNames []string
	RoomIdle  time.Duration
	TurnPoll  time.Duration
}

func Default() Config {
	return Config{
		TCPAddr:  ":9999",
		WSAddr:   ":9998",
		RoomIdle: 24 * time.Hour,
		TurnPoll: consts.PollInterval,
	}
}

// Load reads the given .env files, if present, and then the environment.
// Variables already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, falling back to Default.
func FromEnv(getenv func(string) string) (Config, error) {
	conf := Default()
	if v := getenv(EnvTCPAddr); v != "" {
		conf.TCPAddr = v
	}
	if v := getenv(EnvWSAddr); v != "" {
		conf.WSAddr = v
	}
	if v := getenv(EnvRoleNames); v != "" {
		for _, name := range strings.Split(v, ",") {
			conf.RoleNames = append(conf.RoleNames, strings.TrimSpace(name))
		}
	}
	if v := getenv(EnvRoomIdleHours); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return Config{}, consts.ErrorsConfigInvalid
		}
		conf.RoomIdle = time.Duration(hours) * time.Hour
	}
	if v := getenv(EnvTurnPollMS); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return Config{}, consts.ErrorsConfigInvalid
		}
		conf.TurnPoll = time.Duration(ms) * time.Millisecond
	}
	return conf, nil
}
