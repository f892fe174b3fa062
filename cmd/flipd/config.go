package main

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Mode           string `json:"mode"`
	Addr           string `json:"addr"`
	DbPath         string `json:"db_path"`
	LogFile        string `json:"log_file"`
	FlipDelayTicks int    `json:"flip_delay_ticks"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:   "development",
		Addr:   "localhost:8000",
		DbPath: "flipd.db",
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"addr":             c.Addr,
		"db_path":          c.DbPath,
		"log_file":         c.LogFile,
		"flip_delay_ticks": c.FlipDelayTicks,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// ApplyEnv lets env vars (possibly loaded from .env) override file values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("FLIPD_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("FLIPD_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("FLIPD_DB_PATH"); v != "" {
		c.DbPath = v
	}
	if v := os.Getenv("FLIPD_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("FLIPD_FLIP_DELAY_TICKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FlipDelayTicks = n
		}
	}
}
