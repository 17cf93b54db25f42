// Package config provides runtime configuration values for the demo.
package config

import (
	"os"
	"strconv"
)

// Config holds the chart surface and logging knobs.
type Config struct {
	Width    int
	Height   int
	XField   string
	YField   string
	Dataset  int // preselected dataset key, 0 for none
	LogFile  string
	LogLevel string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		Width:    atoienv("ZOOMCHART_WIDTH", 700),
		Height:   atoienv("ZOOMCHART_HEIGHT", 700),
		XField:   getenv("ZOOMCHART_X_FIELD", "x"),
		YField:   getenv("ZOOMCHART_Y_FIELD", "y"),
		Dataset:  atoienv("ZOOMCHART_DATASET", 0),
		LogFile:  getenv("ZOOMCHART_LOG_FILE", ""),
		LogLevel: getenv("ZOOMCHART_LOG_LEVEL", "info"),
	}
}
