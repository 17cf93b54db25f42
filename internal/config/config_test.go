package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ZOOMCHART_WIDTH", "")
	t.Setenv("ZOOMCHART_HEIGHT", "")
	t.Setenv("ZOOMCHART_X_FIELD", "")
	t.Setenv("ZOOMCHART_Y_FIELD", "")
	t.Setenv("ZOOMCHART_DATASET", "")
	t.Setenv("ZOOMCHART_LOG_FILE", "")
	t.Setenv("ZOOMCHART_LOG_LEVEL", "")
	c := Load()
	if c.Width != 700 || c.Height != 700 {
		t.Fatalf("size default=%dx%d", c.Width, c.Height)
	}
	if c.XField != "x" || c.YField != "y" {
		t.Fatalf("fields default=%q,%q", c.XField, c.YField)
	}
	if c.Dataset != 0 {
		t.Fatalf("dataset default=%d", c.Dataset)
	}
	if c.LogFile != "" || c.LogLevel != "info" {
		t.Fatalf("log default=%q,%q", c.LogFile, c.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ZOOMCHART_WIDTH", "900")
	t.Setenv("ZOOMCHART_HEIGHT", "500")
	t.Setenv("ZOOMCHART_X_FIELD", "t")
	t.Setenv("ZOOMCHART_Y_FIELD", "v")
	t.Setenv("ZOOMCHART_DATASET", "2")
	t.Setenv("ZOOMCHART_LOG_FILE", "/tmp/zc.log")
	t.Setenv("ZOOMCHART_LOG_LEVEL", "debug")
	c := Load()
	if c.Width != 900 || c.Height != 500 {
		t.Fatalf("size env=%dx%d", c.Width, c.Height)
	}
	if c.XField != "t" || c.YField != "v" {
		t.Fatalf("fields env=%q,%q", c.XField, c.YField)
	}
	if c.Dataset != 2 {
		t.Fatalf("dataset env=%d", c.Dataset)
	}
	if c.LogFile != "/tmp/zc.log" || c.LogLevel != "debug" {
		t.Fatalf("log env=%q,%q", c.LogFile, c.LogLevel)
	}
}

func TestLoadBadNumberFallsBack(t *testing.T) {
	t.Setenv("ZOOMCHART_WIDTH", "wide")
	if c := Load(); c.Width != 700 {
		t.Fatalf("Width=%d, want default 700", c.Width)
	}
}
