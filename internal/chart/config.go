package chart

import (
	"errors"
	"fmt"

	"zoomchart/internal/dataset"
)

// Margin is the space reserved around the plotting area for axes and labels.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargin leaves room for the left tick labels and the bottom axis.
var DefaultMargin = Margin{Top: 10, Right: 30, Bottom: 30, Left: 60}

// Config is everything the widget needs to draw one series.
type Config struct {
	Data   []dataset.Record
	XField string
	YField string
	Width  float64
	Height float64
}

// ErrBadSize indicates the requested surface leaves no plotting area.
var ErrBadSize = errors.New("plotting area is empty")

// ErrUnknownField indicates a configured field is absent from the data.
var ErrUnknownField = errors.New("unknown field")

// ConfigError reports which part of a Config is unusable.
type ConfigError struct {
	Field string
	Index int // record index for ErrUnknownField, -1 otherwise
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("chart config: %s (record %d): %v", e.Field, e.Index, e.Err)
	}
	return fmt.Sprintf("chart config: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Validate checks cfg against the data shape. The widget itself renders any
// config; callers that prefer an error over NaN-positioned output use this.
func Validate(cfg Config) error {
	m := DefaultMargin
	if cfg.Width-m.Left-m.Right <= 0 {
		return &ConfigError{Field: "width", Index: -1, Err: ErrBadSize}
	}
	if cfg.Height-m.Top-m.Bottom <= 0 {
		return &ConfigError{Field: "height", Index: -1, Err: ErrBadSize}
	}
	for i, r := range cfg.Data {
		for _, f := range []string{cfg.XField, cfg.YField} {
			if _, ok := r[f]; !ok {
				return &ConfigError{Field: f, Index: i, Err: ErrUnknownField}
			}
		}
	}
	return nil
}
