package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"zoomchart/internal/chart"
	"zoomchart/internal/config"
	"zoomchart/internal/dataset"
)

// Zone ids for clickable regions.
const (
	zoneChart     = "chart"
	zoneCrosshair = "crosshair"
	zoneZoom      = "zoom"
	zoneDropdown  = "dropdown"
)

type Model struct {
	width  int
	height int

	status string

	// Page state: the selected dataset, empty until the user picks one.
	registry     *dataset.Registry
	selected     dataset.Dataset
	hasSelection bool

	widget *chart.Widget

	// Dropdown
	l            list.Model
	dropdownOpen bool

	// Records table
	showTable bool
	tbl       table.Model

	keys keyMap
	help help.Model

	zones *zone.Manager

	// pointer state over the chart, in surface pixels
	hovering     bool
	dragging     bool
	dragX, dragY float64
	lastClick    click
}

// click is a left press on the canvas.
type click struct {
	at     time.Time
	cx, cy int
}

// New builds the page for cfg with datasets from reg. A non-zero
// cfg.Dataset preselects that dataset.
func New(cfg config.Config, reg *dataset.Registry) Model {
	m := Model{
		status:   "zoomchart ready",
		registry: reg,
		widget: chart.New(chart.Config{
			XField: cfg.XField,
			YField: cfg.YField,
			Width:  float64(cfg.Width),
			Height: float64(cfg.Height),
		}),
		keys:  newKeyMap(),
		help:  help.New(),
		zones: zone.New(),
	}
	// dropdown setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, dropdownWidth, dropdownHeight)
	m.l.Title = "Datasets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)
	// records table setup (columns follow the widget's field names)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshOptions()
	if cfg.Dataset != 0 {
		m.selectDataset(cfg.Dataset)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Close stops the zone manager.
func (m Model) Close() {
	if m.zones != nil {
		m.zones.Close()
	}
}

// Widget exposes the chart for callers that drive it directly.
func (m Model) Widget() *chart.Widget { return m.widget }
