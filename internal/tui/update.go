package tui

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"zoomchart/internal/obs"
)

const (
	// keyZoomStep is the factor of one +/- press; one wheel notch is smaller.
	keyZoomStep = 1.2
	panStep     = 20.0

	// a second left press within doubleClick on the same cell zooms in 2x
	doubleClick = 400 * time.Millisecond
)

var wheelStep = math.Pow(2, 0.2)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.l.SetSize(dropdownWidth, dropdownHeight)
	case tea.KeyMsg:
		if m.dropdownOpen {
			return m.updateDropdown(msg)
		}
		return m.updateKeys(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	return m, nil
}

// updateDropdown routes keys to the open dataset list.
func (m Model) updateDropdown(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Apply):
		if it, ok := m.l.SelectedItem().(datasetItem); ok {
			m.selectDataset(it.key)
		}
		m.dropdownOpen = false
		return m, nil
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Dataset):
		m.dropdownOpen = false
		return m, nil
	}
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// the records table takes the arrows while it is shown
	if m.showTable {
		switch {
		case key.Matches(msg, m.keys.PanUp), key.Matches(msg, m.keys.PanDown):
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
	}
	iw, ih := m.widget.InnerSize()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Crosshair):
		m.toggleCrosshair()
	case key.Matches(msg, m.keys.Zoom):
		m.toggleZoom()
	case key.Matches(msg, m.keys.Dataset):
		m.dropdownOpen = true
	case key.Matches(msg, m.keys.Pick):
		n, err := strconv.Atoi(msg.String())
		if err == nil {
			m.selectDataset(n)
		}
	case key.Matches(msg, m.keys.ZoomIn):
		m.widget.ZoomBy(keyZoomStep, iw/2, ih/2)
		m.status = m.zoomStatus()
	case key.Matches(msg, m.keys.ZoomOut):
		m.widget.ZoomBy(1/keyZoomStep, iw/2, ih/2)
		m.status = m.zoomStatus()
	case key.Matches(msg, m.keys.PanUp):
		m.widget.PanBy(0, panStep)
	case key.Matches(msg, m.keys.PanDown):
		m.widget.PanBy(0, -panStep)
	case key.Matches(msg, m.keys.PanLeft):
		m.widget.PanBy(panStep, 0)
	case key.Matches(msg, m.keys.PanRight):
		m.widget.PanBy(-panStep, 0)
	case key.Matches(msg, m.keys.Table):
		m.showTable = !m.showTable
		if m.showTable {
			m.refreshTable()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) toggleCrosshair() {
	on := m.widget.ToggleCrosshair()
	m.status = fmt.Sprintf("crosshair: %v", on)
}

func (m *Model) toggleZoom() {
	on := m.widget.ToggleZoom()
	m.status = fmt.Sprintf("zoom: %v", on)
}

func (m Model) zoomStatus() string {
	t := m.widget.Transform()
	if !m.widget.State().ZoomEnabled {
		return fmt.Sprintf("zoom disabled (tracking %.2fx)", t.K)
	}
	return fmt.Sprintf("zoom: %.2fx", t.K)
}

// updateMouse dispatches clicks on the buttons and dropdown, and forwards
// anything over the canvas to chartMouse.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	if msg.Action == tea.MouseActionRelease {
		m.dragging = false
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		switch {
		case m.inZone(zoneCrosshair, msg):
			m.toggleCrosshair()
			return
		case m.inZone(zoneZoom, msg):
			m.toggleZoom()
			return
		case m.inZone(zoneDropdown, msg):
			m.dropdownOpen = !m.dropdownOpen
			return
		}
	}
	if m.showTable {
		return
	}
	z := m.zones.Get(zoneChart)
	if z == nil || !z.InBounds(msg) {
		if m.hovering {
			m.hovering = false
			m.widget.PointerLeave()
		}
		m.dragging = false
		return
	}
	cx, cy := z.Pos(msg)
	m.chartMouse(msg, cx, cy)
}

func (m *Model) inZone(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// chartMouse handles a mouse event at cell (cx, cy) of the canvas.
func (m *Model) chartMouse(msg tea.MouseMsg, cx, cy int) {
	sx, sy := m.cellToSurface(cx, cy)
	mg := m.widget.Margin()
	ix, iy := sx-mg.Left, sy-mg.Top
	inside := m.widget.Contains(ix, iy)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if inside {
			m.widget.ZoomBy(wheelStep, ix, iy)
			m.status = m.zoomStatus()
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if inside {
			m.widget.ZoomBy(1/wheelStep, ix, iy)
			m.status = m.zoomStatus()
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inside {
			break
		}
		now := time.Now()
		if m.lastClick.cx == cx && m.lastClick.cy == cy && now.Sub(m.lastClick.at) < doubleClick {
			f := 2.0
			if msg.Shift {
				f = 0.5
			}
			m.widget.ZoomBy(f, ix, iy)
			m.status = m.zoomStatus()
			m.lastClick = click{}
			break
		}
		m.lastClick = click{at: now, cx: cx, cy: cy}
		m.dragging = true
		m.dragX, m.dragY = sx, sy
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.widget.PanBy(sx-m.dragX, sy-m.dragY)
		m.dragX, m.dragY = sx, sy
	}

	if msg.Action == tea.MouseActionRelease {
		return
	}
	if inside {
		m.hovering = true
		m.widget.PointerMove(ix, iy)
	} else if m.hovering {
		m.hovering = false
		m.widget.PointerLeave()
		obs.Logger.Debug("pointer left plotting area", "x", ix, "y", iy)
	}
}

// cellToSurface maps the centre of a canvas cell to surface pixels.
func (m Model) cellToSurface(cx, cy int) (float64, float64) {
	lay := m.layout()
	cfg := m.widget.Config()
	sx := (float64(cx) + 0.5) / float64(lay.canvasW) * cfg.Width
	sy := (float64(cy) + 0.5) / float64(lay.canvasH) * cfg.Height
	return sx, sy
}
