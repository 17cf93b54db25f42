package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight   = 1
	buttonsHeight  = 3
	selectorHeight = 3
	footerHeight   = 2

	dropdownWidth  = 32
	dropdownHeight = 10
)

// layout is the screen split shared by View and the mouse handlers.
type layout struct {
	contentW int
	areaH    int // rows available to the chart or the records table
	canvasW  int
	canvasH  int
}

func (m Model) layout() layout {
	contentW := max(10, m.width)
	areaH := m.height - headerHeight - buttonsHeight - selectorHeight - footerHeight
	if m.dropdownOpen {
		areaH -= dropdownHeight + 2
	}
	areaH = max(areaH, 4)
	cfg := m.widget.Config()
	cw, ch := fitCanvas(contentW, areaH, cfg.Width, cfg.Height)
	return layout{contentW: contentW, areaH: areaH, canvasW: cw, canvasH: ch}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Header
	header := titleStyle.Render(" zoomchart ─ line chart demo ")
	header = lipgloss.NewStyle().Width(lay.contentW).Render(header)

	// Chart area, or the records table in its place
	var area string
	if m.showTable {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lay.contentW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.areaH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		area = lipgloss.Place(lay.contentW, lay.areaH, lipgloss.Center, lipgloss.Center, box)
	} else {
		canvas := m.zones.Mark(zoneChart, m.renderChart(lay.canvasW, lay.canvasH))
		area = lipgloss.Place(lay.contentW, lay.areaH, lipgloss.Center, lipgloss.Top, canvas)
	}

	// Toggle buttons under the chart
	st := m.widget.State()
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.button(zoneCrosshair, m.widget.CrosshairLabel(), st.CrosshairEnabled),
		" ",
		m.button(zoneZoom, m.widget.ZoomLabel(), st.ZoomEnabled),
	)
	buttonsRow := lipgloss.PlaceHorizontal(lay.contentW, lipgloss.Center, buttons)

	// Dataset selector
	current := "Select..."
	if m.hasSelection {
		current = m.selected.Label
	}
	field := m.zones.Mark(zoneDropdown, boxStyle.Width(dropdownWidth).Render(current+" ▾"))
	selector := lipgloss.JoinHorizontal(lipgloss.Center, dimStyle.Render(" Please select your data : "), field)
	rows := []string{header, area, buttonsRow, selector}
	if m.dropdownOpen {
		rows = append(rows, lipgloss.NewStyle().MarginLeft(27).Render(boxStyle.Render(m.l.View())))
	}

	// Footer: status and help on the left, crosshair readout on the right
	status := dimStyle.Render(" " + m.status + " ")
	readout := ""
	if st.CrosshairVisible {
		x, y := m.widget.DataAt(st.Pointer.X, st.Pointer.Y)
		cfg := m.widget.Config()
		readout = dimStyle.Render(fmt.Sprintf("  %s=%.3f %s=%.3f  ", cfg.XField, x, cfg.YField, y))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, dimStyle.Render(" "+m.help.View(m.keys)))
	spacerW := max(0, lay.contentW-lipgloss.Width(left)-lipgloss.Width(readout))
	right := lipgloss.Place(spacerW+lipgloss.Width(readout), 1, lipgloss.Right, lipgloss.Center, readout)
	footer := lipgloss.NewStyle().Width(lay.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))
	rows = append(rows, footer)

	ui := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return m.zones.Scan(appStyle.Width(lay.contentW).Height(m.height).Render(ui))
}

func (m Model) button(id, label string, active bool) string {
	st := buttonStyle
	if active {
		st = activeStyle
	}
	return m.zones.Mark(id, st.Render(label))
}
