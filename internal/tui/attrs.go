package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshTable rebuilds the records table from the selected dataset.
func (m *Model) refreshTable() {
	if !m.hasSelection || m.selected.Len() == 0 {
		// nothing to list; leave the table untouched
		m.showTable = false
		m.status = "no records for current selection"
		return
	}
	cfg := m.widget.Config()
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: cfg.XField, Width: max(len(cfg.XField)+2, 12)},
		{Title: cfg.YField, Width: max(len(cfg.YField)+2, 12)},
	}
	rows := make([]table.Row, 0, m.selected.Len())
	for i, r := range m.selected.Records {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%g", r.Field(cfg.XField)),
			fmt.Sprintf("%g", r.Field(cfg.YField)),
		})
	}
	// clear rows first so the column change never sees mismatched rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
