package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"zoomchart/internal/chart"
	"zoomchart/internal/obs"
)

// datasetItem is one dropdown option.
type datasetItem struct {
	title, desc string
	key         int
}

func (d datasetItem) Title() string       { return d.title }
func (d datasetItem) Description() string { return d.desc }
func (d datasetItem) FilterValue() string { return d.title }

// refreshOptions fills the dropdown from the registry, in display order.
func (m *Model) refreshOptions() {
	var items []list.Item
	for _, d := range m.registry.Entries() {
		items = append(items, datasetItem{
			title: d.Label,
			desc:  fmt.Sprintf("%d records", d.Len()),
			key:   d.Key,
		})
	}
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no datasets available"
	}
}

// selectDataset swaps the chart's data for the dataset under key. Unknown
// keys leave the page as it is.
func (m *Model) selectDataset(key int) bool {
	d, ok := m.registry.Lookup(key)
	if !ok {
		obs.Logger.Info("dataset selection ignored", "key", key)
		m.status = fmt.Sprintf("no dataset %d", key)
		return false
	}
	m.selected = d
	m.hasSelection = true
	m.widget.SetData(d.Records)
	if err := chart.Validate(m.widget.Config()); err != nil {
		obs.Logger.Warn("dataset does not fit chart config", "dataset", d.Label, "err", err)
	}
	m.status = fmt.Sprintf("loaded: %s  records=%d", d.Label, d.Len())
	// keep the records view in step with the new selection
	if m.showTable {
		m.refreshTable()
	}
	return true
}
