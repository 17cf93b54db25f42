// Package dataset holds the sample series bundled with the demo.
package dataset

import "math"

// Record is one data point: a set of named numeric fields.
type Record map[string]float64

// Field returns the named value, or NaN when the record has no such field.
func (r Record) Field(name string) float64 {
	v, ok := r[name]
	if !ok {
		return math.NaN()
	}
	return v
}

// Dataset is a labelled, ordered sequence of records.
type Dataset struct {
	Key     int
	Label   string
	Records []Record
}

// Column extracts one field from every record, in order.
func (d Dataset) Column(field string) []float64 {
	out := make([]float64, len(d.Records))
	for i, r := range d.Records {
		out[i] = r.Field(field)
	}
	return out
}

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.Records) }

// Registry is a fixed, read-only set of datasets keyed by selector value.
type Registry struct {
	entries []Dataset
}

// NewRegistry builds a registry over the given datasets, in display order.
func NewRegistry(ds ...Dataset) *Registry {
	return &Registry{entries: ds}
}

// Lookup returns the dataset for key. ok is false for unknown keys.
func (r *Registry) Lookup(key int) (Dataset, bool) {
	for _, d := range r.entries {
		if d.Key == key {
			return d, true
		}
	}
	return Dataset{}, false
}

// Entries returns all datasets in display order.
func (r *Registry) Entries() []Dataset {
	out := make([]Dataset, len(r.entries))
	copy(out, r.entries)
	return out
}

var bundled = NewRegistry(
	Dataset{Key: 1, Label: "first data", Records: xy(firstData)},
	Dataset{Key: 2, Label: "second data", Records: xy(secondData)},
	Dataset{Key: 3, Label: "third data", Records: xy(thirdData)},
)

// Default returns the registry of bundled sample datasets.
func Default() *Registry { return bundled }

func xy(pairs [][2]float64) []Record {
	out := make([]Record, len(pairs))
	for i, p := range pairs {
		out[i] = Record{"x": p[0], "y": p[1]}
	}
	return out
}
