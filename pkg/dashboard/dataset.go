package dashboard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"portvr/painel/pkg/export"
)

// Dataset names.
const (
	DatasetWorkers     = "workers"
	DatasetTrainings   = "trainings"
	DatasetPerformance = "performance"
	DatasetHistory     = "history"
)

// dateSuffixLayout is appended to the filename of date-filtered exports.
const dateSuffixLayout = "02-01-2006"

// ErrDateFilterUnsupported is returned when a date filter is applied to a
// dataset without a date column.
var ErrDateFilterUnsupported = errors.New("dataset does not support date filtering")

// UnknownDatasetError is returned when a dataset name is not registered.
type UnknownDatasetError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownDatasetError) Error() string {
	return fmt.Sprintf("unknown dataset %q (available: %s)", e.Name, strings.Join(Names(), ", "))
}

// Filter narrows a dataset the way the dashboard pages do before exporting.
type Filter struct {
	// Search is matched case-insensitively as a substring of the
	// dataset's searchable fields. Empty matches everything.
	Search string

	// Date keeps only entries completed on the same calendar day.
	Date *time.Time
}

// Dataset is an exportable table of the dashboard.
type Dataset struct {
	Name string

	// Filename is the export filename without extension.
	Filename string

	Description string

	rows func() []row
}

// row is one dataset entry with the text its search runs against.
type row struct {
	record   export.Record
	searchIn []string
	date     string // YYYY-MM-DD, empty when the dataset is undated
}

var registry = map[string]*Dataset{
	DatasetWorkers: {
		Name:        DatasetWorkers,
		Filename:    "trabalhadores",
		Description: "Worker roster with current training progress",
		rows: func() []row {
			workers := Workers()
			rows := make([]row, len(workers))
			for i, w := range workers {
				rows[i] = row{record: w.Record(), searchIn: []string{w.Name, w.Department, w.Position}}
			}
			return rows
		},
	},
	DatasetTrainings: {
		Name:        DatasetTrainings,
		Filename:    "treinamentos-ativos",
		Description: "Active VR training sessions",
		rows: func() []row {
			trainings := ActiveTrainings()
			rows := make([]row, len(trainings))
			for i, t := range trainings {
				rows[i] = row{record: t.Record(), searchIn: []string{t.WorkerName, t.Department, t.TrainingModule}}
			}
			return rows
		},
	},
	DatasetPerformance: {
		Name:        DatasetPerformance,
		Filename:    "desempenho",
		Description: "Monthly accuracy, completion time and safety scores",
		rows: func() []row {
			perf := Performance()
			rows := make([]row, len(perf))
			for i, p := range perf {
				rows[i] = row{record: p.Record(), searchIn: []string{p.Month}}
			}
			return rows
		},
	},
	DatasetHistory: {
		Name:        DatasetHistory,
		Filename:    "relatorio-treinamentos",
		Description: "Completed training sessions",
		rows: func() []row {
			history := History()
			rows := make([]row, len(history))
			for i, h := range history {
				rows[i] = row{
					record:   h.Record(),
					searchIn: []string{h.WorkerName, h.TrainingModule},
					date:     h.CompletionDate,
				}
			}
			return rows
		},
	},
}

// Lookup returns the dataset registered under name.
func Lookup(name string) (*Dataset, error) {
	ds, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &UnknownDatasetError{Name: name}
	}
	return ds, nil
}

// Names returns the registered dataset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Datasets returns all registered datasets sorted by name.
func Datasets() []*Dataset {
	names := Names()
	out := make([]*Dataset, len(names))
	for i, name := range names {
		out[i] = registry[name]
	}
	return out
}

// Records returns the filtered records of the named dataset.
func Records(name string, f Filter) ([]export.Record, error) {
	ds, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return ds.Records(f)
}

// Dated reports whether the dataset supports date filtering.
func (d *Dataset) Dated() bool {
	rows := d.rows()
	return len(rows) > 0 && rows[0].date != ""
}

// Len returns the unfiltered number of entries.
func (d *Dataset) Len() int {
	return len(d.rows())
}

// Records returns the entries matching f as export records. The result may
// be empty; the exporter rejects empty data.
func (d *Dataset) Records(f Filter) ([]export.Record, error) {
	if f.Date != nil && !d.Dated() {
		return nil, fmt.Errorf("%s: %w", d.Name, ErrDateFilterUnsupported)
	}

	search := strings.ToLower(f.Search)
	records := []export.Record{}
	for _, r := range d.rows() {
		if !r.matches(search) {
			continue
		}
		if f.Date != nil {
			ok, err := sameDay(r.date, *f.Date)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", d.Name, err)
			}
			if !ok {
				continue
			}
		}
		records = append(records, r.record)
	}
	return records, nil
}

// ExportFilename returns the filename for an export with filter f. Date
// filtered exports get a -dd-MM-yyyy suffix.
func (d *Dataset) ExportFilename(f Filter) string {
	if f.Date == nil {
		return d.Filename
	}
	return d.Filename + "-" + f.Date.Format(dateSuffixLayout)
}

// Request builds an export request for the filtered dataset.
func (d *Dataset) Request(format export.Format, f Filter) (export.Request, error) {
	records, err := d.Records(f)
	if err != nil {
		return export.Request{}, err
	}
	return export.Request{
		Filename: d.ExportFilename(f),
		Format:   format,
		Data:     records,
	}, nil
}

func (r row) matches(search string) bool {
	if search == "" {
		return true
	}
	for _, s := range r.searchIn {
		if strings.Contains(strings.ToLower(s), search) {
			return true
		}
	}
	return false
}

// sameDay compares a YYYY-MM-DD date with the calendar day of t in t's
// location.
func sameDay(date string, t time.Time) (bool, error) {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", date, err)
	}
	y1, m1, d1 := d.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2, nil
}

// ParseDate parses a filter date given as YYYY-MM-DD or DD/MM/YYYY.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.DateOnly, "02/01/2006", dateSuffixLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or DD/MM/YYYY", s)
}
