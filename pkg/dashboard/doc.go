// Package dashboard holds the datasets shown by the Port VR training panel
// and turns them into export records.
//
// Each dataset (workers, trainings, performance, history) has a default
// export filename and a set of searchable fields. Filters mirror what the
// panel pages apply before exporting: a case-insensitive search and, for the
// training history, a calendar-day filter that also suffixes the filename
// with the selected date.
//
//	ds, _ := dashboard.Lookup("history")
//	req, err := ds.Request(export.FormatXLSX, dashboard.Filter{Search: "roberto"})
package dashboard
