// Package watch re-exports a JSON record file whenever it changes.
//
// A FileWatcher observes a single file through fsnotify and debounces bursts
// of writes. ExportOnChange builds the callback that decodes the file and
// hands it to an exporter:
//
//	fw, _ := watch.NewFileWatcher(&watch.Config{Path: "records.json"}, nil)
//	defer fw.Stop()
//	err := fw.Watch(ctx, watch.ExportOnChange(ctx, exporter, "records.json", export.FormatCSV, ""))
package watch
