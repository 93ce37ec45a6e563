// Package schedule runs recurring exports of dashboard datasets.
//
// Jobs use cron syntax ("0 3 * * *", "@daily"). Each run exports the
// dataset with a timestamp appended to its default filename, so reports
// accumulate instead of overwriting each other:
//
//	s := schedule.NewScheduler(exporter)
//	_ = s.Add(schedule.Job{Spec: "0 3 * * *", Dataset: "history", Format: export.FormatXLSX})
//	_ = s.Start(ctx)
package schedule
