package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"portvr/painel/pkg/cli"
	"portvr/painel/pkg/config"
	"portvr/painel/pkg/export"
	"portvr/painel/pkg/schedule"
)

type scheduleFlags struct {
	name      string
	cron      string
	dataset   string
	format    string
	search    string
	outputDir string
	once      bool
}

func newScheduleCmd(a *app) *cobra.Command {
	var flags scheduleFlags

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run recurring dataset exports",
		Long: `Run dataset exports on cron schedules until interrupted.

Jobs come from the schedule.jobs section of the configuration file. A job
can also be given on the command line with --cron and --dataset. Each run
writes a new file named after the dataset with a timestamp suffix.

Examples:
  # Export the history every night at 03:00
  portvr schedule --cron "0 3 * * *" --dataset history --format xlsx

  # Run the configured jobs once and exit
  portvr schedule --once`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd, a, flags)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "job name (default: dataset name)")
	cmd.Flags().StringVar(&flags.cron, "cron", "", "cron expression, e.g. \"0 3 * * *\" or @daily")
	cmd.Flags().StringVarP(&flags.dataset, "dataset", "d", "", "dataset to export")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "export format (default from config)")
	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "keep only entries matching this text")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "directory to write to (default from config)")
	cmd.Flags().BoolVar(&flags.once, "once", false, "run every job once and exit")
	cmd.MarkFlagsRequiredTogether("cron", "dataset")
	return cmd
}

func runSchedule(cmd *cobra.Command, a *app, flags scheduleFlags) error {
	defer a.flushMetrics()

	jobs := scheduleJobs(a.cfg, flags)
	if len(jobs) == 0 {
		return cli.NewConfigError("schedule.jobs", "no jobs configured: use --cron and --dataset or the config file")
	}

	exporter := a.newExporter(a.outputSaver(cmd, flags.outputDir, false))
	scheduler := schedule.NewScheduler(exporter,
		schedule.WithLogger(a.logger.With("component", "scheduler")),
		schedule.WithObserver(a.collector),
	)
	for _, job := range jobs {
		if err := scheduler.Add(job); err != nil {
			return cli.NewConfigError("schedule", err.Error())
		}
	}

	if flags.once {
		var failed int
		for _, job := range scheduler.Jobs() {
			result, err := scheduler.RunNow(cmd.Context(), job)
			a.collector.ObserveScheduledRun(job.Name, err)
			if err != nil {
				failed++
				a.logger.Error("scheduled export failed", "job", job.Name, "error", err)
				continue
			}
			if err := a.print(cmd, newExportView(result)); err != nil {
				return err
			}
		}
		if failed > 0 {
			return cli.NewCommandError("schedule", fmt.Errorf("%d of %d jobs failed", failed, len(jobs)))
		}
		return nil
	}

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	if err := scheduler.Start(ctx); err != nil {
		return cli.NewCommandError("schedule", err)
	}
	if next := scheduler.NextRun(); next != nil {
		a.logger.Info("waiting for next export", "next_run", next.Format(time.RFC3339))
	}

	<-ctx.Done()
	scheduler.Stop()
	return nil
}

// scheduleJobs returns the configured jobs followed by the job given on the
// command line, if any.
func scheduleJobs(cfg *config.Config, flags scheduleFlags) []schedule.Job {
	var jobs []schedule.Job
	for _, jc := range cfg.Schedule.Jobs {
		jobs = append(jobs, schedule.Job{
			Name:    jc.Name,
			Spec:    jc.Cron,
			Dataset: jc.Dataset,
			Format:  export.Format(strings.ToLower(jc.Format)),
			Search:  jc.Search,
		})
	}

	if flags.cron != "" {
		format := flags.format
		if format == "" {
			format = cfg.Export.DefaultFormat
		}
		jobs = append(jobs, schedule.Job{
			Name:    flags.name,
			Spec:    flags.cron,
			Dataset: flags.dataset,
			Format:  export.Format(strings.ToLower(format)),
			Search:  flags.search,
		})
	}
	return jobs
}
