/*
Package cli provides command-line helpers for the portvr command.

Output Formatting:

Command results are printed as text or JSON. Results implementing Table are
printed as aligned columns in text mode:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Signal Handling:

Long-running commands (schedule, watch) stop on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
