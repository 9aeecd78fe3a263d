package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/orayew2002/phase-calendar/calendar"
	"github.com/orayew2002/phase-calendar/config"
	"github.com/orayew2002/phase-calendar/events"
)

var version = "dev"

var (
	logLevel   = "info"
	configPath = ""
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(os.Stderr, "Error: %v\n", err)

	switch {
	case errors.Is(err, calendar.ErrEmptyDateRange):
		fmt.Fprintln(os.Stderr, "  - No row of the input has a Start value that reads as a date.")
		fmt.Fprintln(os.Stderr, "  - Run with '-l debug' to see why each row was skipped.")
	case errors.Is(err, events.ErrMissingColumn):
		fmt.Fprintf(os.Stderr, "  - The first row must name the columns %v.\n", events.Columns)
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintln(os.Stderr, "  - Check the --input path, or create a sample with 'phasecal sample'.")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phasecal",
		Short: "Render a colour-coded month calendar from a table of production phases",
		Long: `phasecal reads a table of events with the columns Title, Phase, Start and End
and writes a month-by-month calendar workbook. Each day is filled with the
colour of the phase of the first event covering it, and the titles of all
covering events are listed under the date.

Rows whose Start is not a date are skipped. A missing End makes a single-day event.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", "", "YAML config file with phase colours and theme")

	var (
		input, output, sheet string
		noProgress           bool
	)

	cmd.Flags().StringVarP(&input, "input", "i", config.DefaultInput, "path to the input event table (.xlsx or .csv)")
	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutput, "path to the output calendar workbook")
	cmd.Flags().StringVar(&sheet, "sheet", "", "input sheet name (default: first sheet)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "do not draw a progress bar")

	cmd.RunE = func(c *cobra.Command, _ []string) error {
		cfg, err := loadConfig(c, input, output, sheet)
		if err != nil {
			return err
		}

		progress := c.ErrOrStderr()
		if noProgress {
			progress = nil
		}

		months, err := renderCalendar(cfg, progress, logrus.StandardLogger())
		if err != nil {
			return err
		}

		fmt.Fprintln(c.OutOrStdout(), color.GreenString("done:"), cfg.Output, fmt.Sprintf("(%d months)", months))
		return nil
	}

	cmd.AddCommand(
		NewSampleCommand(),
		NewInspectCommand(),
		NewVersionCommand(),
	)

	return cmd
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("phasecal %s\n", version)
		},
	}
}

// loadConfig reads --config (or the defaults) and applies the path flags the
// user set explicitly on top of it.
func loadConfig(cmd *cobra.Command, input, output, sheet string) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return config.Config{}, err
		}
		logrus.WithField("path", configPath).Debug("loaded config")
	}

	flags := cmd.Flags()
	if flags.Changed("input") || cfg.Input == "" {
		cfg.Input = input
	}
	if flags.Changed("output") || cfg.Output == "" {
		cfg.Output = output
	}
	if flags.Changed("sheet") {
		cfg.Sheet = sheet
	}

	return cfg, nil
}
