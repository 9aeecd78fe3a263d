package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orayew2002/phase-calendar/calendar"
	"github.com/orayew2002/phase-calendar/config"
	"github.com/orayew2002/phase-calendar/domain"
	"github.com/orayew2002/phase-calendar/events"
)

func NewSampleCommand() *cobra.Command {
	var (
		output string
		count  int
		from   string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sample input table with random events",
		Long: `Write a sample input workbook with the columns Title, Phase, Start and End.

Titles are random. Events walk forward from --from through the configured
phases, and every fourth title repeats its phase name.`,
		RunE: func(c *cobra.Command, _ []string) error {
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			start, err := time.Parse("2006-01-02", from)
			if err != nil {
				return fmt.Errorf("invalid --from %q: %w", from, err)
			}

			cfg, err := loadConfig(c, "", output, "")
			if err != nil {
				return err
			}

			evs := domain.GenerateEvents(count, start, cfg.Phases.Names())
			if err := events.WriteSampleFile(evs, output); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"events": len(evs),
				"path":   output,
			}).Info("wrote sample input")
			fmt.Fprintln(c.OutOrStdout(), color.GreenString("done:"), output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultInput, "path of the sample workbook")
	cmd.Flags().IntVarP(&count, "count", "n", 20, "number of events")
	cmd.Flags().StringVar(&from, "from", time.Now().Format("2006-01-02"), "date of the first event (YYYY-MM-DD)")

	return cmd
}

func NewInspectCommand() *cobra.Command {
	var input, sheet string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the date range and months an input table covers",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := loadConfig(c, input, "", sheet)
			if err != nil {
				return err
			}

			evs, months, err := loadEvents(cfg, logrus.StandardLogger())
			if err != nil {
				return err
			}

			from, to, _ := calendar.Range(evs)
			bold := color.New(color.Bold)

			out := c.OutOrStdout()
			fmt.Fprintf(out, "%s %d\n", bold.Sprint("Events:"), len(evs))
			fmt.Fprintf(out, "%s %s to %s\n", bold.Sprint("Date range:"), from.Format("2006-01-02"), to.Format("2006-01-02"))
			fmt.Fprintln(out, bold.Sprint("Months:"))
			for _, m := range months {
				fmt.Fprintf(out, "  %s\n", m)
			}

			unknown := unknownPhases(evs, cfg.Phases)
			for _, phase := range unknown {
				fmt.Fprintf(out, "%s phase %q has no colour and renders without fill\n", color.YellowString("warning:"), phase)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", config.DefaultInput, "path to the input event table (.xlsx or .csv)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "input sheet name (default: first sheet)")

	return cmd
}

// unknownPhases lists, in first-seen order, the non-blank phases missing from the colour table.
func unknownPhases(evs []domain.Event, phases config.PhaseColors) []string {
	seen := make(map[string]bool)

	var unknown []string
	for _, e := range evs {
		if e.Phase == "" || seen[e.Phase] {
			continue
		}
		seen[e.Phase] = true
		if _, ok := phases.Color(e.Phase); !ok {
			unknown = append(unknown, e.Phase)
		}
	}

	return unknown
}
