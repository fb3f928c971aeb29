package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LGuichet/CareerForge/internal/editor"
	"github.com/LGuichet/CareerForge/internal/experience"
	"github.com/LGuichet/CareerForge/internal/gateway"
	"github.com/LGuichet/CareerForge/internal/observability"
)

var (
	timelineAPIURL  string
	timelineVerbose bool
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the career timeline and the period proposed for editing",
	Long: `Fetch the stored experiences, project them into an ordered timeline and
show the gap the edit form would propose filling next.`,
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().StringVar(&timelineAPIURL, "api-url", "http://localhost:8080", "Base URL of the CareerForge API")
	timelineCmd.Flags().BoolVar(&timelineVerbose, "verbose", false, "Print detailed timeline information")
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	ed := editor.New(gateway.NewClient(timelineAPIURL))
	tl, err := ed.Timeline(ctx)
	if err != nil {
		return fmt.Errorf("failed to load timeline: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTimeline(tl)

	if timelineVerbose {
		printer.PrintGaps(tl.Gaps(ed.CareerStart()))
	}

	period, _, ok := ed.Selection()
	if !ok {
		return fmt.Errorf("no period selected after timeline load")
	}

	var selected *experience.Experience
	if exp, found, err := ed.SelectedExperience(ctx); err == nil && found {
		selected = &exp
	}
	printer.PrintSelection(period, selected)
	return nil
}
