package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/innovatides/atomquiz/internal/achievements"
	"github.com/innovatides/atomquiz/internal/learner"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics, tier and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		d, err := e.service.Dashboard(cmd.Context())
		if err != nil {
			return fmt.Errorf("load statistics: %w", err)
		}
		printStats(cmd.OutOrStdout(), d, e.service.Bank().DisplayNames())
		return nil
	},
}

func printStats(w io.Writer, d learner.Dashboard, categories []string) {
	s := d.Summary
	fmt.Fprintf(w, "Quizzes taken:  %d (goal %d, %d%%)\n", s.TotalAttempts, d.Goal, d.GoalProgress)
	fmt.Fprintf(w, "Average score:  %d%%\n", s.AveragePercentage)
	fmt.Fprintf(w, "Best score:     %d%%\n", s.BestPercentage)
	fmt.Fprintf(w, "Tier:           %s\n", d.Achievements.Tier)

	fmt.Fprintln(w, "\nBadges")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, b := range achievements.AllBadges() {
		mark := " "
		if d.Achievements.Has(b) {
			mark = "✓"
		}
		fmt.Fprintf(w, " %s %-22s %s\n", mark, b.DisplayName(), b.Description())
	}

	fmt.Fprintln(w, "\nBy category")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, c := range categories {
		fmt.Fprintf(w, " %-24s %4d\n", c, s.PerCategoryCounts[c])
	}
	// Results from categories no longer in the bank, in name order.
	var extra []string
	for c := range s.PerCategoryCounts {
		if !slices.Contains(categories, c) {
			extra = append(extra, c)
		}
	}
	slices.Sort(extra)
	for _, c := range extra {
		fmt.Fprintf(w, " %-24s %4d\n", c, s.PerCategoryCounts[c])
	}

	fmt.Fprintf(w, "\nRecent (%d)\n", len(s.RecentResults))
	fmt.Fprintln(w, strings.Repeat("─", 40))
	if len(s.RecentResults) == 0 {
		fmt.Fprintln(w, " No quizzes taken yet.")
	}
	for _, r := range s.RecentResults {
		fmt.Fprintf(w, " %s  %-16s %2d/%-2d %3d%%\n", r.Date, r.Category, r.Score, r.TotalQuestions, r.Percentage())
	}
}
