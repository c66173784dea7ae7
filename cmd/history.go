package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/innovatides/atomquiz/internal/scoring"
	"github.com/innovatides/atomquiz/internal/stats"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List quiz results, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		h, err := e.service.History(cmd.Context())
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(h) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No quizzes taken yet.")
			return nil
		}

		n := len(h)
		if limit > 0 {
			n = limit
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-10s  %-16s  %5s  %4s  %-18s  %s\n", "Date", "Category", "Score", "Pct", "Verdict", "ID")
		fmt.Fprintln(w, strings.Repeat("─", 100))
		for _, r := range stats.Recent(h, n) {
			pct := r.Percentage()
			fmt.Fprintf(w, "%-10s  %-16s  %2d/%-2d  %3d%%  %-18s  %s\n",
				r.Date, r.Category, r.Score, r.TotalQuestions, pct, scoring.Verdict(pct), r.ID)
		}
		fmt.Fprintf(w, "\n%d of %d results\n", min(n, len(h)), len(h))
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 0, "Show at most this many results (0 for all)")
}
