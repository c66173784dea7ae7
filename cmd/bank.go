package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/innovatides/atomquiz/internal/bank"
	"github.com/innovatides/atomquiz/internal/config"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate question banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the categories of the active question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		b, err := loadBank(cmd, cfg)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-14s  %-16s  %-12s  %9s  %5s\n", "Key", "Name", "Difficulty", "Questions", "Notes")
		fmt.Fprintln(w, strings.Repeat("─", 66))
		for _, c := range b.Categories() {
			fmt.Fprintf(w, "%-14s  %-16s  %-12s  %9d  %5d\n",
				c.Key, c.DisplayName, c.Difficulty, c.Len(), len(c.Notes))
		}
		fmt.Fprintf(w, "\n%d categories, %d questions\n", b.Len(), b.TotalQuestions())
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a question bank file (the built-in bank if omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		b, err := bank.Open(path)
		if err != nil {
			return err
		}
		name := path
		if name == "" {
			name = "built-in bank"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d categories, %d questions)\n", name, b.Len(), b.TotalQuestions())
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}
