package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atomquiz",
	Short: "Quiz yourself on nuclear science at work",
	Long:  "AtomQuiz: terminal quizzes on how nuclear techniques are used in agriculture, medicine and industry.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ATOMQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank JSON file (overrides ATOMQUIZ_BANK env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
