package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/innovatides/atomquiz/internal/app"
)

// runApp opens the store, builds the learner service, and launches the TUI.
// A non-empty category skips the splash and starts a quiz.
func runApp(cmd *cobra.Command, category string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = ""
	}
	return app.Run(app.Options{
		Service:       e.service,
		ExportDir:     exportDir,
		StartCategory: category,
	})
}
