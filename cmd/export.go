package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/innovatides/atomquiz/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profile, settings and results as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		doc, err := e.service.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("build export: %w", err)
		}

		if out == "" || out == "-" {
			return export.Write(cmd.OutOrStdout(), doc)
		}
		if err := writeExportFile(out, doc); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d results to %s\n", len(doc.QuizResults), out)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace stored results with those from an export file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		doc, err := export.Read(f)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.service.Import(cmd.Context(), doc); err != nil {
			return fmt.Errorf("import: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d results exported %s\n", len(doc.QuizResults), doc.ExportDate)
		return nil
	},
}

// writeExportFile writes doc to path, reporting a failed close as an error.
func writeExportFile(path string, doc export.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.Write(f, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
}
