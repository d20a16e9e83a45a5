package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resume-ats/internal/bootstrap"
	"resume-ats/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export a JSON CV to PDF (headless Chrome) or DOCX",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var (
	exportOut    string
	exportFormat string
	exportName   string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file or directory (default current directory)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "export format: pdf or docx")
	exportCmd.Flags().StringVar(&exportName, "filename", "", "download name (default is the full name)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	r, err := readResume(args[0])
	if err != nil {
		return err
	}

	app, err := bootstrap.Build(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	res, err := app.Exporter.Export(cmd.Context(), export.Request{
		Resume:   r,
		Locale:   resolveLocale(cfg),
		Format:   format,
		Filename: exportName,
	})
	if err != nil {
		var exportErr *export.Error
		if errors.As(err, &exportErr) {
			logger.Debug("export attempts", zap.Error(err))
			return errors.New(exportErr.Message)
		}
		return err
	}

	path := outputPath(exportOut, res.Filename)
	if err := os.WriteFile(path, res.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (profile %s, %d attempt(s))\n", path, res.Profile, res.Attempts)
	if res.StorageKey != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "stored as %s\n", res.StorageKey)
	}
	return nil
}

// outputPath places name inside out when out is empty or an existing directory.
func outputPath(out, name string) string {
	if out == "" {
		return name
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, name)
	}
	return out
}
