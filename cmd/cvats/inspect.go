package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-ats/internal/uploads"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Read the text back from an exported PDF or DOCX and report keyword coverage",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var (
	inspectText   bool
	inspectFormat string
)

func init() {
	inspectCmd.Flags().BoolVar(&inspectText, "text", false, "also print the extracted text")
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "text", "output format: text or json")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	res, err := uploads.Inspect(cmd.Context(), filepath.Base(path), data)
	if err != nil {
		return err
	}
	if !inspectText {
		res.Text = ""
	}

	out := cmd.OutOrStdout()
	if inspectFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintf(out, "%s (%s)\n", res.File, res.MimeType)
	if res.Pages > 0 {
		fmt.Fprintf(out, "pages: %d\n", res.Pages)
	}
	fmt.Fprintf(out, "characters: %d\n", res.Chars)
	fmt.Fprintf(out, "keyword coverage: %d%% (%d/%d)\n", res.Coverage.Percent, len(res.Coverage.Found), len(res.Coverage.Found)+len(res.Coverage.Missing))
	fmt.Fprintf(out, "found: %s\n", strings.Join(res.Coverage.Found, ", "))
	fmt.Fprintf(out, "missing: %s\n", strings.Join(res.Coverage.Missing, ", "))
	if res.Text != "" {
		fmt.Fprintf(out, "\n%s\n", res.Text)
	}
	return nil
}
