package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-ats/resume/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Render the printable preview of a JSON CV as HTML or DOCX",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var (
	previewOut  string
	previewDOCX bool
)

func init() {
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "output file (default stdout for HTML)")
	previewCmd.Flags().BoolVar(&previewDOCX, "docx", false, "render DOCX instead of HTML")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := readResume(args[0])
	if err != nil {
		return err
	}
	loc := resolveLocale(cfg)

	var out []byte
	if previewDOCX {
		if previewOut == "" {
			return fmt.Errorf("--out is required with --docx")
		}
		out, err = render.RenderDOCX(r, loc)
	} else {
		out, err = render.RenderHTML(r, loc)
	}
	if err != nil {
		return err
	}

	if previewOut == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(previewOut, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", previewOut, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", previewOut)
	return nil
}
