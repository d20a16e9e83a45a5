package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"resume-ats/internal/analyses"
	"resume-ats/internal/i18n"
)

var scoreCmd = &cobra.Command{
	Use:   "score FILE...",
	Short: "Score one or more JSON CVs for ATS compatibility",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScore,
}

var (
	scoreFormat      string
	scoreConcurrency int
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreFormat, "format", "f", "text", "output format: text or json")
	scoreCmd.Flags().IntVarP(&scoreConcurrency, "concurrency", "c", 4, "number of files scored at once")

	rootCmd.AddCommand(scoreCmd)
}

type scoredFile struct {
	File   string          `json:"file"`
	Report analyses.Report `json:"report"`
}

func runScore(cmd *cobra.Command, args []string) error {
	if scoreFormat != "text" && scoreFormat != "json" {
		return fmt.Errorf("unknown format %q (use text or json)", scoreFormat)
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

	results, err := scoreFiles(cmd.Context(), analyses.NewService(logger), resolveLocale(cfg), args, scoreConcurrency)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scoreFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		writeReport(out, res)
	}
	return nil
}

// scoreFiles scores every path, keeping the input order in the result.
func scoreFiles(ctx context.Context, svc *analyses.Service, loc i18n.Locale, paths []string, concurrency int) ([]scoredFile, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]scoredFile, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, concurrency))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := readResume(path)
			if err != nil {
				return err
			}
			results[i] = scoredFile{File: path, Report: svc.Score(r, loc)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeReport(w io.Writer, res scoredFile) {
	loc := res.Report.Locale
	fmt.Fprintf(w, "%s\n", res.File)
	fmt.Fprintf(w, "%s: %d/100\n", i18n.T(loc, i18n.ScoreTitle), res.Report.Score)
	fmt.Fprintf(w, "%s: %s\n", i18n.T(loc, i18n.ScoreRecommendation), res.Report.Recommendation)

	writeList(w, i18n.T(loc, i18n.ScoreIssues), res.Report.Issues)
	writeList(w, i18n.T(loc, i18n.ScoreSuggestions), res.Report.Suggestions)

	fmt.Fprintf(w, "%s:\n", i18n.T(loc, i18n.ScoreKeywordsFound))
	if len(res.Report.Keywords) == 0 {
		fmt.Fprintf(w, "  %s\n", i18n.T(loc, i18n.ScoreKeywordsNone))
	} else {
		fmt.Fprintf(w, "  %s\n", strings.Join(res.Report.Keywords, ", "))
	}
	fmt.Fprintf(w, "%s:\n", i18n.T(loc, i18n.ScoreMissing))
	if len(res.Report.MissingKeywords) == 0 {
		fmt.Fprintf(w, "  %s\n", i18n.T(loc, i18n.ScoreMissingNone))
	} else {
		fmt.Fprintf(w, "  %s\n", strings.Join(res.Report.MissingKeywords, ", "))
	}
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}
