package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"resume-ats/resume/model"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the sample CV as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(model.Sample())
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
