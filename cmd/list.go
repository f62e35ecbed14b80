package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/patterns-prep/patterns-prep/catalog"
	"github.com/patterns-prep/patterns-prep/patterns"
)

// listCmd prints the pattern catalog: number, slug, and summary.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available pattern demos",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		cat, err := catalog.Load()
		if err != nil {
			logrus.Fatalf("load pattern catalog: %v", err)
		}

		for _, d := range patterns.All() {
			summary := ""
			if entry, ok := cat.Entry(d.Slug); ok {
				summary = entry.Summary
			}
			fmt.Fprintf(out, "%2d. %-24s %s\n", d.Number, d.Slug, summary)
		}
	},
}
