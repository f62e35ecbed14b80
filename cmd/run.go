package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/patterns-prep/patterns-prep/patterns"
)

var runAll bool // run every demo in menu order instead of a single one

// runCmd executes one demo (or all of them) without the interactive menu.
var runCmd = &cobra.Command{
	Use:   "run [pattern]",
	Short: "Run a pattern demo without the menu",
	Long: `Run a single pattern demo non-interactively. The pattern may be given as
its menu number (1-15) or its slug, e.g. 'run builder' or 'run 14'.
With --all, every demo runs once in menu order.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		if runAll {
			RunAllDemos(out)
			return
		}

		if len(args) != 1 {
			logrus.Fatalf("expected a pattern number or slug; see 'patterns-prep list'")
		}
		demo, ok := LookupDemo(args[0])
		if !ok {
			logrus.Fatalf("unknown pattern %q; see 'patterns-prep list'", args[0])
		}

		logrus.Debugf("running demo %q", demo.Slug)
		demo.Run(out)
	},
}

// LookupDemo resolves a menu number or slug to its demo.
func LookupDemo(key string) (patterns.Demo, bool) {
	if n, err := strconv.Atoi(key); err == nil {
		return patterns.ByNumber(n)
	}
	return patterns.BySlug(strings.ToLower(strings.TrimSpace(key)))
}

// RunAllDemos runs every demo in menu order with progress banners.
func RunAllDemos(out io.Writer) {
	all := patterns.All()

	fmt.Fprintln(out, "🚀 DESIGN PATTERNS QUICK DEMO")
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "Running all pattern demos in sequence...")
	fmt.Fprintln(out, strings.Repeat("=", 60))

	for i, demo := range all {
		fmt.Fprintf(out, "\n%s %d/%d: %s %s\n",
			strings.Repeat("=", 20), i+1, len(all), demo.Title, strings.Repeat("=", 20))
		demo.Run(out)
		fmt.Fprintf(out, "✅ %s demo completed successfully!\n", demo.Title)
	}
}

func init() {
	runCmd.Flags().BoolVar(&runAll, "all", false, "Run all fifteen demos in menu order")
}
