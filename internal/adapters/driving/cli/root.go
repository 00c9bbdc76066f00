// Package cli implements the qc2md command-line interface.
// It is a driving adapter: it parses flags, wires the driven adapters
// into the core conversion service, and writes the output file.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	refsFlag      bool
	chronoFlag    bool
	dialogueFlag  string
	refFormatFlag string
	pickRefsFlag  bool
	verboseFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "qc2md [report]",
	Short: "Convert mpvQC reports to markdown",
	Long: `Convert an mpvQC review report into a markdown checklist.

The checklist groups notes by category. With --refs, the subtitle
dialogue lines on screen at each note's timestamp are quoted above
its checklist entry; when several lines match, an interactive picker
lets you choose the right one.

The output file is written next to the report with a .md extension.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	rootCmd.Flags().BoolVarP(&refsFlag, "refs", "r", false, "add quotation blocks for line references above report entries")
	rootCmd.Flags().BoolVarP(&chronoFlag, "chrono", "c", false, "group most notes together in chronological order")
	rootCmd.Flags().StringVarP(&dialogueFlag, "dialogue", "d", "", "dialogue file to source references from, where appropriate")
	rootCmd.Flags().StringVar(&refFormatFlag, "ref-format", "full", "how to format imported dialogue lines (full or text)")
	rootCmd.Flags().BoolVar(&pickRefsFlag, "pick-refs", true, "display a picker interface if there are multiple matching reference lines")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
