package main

import (
	"github.com/spf13/cobra"
)

var (
	flagPretty   bool
	flagSuppress bool
	flagVerbose  bool
)

// NewRootCommand builds the jqstream command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jqstream",
		Short: "Stream a JQ-subset path query over JSON text without materializing it",
		Long: `jqstream pulls a JSON document one token at a time through a chain of
stream operators (at_key, at_index, .[], slurp) and renders the result,
never building a document tree of the input. The rendered output is
collected in full before it is written.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flagPretty, "pretty", false, "render output as indented JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSuppress, "suppress", false, "suppress type-mismatch errors in path operators (the ? forms)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewExploreCommand())

	return rootCmd
}
