package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shapestone/jqstream/internal/obslog"
	"github.com/shapestone/jqstream/internal/pathlang"
	"github.com/shapestone/jqstream/pkg/jqchain"
)

// NewRunCommand builds the `jqstream run <path-expr> [file]` subcommand.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <path-expr> [file]",
		Short: "Evaluate a path expression against a JSON document",
		Long: `run parses a path expression such as ".users[0].name" or
".items[]?" and streams it over the given file (or stdin, if omitted),
writing the result to stdout without ever materializing the input or
output as a tree.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runRun,
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := obslog.New(flagVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	sugar := logger.Sugar()

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	program, err := pathlang.Compile(args[0])
	if err != nil {
		return err
	}
	if flagSuppress || cfg.Suppress {
		program.ForceSuppress()
	}

	var in *os.File
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[1], err)
		}
		defer f.Close()
		in = f
	} else {
		in = os.Stdin
	}

	start := time.Now()
	chain := program.Apply(jqchain.New(in))

	var out string
	if flagPretty || cfg.Pretty || program.Pretty() {
		out, err = chain.ToStringPretty()
	} else {
		out, err = chain.ToString()
	}
	if err != nil {
		sugar.Debugw("query failed", "path_expr", args[0], "elapsed", time.Since(start).String())
		return err
	}

	sugar.Debugw("query complete",
		"path_expr", args[0],
		"elapsed", time.Since(start).String(),
		"output_bytes", len(out),
	)

	fmt.Println(out)
	return nil
}
