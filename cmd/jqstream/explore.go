package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shapestone/jqstream/internal/obslog"
	"github.com/shapestone/jqstream/pkg/jqstream"
)

// NewExploreCommand builds the `jqstream explore [file]` subcommand: an
// interactive TUI that steps the sanitized token stream one Next() call at
// a time and renders the live scope stack alongside recent tokens.
func NewExploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [file]",
		Short: "Interactively step through a document's token stream",
		Long: `explore opens an interactive viewer that pulls one token at a time
from the sanitized stream and displays the current scope stack and the most
recently produced tokens, useful for seeing exactly how a document is
tokenized and validated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExplore,
	}
}

func runExplore(cmd *cobra.Command, args []string) error {
	sessionID := uuid.New()

	logger, err := obslog.New(flagVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	sugar := logger.Sugar().With("session_id", sessionID.String())

	var in *os.File
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	} else {
		in = os.Stdin
	}

	sugar.Debug("explore session starting")
	stream := jqstream.Parse(in)

	p := tea.NewProgram(newExploreModel(stream, sugar), tea.WithAltScreen())
	_, err = p.Run()
	if err != nil {
		return err
	}
	sugar.Debug("explore session ended")
	return nil
}
