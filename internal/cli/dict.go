package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Dictionary commands",
	}

	cmd.AddCommand(newDictImportCmd())
	cmd.AddCommand(newDictLookupCmd())

	return cmd
}

func newDictImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load a word frequency file into storage",
		Long: `Load a word frequency file into storage for later runs.

Each line holds a word optionally followed by its corpus frequency. Lines
starting with # are ignored. Use with --storage redis to keep the list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.DictionaryService.LoadFromFile(cmd.Context(), args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Imported %d words", app.DictionaryService.WordCount()))
			return nil
		},
	}
}

func newDictLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Check whether a word is playable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.LoadDictionary(cmd.Context(), cfg.DictionaryPath); err != nil {
				return err
			}

			word := strings.ToLower(args[0])
			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			if !app.DictionaryService.IsValidWord(word) {
				out.PrintMessage(fmt.Sprintf("%s is not in the dictionary", word))
				return nil
			}
			freq := app.DictionaryService.Frequencies()[word]
			out.PrintMessage(fmt.Sprintf("%s is playable (frequency %g)", word, freq))
			return nil
		},
	}
}
