package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/letterswap/internal/model"
	"github.com/mcoot/letterswap/internal/services/bot"
)

func newVocabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocab",
		Short: "Show how many words the bot knows at each difficulty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.LoadDictionary(cmd.Context(), cfg.DictionaryPath); err != nil {
				return err
			}

			words := app.DictionaryService.Words()
			freqs := app.DictionaryService.Frequencies()

			result := VocabResult{DictionarySize: len(words)}
			for _, d := range model.ValidDifficulties() {
				profile, err := bot.ProfileFor(d)
				if err != nil {
					return err
				}
				vocab := bot.BuildVocabulary(words, freqs, profile.WordFrequencyCutoff)
				result.Difficulties = append(result.Difficulties, VocabEntry{
					Difficulty: string(d),
					Cutoff:     profile.WordFrequencyCutoff,
					Size:       vocab.Size(),
				})
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
