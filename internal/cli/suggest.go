package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/letterswap/internal/model"
	"github.com/mcoot/letterswap/internal/services/bot"
)

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <word> <card>...",
		Short: "Show what the bot would do with a word and hand",
		Long: `Run one bot turn on the given word and hand and print the decision.

Cards are single letters or * for a wildcard. The decision is random for
easy and medium; use --seed to reproduce it.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := model.ParseDifficulty(cfg.Difficulty)
			if err != nil {
				return err
			}

			word := strings.ToLower(args[0])
			hand := make([]model.Card, 0, len(args)-1)
			for _, arg := range args[1:] {
				card, err := model.ParseCard(arg)
				if err != nil {
					return err
				}
				hand = append(hand, card)
			}

			if err := app.LoadDictionary(cmd.Context(), cfg.DictionaryPath); err != nil {
				return err
			}

			b, err := bot.New(difficulty, hand, app.DictionaryService, app.Random, app.Logger)
			if err != nil {
				return err
			}

			// Polling at the turn limit reveals the decision whatever the delay
			outcome, err := b.PlayTurn(word, bot.TurnTimeLimit)
			if err != nil {
				return err
			}
			turn := b.Turn()

			result := SuggestResult{
				Word:        word,
				Hand:        model.NewHand(hand...).Strings(),
				Difficulty:  string(difficulty),
				WillAnswer:  turn.WillAnswer,
				AnswerDelay: turn.AnswerDelay.String(),
				Outcome:     outcome.Kind.String(),
			}
			if turn.Move != nil {
				result.Move = turn.Move.Word
				result.Resolved = turn.Move.Resolved
				result.Card = string(turn.Move.Card)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
