package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/letterswap/internal/model"
)

func newStatsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show recently finished matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Storage.ListMatchSummaries(cmd.Context(), limit)
			if err != nil {
				return err
			}

			result := StatsResult{Matches: []MatchRecord{}}
			for _, s := range summaries {
				switch s.Winner {
				case model.SeatHuman:
					result.HumanWins++
				case model.SeatBot:
					result.BotWins++
				}
				result.Matches = append(result.Matches, MatchRecord{
					Difficulty:  string(s.Difficulty),
					Winner:      string(s.Winner),
					Turns:       s.Turns,
					FinalWord:   s.FinalWord,
					CompletedAt: s.CompletedAt,
				})
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of matches to show (0 for all)")

	return cmd
}
