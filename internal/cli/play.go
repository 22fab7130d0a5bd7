package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/letterswap/internal/model"
	"github.com/mcoot/letterswap/internal/services/game"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a match against the bot",
		Long: `Play a match against the bot in the terminal.

On your turn type a word that differs from the current word by one letter,
using a card from your hand for the new letter. A wildcard (*) stands in for
any letter you do not hold. Enter a blank line to pass and "quit" to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := model.ParseDifficulty(cfg.Difficulty)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.LoadDictionary(ctx, cfg.DictionaryPath); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			return runMatch(ctx, app.GameController, difficulty, cmd.InOrStdin(), out)
		},
	}
}

// runMatch plays one match, reading the human's moves from in
func runMatch(ctx context.Context, controller *game.Controller, difficulty model.Difficulty, in io.Reader, out *Output) error {
	sess, err := controller.NewMatch(ctx, difficulty)
	if err != nil {
		return err
	}

	limit := controller.Config().TurnTimeLimit
	out.PrintMessage(fmt.Sprintf("New %s match, %s to answer each turn", model.DifficultyDisplayName(difficulty), limit))

	scanner := bufio.NewScanner(in)
	for !sess.Match.IsOver() {
		var result *game.TurnResult

		switch sess.Match.Turn {
		case model.SeatHuman:
			out.Print(matchView(sess))
			out.Prompt("Your word (blank to pass): ")
			if !scanner.Scan() {
				out.PrintMessage("Match abandoned")
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if strings.EqualFold(line, "quit") {
				out.PrintMessage("Match abandoned")
				return nil
			}
			result, err = controller.SubmitHumanMove(ctx, sess, line)

		case model.SeatBot:
			out.Prompt("Bot is thinking...\n")
			result, err = controller.PlayBotTurn(ctx, sess)
		}
		if err != nil {
			return err
		}
		out.Print(turnView(result))
	}
	return nil
}

func matchView(sess *game.Session) MatchView {
	return MatchView{
		Word:      sess.Match.CurrentWord,
		Hand:      sess.Match.HumanHand.Strings(),
		BotCards:  len(sess.Bot.Hand()),
		DeckCards: sess.Deck.Len(),
		Turn:      sess.Match.TurnNumber,
	}
}

func turnView(r *game.TurnResult) TurnView {
	return TurnView{
		Player:    string(r.Seat),
		Word:      r.Word,
		Card:      string(r.Card),
		Accepted:  r.Accepted,
		Reason:    string(r.Reason),
		Penalty:   string(r.Penalty),
		Discarded: string(r.Discarded),
		NextWord:  r.CurrentWord,
		Winner:    string(r.Winner),
	}
}
