package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"seabattle/internal/factory"
	"seabattle/internal/model"
	"seabattle/internal/render"
	"seabattle/internal/services/game"
	"seabattle/internal/services/match"
)

func newPlayCmd() *cobra.Command {
	def := model.DefaultMatchConfig()

	var (
		boardSize  int
		shipCount  int
		shipLength int
		seed       int64
		playerName string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive match against the computer",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newLocalApp(newLogger(cfg.LogLevel))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			matchCfg := model.MatchConfig{
				BoardSize:  boardSize,
				ShipCount:  shipCount,
				ShipLength: shipLength,
			}
			if cmd.Flags().Changed("seed") {
				matchCfg.Seed = &seed
			}

			return runPlay(cmd, app, playerName, matchCfg)
		},
	}

	cmd.Flags().IntVar(&boardSize, "size", def.BoardSize, "Board size")
	cmd.Flags().IntVar(&shipCount, "ships", def.ShipCount, "Ships per fleet")
	cmd.Flags().IntVar(&shipLength, "length", def.ShipLength, "Cells per ship")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for a reproducible match")
	cmd.Flags().StringVar(&playerName, "name", "", "Player name recorded in the standings")

	return cmd
}

func runPlay(cmd *cobra.Command, app *factory.App, playerName string, matchCfg model.MatchConfig) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	view, err := app.MatchService.Create(ctx, playerName, matchCfg)
	if err != nil {
		return err
	}

	size := view.Config.BoardSize
	fmt.Fprintf(out, "Match %s: %dx%d board, %d ships of length %d.\n",
		view.ID, size, size, view.Config.ShipCount, view.Config.ShipLength)
	fmt.Fprintf(out, "Enter targets as %s; type q to give up.\n", coordHint(size))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		printBoards(out, view)
		fmt.Fprintf(out, "Round %d, your target: ", view.Round+1)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "No more input; match abandoned.")
			return app.MatchService.Abandon(view.ID)
		}

		guess := strings.TrimSpace(scanner.Text())
		switch guess {
		case "":
			continue
		case "q", "quit":
			fmt.Fprintln(out, "Match abandoned.")
			return app.MatchService.Abandon(view.ID)
		}

		outcome, err := app.MatchService.Shoot(ctx, view.ID, guess)
		if err != nil {
			var rejected *model.GuessRejectedError
			if errors.As(err, &rejected) {
				fmt.Fprintf(out, "Rejected: %s.\n", rejectionHint(rejected, size))
				continue
			}
			return err
		}

		view = outcome.View
		printRound(out, outcome.Report, size)

		if outcome.Report.Finished {
			printBoards(out, view)
			printVerdict(out, view)
			return nil
		}
	}
}

func printBoards(w io.Writer, view *match.View) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Enemy waters:")
	fmt.Fprint(w, render.Grid(view.TrackingGrid))
	fmt.Fprintln(w, "Your fleet:")
	fmt.Fprint(w, render.Grid(view.PlayerGrid))
}

func printRound(w io.Writer, report *game.RoundReport, size int) {
	for _, shot := range report.Shots {
		who := "You fire at"
		if shot.Seat == model.SeatOpponent {
			who = "The computer fires at"
		}
		fmt.Fprintf(w, "%s %s: %s\n", who, model.FormatCoordinate(shot.Coord, size), shotVerdict(shot.Result))
	}
}

func shotVerdict(result model.GuessResult) string {
	switch {
	case result.Sunk:
		return "hit, ship sunk!"
	case result.Hit:
		return "hit!"
	default:
		return "miss"
	}
}

func printVerdict(w io.Writer, view *match.View) {
	if view.Winner == model.SeatPlayer {
		fmt.Fprintf(w, "You win in %d rounds! %d of %d shots on target.\n",
			view.Round, view.PlayerHits, view.PlayerShots)
	} else {
		fmt.Fprintf(w, "The computer wins after %d rounds.\n", view.Round)
	}
}

func rejectionHint(err *model.GuessRejectedError, size int) string {
	switch err.Reason {
	case model.RejectMalformedLength:
		return fmt.Sprintf("enter a coordinate like %s", coordHint(size))
	case model.RejectOutOfRange:
		return "that cell is off the board"
	case model.RejectAlreadyGuessed:
		return "you already fired at that cell"
	default:
		return err.Error()
	}
}

func coordHint(size int) string {
	if size > 10 {
		return `"12,7" (row,col)`
	}
	return `"34" (row 3, col 4)`
}
