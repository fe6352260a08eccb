package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"seabattle/internal/model"
	"seabattle/internal/services/game"
)

func newSimulateCmd() *cobra.Command {
	def := model.DefaultMatchConfig()

	var (
		matches    int
		boardSize  int
		shipCount  int
		shipLength int
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run automated matches with both sides played by the computer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if matches < 1 {
				return fmt.Errorf("matches must be at least 1")
			}

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

			var baseSeed *int64
			if cmd.Flags().Changed("seed") {
				baseSeed = &seed
			}

			report, err := runSimulation(cmd.Context(), app.Builder, matchCfg, matches, baseSeed)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*report)
			return nil
		},
	}

	cmd.Flags().IntVar(&matches, "matches", 1, "Number of matches to run")
	cmd.Flags().IntVar(&boardSize, "size", def.BoardSize, "Board size")
	cmd.Flags().IntVar(&shipCount, "ships", def.ShipCount, "Ships per fleet")
	cmd.Flags().IntVar(&shipLength, "length", def.ShipLength, "Cells per ship")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for a reproducible run")

	return cmd
}

// runSimulation plays bot-vs-bot matches through the same engine the
// interactive path uses. Nothing is recorded in the standings.
func runSimulation(ctx context.Context, builder *game.Builder, matchCfg model.MatchConfig, matches int, baseSeed *int64) (*SimulationReport, error) {
	report := &SimulationReport{Matches: matches}

	for i := 0; i < matches; i++ {
		cfg := matchCfg
		if baseSeed != nil {
			s := *baseSeed + int64(i)
			cfg.Seed = &s
		}

		m, err := builder.NewAutoMatch(cfg)
		if err != nil {
			return nil, err
		}

		result, err := playOut(ctx, m)
		if err != nil {
			return nil, err
		}
		result.Match = i + 1

		if result.Winner == string(model.SeatPlayer) {
			report.PlayerWins++
		} else {
			report.OpponentWins++
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

func playOut(ctx context.Context, m *game.Match) (SimulationMatch, error) {
	for round := 0; round < m.MaxRounds(); round++ {
		roundReport, err := m.Engine.PlayRound(ctx)
		if err != nil {
			return SimulationMatch{}, err
		}
		if roundReport.Finished {
			return SimulationMatch{
				Winner:      string(roundReport.Winner),
				Rounds:      roundReport.Round,
				PlayerShots: m.Engine.Shots(model.SeatPlayer),
				PlayerHits:  m.Engine.Hits(model.SeatPlayer),
			}, nil
		}
	}

	// Unreachable: strategies never repeat a guess, so every cell is
	// covered within the round cap
	return SimulationMatch{}, fmt.Errorf("match did not finish within %d rounds", m.MaxRounds())
}
