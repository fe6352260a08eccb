package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"seabattle/internal/factory"
	"seabattle/internal/model"
)

func newLeaderboardCmd() *cobra.Command {
	var (
		limit  int
		player string
		remote bool
	)

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the standings or one player's record",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if remote {
				return remoteLeaderboard(out, limit, player)
			}

			app, err := newLocalApp(newLogger(cfg.LogLevel))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			return localLeaderboard(cmd.Context(), out, app, limit, player)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum players to show (0 = all)")
	cmd.Flags().StringVar(&player, "player", "", "Show a single player's stats and match history")
	cmd.Flags().BoolVar(&remote, "remote", false, "Query the server at --server instead of local storage")

	return cmd
}

func remoteLeaderboard(out *Output, limit int, player string) error {
	if player != "" {
		var stats PlayerStats
		if err := client.Get("/api/v1/players/"+url.PathEscape(player)+"/stats", &stats); err != nil {
			return err
		}
		out.Print(stats)
		return nil
	}

	path := "/api/v1/leaderboard"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	var board Leaderboard
	if err := client.Get(path, &board); err != nil {
		return err
	}
	out.Print(board)
	return nil
}

func localLeaderboard(ctx context.Context, out *Output, app *factory.App, limit int, player string) error {
	if player != "" {
		stats, err := app.RankingService.PlayerStats(ctx, player)
		if err != nil {
			if errors.Is(err, model.ErrStatsNotFound) {
				out.PrintMessage(fmt.Sprintf("No recorded matches for %s.", player))
				return nil
			}
			return err
		}

		matches, err := app.RankingService.MatchesForPlayer(ctx, player)
		if err != nil {
			return err
		}

		out.Print(playerStatsView(stats, matches))
		return nil
	}

	standings, err := app.RankingService.Standings(ctx, limit)
	if err != nil {
		return err
	}

	out.Print(leaderboardView(standings))
	return nil
}

func leaderboardView(standings []*model.PlayerStats) Leaderboard {
	players := make([]LeaderboardEntry, len(standings))
	for i, s := range standings {
		players[i] = LeaderboardEntry{
			Rank:         i + 1,
			Name:         s.Name,
			Games:        s.Games,
			Wins:         s.Wins,
			Losses:       s.Losses,
			Accuracy:     s.Accuracy(),
			BestWinShots: s.BestWinShots,
		}
	}
	return Leaderboard{Players: players}
}

func playerStatsView(stats *model.PlayerStats, matches []*model.MatchSummary) PlayerStats {
	history := make([]MatchSummary, len(matches))
	for i, m := range matches {
		history[i] = MatchSummary{
			ID:          string(m.ID),
			Winner:      string(m.Winner),
			Rounds:      m.Rounds,
			PlayerShots: m.PlayerShots,
			PlayerHits:  m.PlayerHits,
			FinishedAt:  m.FinishedAt,
		}
	}

	return PlayerStats{
		Name:         stats.Name,
		Games:        stats.Games,
		Wins:         stats.Wins,
		Losses:       stats.Losses,
		Shots:        stats.Shots,
		Hits:         stats.Hits,
		Accuracy:     stats.Accuracy(),
		BestWinShots: stats.BestWinShots,
		Matches:      history,
	}
}
