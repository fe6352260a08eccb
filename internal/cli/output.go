package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Leaderboard:
		o.printLeaderboard(v)
	case PlayerStats:
		o.printPlayerStats(v)
	case SimulationReport:
		o.printSimulationReport(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// LeaderboardEntry response type (matches API)
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	Name         string  `json:"name"`
	Games        int     `json:"games"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	Accuracy     float64 `json:"accuracy"`
	BestWinShots int     `json:"best_win_shots,omitempty"`
}

// Leaderboard response type
type Leaderboard struct {
	Players []LeaderboardEntry `json:"players"`
}

// MatchSummary response type
type MatchSummary struct {
	ID          string    `json:"id"`
	Winner      string    `json:"winner"`
	Rounds      int       `json:"rounds"`
	PlayerShots int       `json:"player_shots"`
	PlayerHits  int       `json:"player_hits"`
	FinishedAt  time.Time `json:"finished_at"`
}

// PlayerStats response type
type PlayerStats struct {
	Name         string         `json:"name"`
	Games        int            `json:"games"`
	Wins         int            `json:"wins"`
	Losses       int            `json:"losses"`
	Shots        int            `json:"shots"`
	Hits         int            `json:"hits"`
	Accuracy     float64        `json:"accuracy"`
	BestWinShots int            `json:"best_win_shots,omitempty"`
	Matches      []MatchSummary `json:"matches"`
}

// SimulationMatch is one automated match's result
type SimulationMatch struct {
	Match       int    `json:"match"`
	Winner      string `json:"winner"`
	Rounds      int    `json:"rounds"`
	PlayerShots int    `json:"player_shots"`
	PlayerHits  int    `json:"player_hits"`
}

// SimulationReport aggregates an automated run
type SimulationReport struct {
	Matches      int               `json:"matches"`
	PlayerWins   int               `json:"player_wins"`
	OpponentWins int               `json:"opponent_wins"`
	Results      []SimulationMatch `json:"results"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l.Players) == 0 {
		fmt.Println("No recorded matches yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tNAME\tGAMES\tWINS\tLOSSES\tACCURACY\tBEST WIN")
	for _, p := range l.Players {
		best := "-"
		if p.BestWinShots > 0 {
			best = fmt.Sprintf("%d shots", p.BestWinShots)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%.1f%%\t%s\n",
			p.Rank, p.Name, p.Games, p.Wins, p.Losses, p.Accuracy*100, best)
	}
	_ = w.Flush()
}

func (o *Output) printPlayerStats(s PlayerStats) {
	fmt.Printf("Player: %s\n", s.Name)
	fmt.Printf("Games: %d (%d won, %d lost)\n", s.Games, s.Wins, s.Losses)
	fmt.Printf("Shots: %d (%d hits, %.1f%% accuracy)\n", s.Shots, s.Hits, s.Accuracy*100)
	if s.BestWinShots > 0 {
		fmt.Printf("Best win: %d shots\n", s.BestWinShots)
	}

	if len(s.Matches) > 0 {
		fmt.Printf("Matches (%d):\n", len(s.Matches))
		for _, m := range s.Matches {
			fmt.Printf("  - %s  %s won in %d rounds (%d/%d on target)  %s\n",
				m.ID, m.Winner, m.Rounds, m.PlayerHits, m.PlayerShots,
				m.FinishedAt.Format("2006-01-02 15:04"))
		}
	}
}

func (o *Output) printSimulationReport(r SimulationReport) {
	for _, m := range r.Results {
		fmt.Printf("match %d: %s won in %d rounds (%d/%d shots on target)\n",
			m.Match, m.Winner, m.Rounds, m.PlayerHits, m.PlayerShots)
	}
	fmt.Printf("simulated %d matches: player %d, opponent %d\n",
		r.Matches, r.PlayerWins, r.OpponentWins)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
