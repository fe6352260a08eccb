package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "seabattle-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/seabattle")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

// run executes the binary and returns its stdout. Stderr is kept
// separate so JSON output stays parseable; on failure both streams are
// returned for context.
func (r *cliRunner) run(args ...string) (string, error) {
	return r.runWithInput("", args...)
}

func (r *cliRunner) runWithInput(input string, args ...string) (string, error) {
	fullArgs := []string{"--output", "json"}
	if r.serverURL != "" {
		fullArgs = append(fullArgs, "--server", r.serverURL)
	}
	fullArgs = append(fullArgs, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Env = append(os.Environ(), "SEABATTLE_STORAGE_TYPE=memory")
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String() + stderr.String(), err
	}
	return stdout.String(), nil
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// serveProc manages a `serve` subprocess for e2e tests
type serveProc struct {
	cmd  *exec.Cmd
	addr string
}

func startServe(t *testing.T, binaryPath string) *serveProc {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cmd := exec.Command(binaryPath, "serve", "--port", fmt.Sprintf("%d", port))
	cmd.Env = append(os.Environ(), "SEABATTLE_STORAGE_TYPE=memory")
	require.NoError(t, cmd.Start())

	addr := fmt.Sprintf("http://127.0.0.1:%d", port)
	waitForServer(t, addr+"/api/v1/health")

	return &serveProc{cmd: cmd, addr: addr}
}

func (p *serveProc) stop(t *testing.T) {
	t.Helper()

	require.NoError(t, p.cmd.Process.Signal(syscall.SIGTERM))

	done := make(chan error, 1)
	go func() { done <- p.cmd.Wait() }()

	select {
	case err := <-done:
		assert.NoError(t, err, "serve should exit cleanly on SIGTERM")
	case <-time.After(5 * time.Second):
		_ = p.cmd.Process.Kill()
		t.Error("serve did not shut down in time")
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// httpJSON drives the API directly, for setting up server-side state
func httpJSON(t *testing.T, method, url string, body, result any) int {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if result != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(result))
	}
	return resp.StatusCode
}

// Response types for JSON parsing
type simulationResponse struct {
	Matches      int `json:"matches"`
	PlayerWins   int `json:"player_wins"`
	OpponentWins int `json:"opponent_wins"`
	Results      []struct {
		Match  int    `json:"match"`
		Winner string `json:"winner"`
		Rounds int    `json:"rounds"`
	} `json:"results"`
}

type leaderboardResponse struct {
	Players []struct {
		Rank  int    `json:"rank"`
		Name  string `json:"name"`
		Games int    `json:"games"`
	} `json:"players"`
}

type playerStatsResponse struct {
	Name    string `json:"name"`
	Games   int    `json:"games"`
	Matches []struct {
		ID string `json:"id"`
	} `json:"matches"`
}

type matchStateResponse struct {
	ID    string `json:"id"`
	Phase string `json:"phase"`
}

type shotResultResponse struct {
	Finished bool   `json:"finished"`
	Winner   string `json:"winner"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_Simulate(t *testing.T) {
	cli := newCLIRunner(t, "")

	output, err := cli.run("simulate", "--matches", "2", "--seed", "7",
		"--size", "5", "--ships", "2", "--length", "2")
	require.NoError(t, err, "output: %s", output)

	var resp simulationResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))

	assert.Equal(t, 2, resp.Matches)
	assert.Equal(t, 2, resp.PlayerWins+resp.OpponentWins)
	require.Len(t, resp.Results, 2)
	for _, m := range resp.Results {
		assert.Contains(t, []string{"player", "opponent"}, m.Winner)
		assert.Greater(t, m.Rounds, 0)
	}
}

func TestCLI_SimulateSeededIsReproducible(t *testing.T) {
	cli := newCLIRunner(t, "")

	first, err := cli.run("simulate", "--matches", "1", "--seed", "42", "--size", "5", "--ships", "2", "--length", "2")
	require.NoError(t, err, "output: %s", first)

	second, err := cli.run("simulate", "--matches", "1", "--seed", "42", "--size", "5", "--ships", "2", "--length", "2")
	require.NoError(t, err, "output: %s", second)

	assert.Equal(t, first, second)
}

func TestCLI_PlayScripted(t *testing.T) {
	cli := newCLIRunner(t, "")

	// Sweep every cell of a 3x3 board; a 1-cell fleet must fall
	var input strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			fmt.Fprintf(&input, "%d%d\n", row, col)
		}
	}

	output, err := cli.runWithInput(input.String(), "play",
		"--size", "3", "--ships", "1", "--length", "1", "--seed", "42", "--name", "e2e")
	require.NoError(t, err, "output: %s", output)

	assert.Contains(t, output, "Match ")
	assert.Contains(t, output, "Enemy waters:")
	assert.Contains(t, output, "win")
}

func TestCLI_PlayRejectedGuessReprompts(t *testing.T) {
	cli := newCLIRunner(t, "")

	// A malformed guess, then give up
	output, err := cli.runWithInput("bogus\nq\n", "play",
		"--size", "3", "--ships", "1", "--length", "1", "--seed", "42")
	require.NoError(t, err, "output: %s", output)

	assert.Contains(t, output, "Rejected:")
	assert.Contains(t, output, "Match abandoned.")
}

func TestCLI_LeaderboardLocalEmpty(t *testing.T) {
	cli := newCLIRunner(t, "")

	output, err := cli.run("leaderboard")
	require.NoError(t, err, "output: %s", output)

	var resp leaderboardResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Empty(t, resp.Players)
}

func TestCLI_ServerFlow(t *testing.T) {
	cli := newCLIRunner(t, "")
	server := startServe(t, cli.binaryPath)
	defer server.stop(t)
	cli.serverURL = server.addr

	// Health through the CLI
	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var health healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &health))
	assert.Equal(t, "ok", health.Status)

	// Create a small match over the API and sweep it to completion
	var created matchStateResponse
	status := httpJSON(t, http.MethodPost, server.addr+"/api/v1/matches", map[string]any{
		"board_size": 3, "ship_count": 1, "ship_length": 1,
		"player_name": "alice", "seed": 42,
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, created.ID)

	finished := false
	for row := 0; row < 3 && !finished; row++ {
		for col := 0; col < 3; col++ {
			var result shotResultResponse
			status := httpJSON(t, http.MethodPost,
				server.addr+"/api/v1/matches/"+created.ID+"/shots",
				map[string]string{"coord": fmt.Sprintf("%d%d", row, col)}, &result)
			require.Equal(t, http.StatusOK, status)
			if result.Finished {
				finished = true
				break
			}
		}
	}
	require.True(t, finished, "match did not finish within a full sweep")

	// The standings over the CLI
	output, err = cli.run("leaderboard", "--remote", "--limit", "5")
	require.NoError(t, err, "output: %s", output)

	var board leaderboardResponse
	require.NoError(t, json.Unmarshal([]byte(output), &board))
	require.Len(t, board.Players, 1)
	assert.Equal(t, 1, board.Players[0].Rank)
	assert.Equal(t, "alice", board.Players[0].Name)
	assert.Equal(t, 1, board.Players[0].Games)

	// One player's record over the CLI
	output, err = cli.run("leaderboard", "--remote", "--player", "alice")
	require.NoError(t, err, "output: %s", output)

	var stats playerStatsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &stats))
	assert.Equal(t, "alice", stats.Name)
	assert.Equal(t, 1, stats.Games)
	require.Len(t, stats.Matches, 1)
	assert.Equal(t, created.ID, stats.Matches[0].ID)
}
