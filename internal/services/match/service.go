package match

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"seabattle/internal/dependencies/clock"
	"seabattle/internal/dependencies/random"
	"seabattle/internal/model"
	"seabattle/internal/services/bot"
	"seabattle/internal/services/game"
	"seabattle/internal/services/ranking"
)

// errNoGuessPending guards against the engine reading input outside a
// Shoot call; it indicates a bug, not a client error
var errNoGuessPending = errors.New("no guess pending")

// pendingInput hands the engine exactly the guess supplied with the
// current shot request
type pendingInput struct {
	raw string
	set bool
}

var _ game.InputSource = (*pendingInput)(nil)

func (p *pendingInput) ReadGuess(_ context.Context) (string, error) {
	if !p.set {
		return "", errNoGuessPending
	}
	p.set = false
	return p.raw, nil
}

func (p *pendingInput) supply(raw string) {
	p.raw = raw
	p.set = true
}

// Session is one live match held by the registry. Its mutex serializes
// rounds so concurrent requests cannot interleave; the engine
// underneath stays single-threaded.
type Session struct {
	ID         model.MatchID
	PlayerName string

	mu    sync.Mutex
	match *game.Match
	input *pendingInput
}

// View is a read-only snapshot of one session. Grids are deep copies;
// the tracking grid holds only what the player has learned about the
// opponent's waters.
type View struct {
	ID                model.MatchID
	PlayerName        string
	Config            model.MatchConfig
	Phase             game.Phase
	Winner            model.Seat
	Round             int
	PlayerShots       int
	PlayerHits        int
	OpponentShots     int
	OpponentHits      int
	PlayerRemaining   int
	OpponentRemaining int
	BotMode           bot.Mode
	PlayerGrid        [][]model.CellState
	TrackingGrid      [][]model.CellState
	StartedAt         time.Time
}

// ShotOutcome pairs a round report with the post-round snapshot
type ShotOutcome struct {
	Report *game.RoundReport
	View   *View
}

// Service is the in-memory registry of live matches. Live matches are
// never persisted; only finished ones are recorded through the ranking
// service.
type Service struct {
	builder *game.Builder
	ranking *ranking.Service
	random  random.Random
	clock   clock.Clock
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[model.MatchID]*Session
}

// New creates a new match Service
func New(
	builder *game.Builder,
	ranking *ranking.Service,
	rnd random.Random,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		builder:  builder,
		ranking:  ranking,
		random:   rnd,
		clock:    clk,
		logger:   logger.With(slog.String("component", "match-service")),
		sessions: make(map[model.MatchID]*Session),
	}
}

// Create builds a new match and registers it. Setup failures (invalid
// config, exhausted placement) propagate without registering anything.
func (s *Service) Create(ctx context.Context, playerName string, cfg model.MatchConfig) (*View, error) {
	if playerName == "" {
		playerName = "anonymous"
	}

	input := &pendingInput{}
	m, err := s.builder.NewMatch(cfg, input)
	if err != nil {
		return nil, err
	}

	session := &Session{
		PlayerName: playerName,
		match:      m,
		input:      input,
	}

	s.mu.Lock()
	for {
		id := model.MatchID(s.random.String(ranking.MatchIDLength, ranking.MatchIDAlphabet))
		if _, exists := s.sessions[id]; !exists {
			session.ID = id
			break
		}
	}
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("match created",
		slog.String("match_id", string(session.ID)),
		slog.String("player", playerName),
		slog.Int("board_size", cfg.BoardSize),
		slog.Int("ship_count", cfg.ShipCount),
	)

	return session.view(), nil
}

// Get returns a snapshot of the session
func (s *Service) Get(id model.MatchID) (*View, error) {
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.view(), nil
}

// Shoot plays one full round with the given raw guess. Rejected input
// surfaces as a model.GuessRejectedError with the session untouched;
// shooting at a finished match fails with model.ErrMatchFinished. When
// the round finishes the match, the summary is recorded.
func (s *Service) Shoot(ctx context.Context, id model.MatchID, raw string) (*ShotOutcome, error) {
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.input.supply(raw)
	report, err := session.match.Engine.PlayRound(ctx)
	if err != nil {
		return nil, err
	}

	if report.Finished {
		summary := session.match.Summary(session.ID, session.PlayerName, s.clock.Now())
		if recErr := s.ranking.RecordMatch(ctx, summary); recErr != nil {
			// The round already played out; losing the record must not
			// fail the shot
			s.logger.Error("failed to record match",
				slog.String("match_id", string(session.ID)),
				slog.String("error", recErr.Error()),
			)
		}
	}

	return &ShotOutcome{Report: report, View: session.view()}, nil
}

// Abandon removes the session from the registry
func (s *Service) Abandon(id model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return model.ErrMatchNotFound
	}
	delete(s.sessions, id)

	s.logger.Info("match abandoned", slog.String("match_id", string(id)))
	return nil
}

func (s *Service) session(id model.MatchID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return session, nil
}

// view builds a snapshot; callers hold the session mutex unless the
// session has not been shared yet
func (sess *Session) view() *View {
	m := sess.match
	return &View{
		ID:                sess.ID,
		PlayerName:        sess.PlayerName,
		Config:            m.Config,
		Phase:             m.Engine.Phase(),
		Winner:            m.Engine.Winner(),
		Round:             m.Engine.Round(),
		PlayerShots:       m.Engine.Shots(model.SeatPlayer),
		PlayerHits:        m.Engine.Hits(model.SeatPlayer),
		OpponentShots:     m.Engine.Shots(model.SeatOpponent),
		OpponentHits:      m.Engine.Hits(model.SeatOpponent),
		PlayerRemaining:   m.PlayerBoard.RemainingShips(),
		OpponentRemaining: m.OpponentBoard.RemainingShips(),
		BotMode:           m.Strategy.Mode(),
		PlayerGrid:        m.PlayerBoard.Snapshot(),
		TrackingGrid:      m.PlayerTracking.Snapshot(),
		StartedAt:         m.StartedAt,
	}
}
