// Package service coordinates the rules engine with storage: it validates
// and scores incoming rounds, persists them, and answers scheduling and
// scoreboard queries.
package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/ahentschel/doppelkopf.club/internal/doko"
	apperrors "github.com/ahentschel/doppelkopf.club/internal/errors"
	"github.com/ahentschel/doppelkopf.club/internal/platform/id"
	"github.com/ahentschel/doppelkopf.club/internal/platform/telemetry"
	"github.com/ahentschel/doppelkopf.club/internal/storage"
)

// Service executes game operations against the storage layer.
type Service struct {
	games   storage.GameStore
	rounds  storage.RoundStore
	points  storage.PointsStore
	emitter *telemetry.Emitter

	clock func() time.Time
	newID func() (string, error)
}

// New creates a service over the given stores. The emitter may be nil.
func New(games storage.GameStore, rounds storage.RoundStore, points storage.PointsStore, emitter *telemetry.Emitter) *Service {
	return &Service{
		games:   games,
		rounds:  rounds,
		points:  points,
		emitter: emitter,
		clock:   time.Now,
		newID:   id.NewID,
	}
}

// CreateGameInput describes a new game. PlayerIDs are seated in order,
// index zero dealing the first round.
type CreateGameInput struct {
	PlayerIDs          []string
	MaxRounds          int
	WithMandatorySolos bool
}

// CreateGame validates and persists a new game with an empty round history.
func (s *Service) CreateGame(ctx context.Context, in CreateGameInput) (doko.Game, error) {
	if err := ctx.Err(); err != nil {
		return doko.Game{}, err
	}

	gameID, err := s.newID()
	if err != nil {
		return doko.Game{}, err
	}

	game := doko.Game{
		ID:                 gameID,
		MaxRounds:          in.MaxRounds,
		WithMandatorySolos: in.WithMandatorySolos,
		CreatedAt:          s.now(),
	}
	for seat, playerID := range in.PlayerIDs {
		game.Participants = append(game.Participants, doko.GameParticipant{
			PlayerID: playerID,
			Seat:     seat,
		})
	}

	if err := doko.ValidateGame(game); err != nil {
		return doko.Game{}, err
	}
	if err := s.games.PutGame(ctx, game); err != nil {
		return doko.Game{}, err
	}

	s.emit(ctx, storage.TelemetryEvent{
		EventName: telemetry.EventGameCreated,
		Severity:  "info",
		GameID:    game.ID,
		Attributes: map[string]any{
			"players":    len(game.Participants),
			"max_rounds": game.MaxRounds,
		},
	})

	return game, nil
}

// RoundInput describes one finished deal to be recorded.
type RoundInput struct {
	Type         doko.RoundType
	Solo         doko.SoloKind
	EyesRe       int
	Participants []doko.RoundParticipant
}

// RecordRound validates the round against the game's history, scores it and
// persists both atomically. Recording the final round stamps the game's end
// time in the same transaction.
func (s *Service) RecordRound(ctx context.Context, gameID string, in RoundInput) (doko.Round, []doko.RoundPoints, error) {
	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return doko.Round{}, nil, err
	}
	if game.Complete() {
		return doko.Round{}, nil, apperrors.WithMetadata(
			apperrors.CodeGameComplete,
			"game already reached its agreed round count",
			map[string]string{"MaxRounds": strconv.Itoa(game.MaxRounds)},
		)
	}

	roundID, err := s.newID()
	if err != nil {
		return doko.Round{}, nil, err
	}
	round := doko.Round{
		ID:           roundID,
		Number:       game.NextRoundNumber(),
		Type:         in.Type,
		Solo:         in.Solo,
		EyesRe:       in.EyesRe,
		Participants: in.Participants,
		CreatedAt:    s.now(),
	}

	if err := doko.ValidateRound(round, game.WithMandatorySolos); err != nil {
		return doko.Round{}, nil, err
	}

	candidate := game
	candidate.Rounds = append(append([]doko.Round(nil), game.Rounds...), round)
	if err := doko.ValidateGame(candidate); err != nil {
		return doko.Round{}, nil, err
	}

	points := doko.Score(round)

	var endedAt *time.Time
	if candidate.Complete() {
		ts := s.now()
		endedAt = &ts
	}

	if err := s.rounds.AppendRound(ctx, gameID, round, points, endedAt); err != nil {
		return doko.Round{}, nil, err
	}

	s.emit(ctx, storage.TelemetryEvent{
		EventName: telemetry.EventRoundRecorded,
		Severity:  "info",
		GameID:    gameID,
		Attributes: map[string]any{
			"round":      round.Number,
			"round_type": round.Type.String(),
		},
	})
	if endedAt != nil {
		s.emit(ctx, storage.TelemetryEvent{
			EventName: telemetry.EventGameEnded,
			Severity:  "info",
			GameID:    gameID,
		})
	}

	return round, points, nil
}

// ScoreboardEntry is one player's running total across the recorded rounds.
type ScoreboardEntry struct {
	PlayerID string
	Points   int
	Won      int
	Lost     int
	Draw     int
}

// Scoreboard returns every player's running total, ordered by seat.
func (s *Service) Scoreboard(ctx context.Context, gameID string) ([]ScoreboardEntry, error) {
	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	points, err := s.points.ListGamePoints(ctx, gameID)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*ScoreboardEntry, len(game.Participants))
	board := make([]ScoreboardEntry, len(game.Participants))
	for i, p := range game.Participants {
		board[i] = ScoreboardEntry{PlayerID: p.PlayerID}
		totals[p.PlayerID] = &board[i]
	}

	for _, pt := range points {
		entry, ok := totals[pt.PlayerID]
		if !ok {
			continue
		}
		entry.Points += pt.Points
		switch pt.Result {
		case doko.ResultWon:
			entry.Won++
		case doko.ResultLost:
			entry.Lost++
		case doko.ResultDraw:
			entry.Draw++
		}
	}

	return board, nil
}

// NextRoundInfo describes the upcoming round's schedule.
type NextRoundInfo struct {
	Number          int
	DealerSeat      int
	DealerID        string
	ParadeActive    bool
	ExpectedSoloist string
	GameComplete    bool
}

// NextRound returns the dealer and, during the parade, the obligated
// soloist for the game's next round.
func (s *Service) NextRound(ctx context.Context, gameID string) (NextRoundInfo, error) {
	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return NextRoundInfo{}, err
	}
	if game.Complete() {
		return NextRoundInfo{GameComplete: true}, nil
	}

	number := game.NextRoundNumber()
	seat := doko.DealerSeat(game, number)
	info := NextRoundInfo{
		Number:       number,
		DealerSeat:   seat,
		DealerID:     game.PlayerAtSeat(seat),
		ParadeActive: doko.ParadeActive(game, number),
	}
	if soloist, ok := doko.ExpectedSoloist(game, number); ok {
		info.ExpectedSoloist = soloist
	}
	return info, nil
}

// Game loads a game with its full round history.
func (s *Service) Game(ctx context.Context, gameID string) (doko.Game, error) {
	return s.getGame(ctx, gameID)
}

func (s *Service) getGame(ctx context.Context, gameID string) (doko.Game, error) {
	game, err := s.games.GetGame(ctx, gameID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return doko.Game{}, apperrors.WithMetadata(
				apperrors.CodeNotFound,
				"game not found",
				map[string]string{"GameID": gameID},
			)
		}
		return doko.Game{}, err
	}
	return game, nil
}

func (s *Service) now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}

// emit records telemetry without affecting the operation outcome.
func (s *Service) emit(ctx context.Context, evt storage.TelemetryEvent) {
	if err := s.emitter.Emit(ctx, evt); err != nil {
		log.Printf("telemetry emit %s: %v", evt.EventName, err)
	}
}
