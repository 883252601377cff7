package storage

import (
	"context"
	"errors"
	"time"

	"github.com/ahentschel/doppelkopf.club/internal/doko"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// GameStore persists game records and their seated players.
type GameStore interface {
	PutGame(ctx context.Context, game doko.Game) error
	// GetGame loads a game with its full round history, rounds ordered
	// ascending by number.
	GetGame(ctx context.Context, id string) (doko.Game, error)
}

// RoundStore appends validated rounds together with their computed points.
type RoundStore interface {
	// AppendRound persists the round, its participants, calls, bonuses and
	// points in one transaction. A non-nil endedAt stamps the game as ended
	// in the same transaction.
	AppendRound(ctx context.Context, gameID string, round doko.Round, points []doko.RoundPoints, endedAt *time.Time) error
}

// PointsStore reads back computed round points.
type PointsStore interface {
	// ListGamePoints returns every persisted round point entry of the game,
	// ordered by round number then player id.
	ListGamePoints(ctx context.Context, gameID string) ([]doko.RoundPoints, error)
}

// TelemetryEvent is one operational telemetry record.
type TelemetryEvent struct {
	Timestamp  time.Time
	EventName  string
	Severity   string
	GameID     string
	ActorID    string
	TraceID    string
	SpanID     string
	Attributes map[string]any
}

// TelemetryStore appends operational telemetry events.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, evt TelemetryEvent) error
}
