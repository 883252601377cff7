package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ahentschel/doppelkopf.club/internal/doko"
	"github.com/ahentschel/doppelkopf.club/internal/platform/storage/sqlitemigrate"
	"github.com/ahentschel/doppelkopf.club/internal/storage"
	"github.com/ahentschel/doppelkopf.club/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis reverses toMillis for persisted millisecond timestamps.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// toNullMillis maps optional domain times to sql.NullInt64 for nullable DB columns.
func toNullMillis(value *time.Time) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*value), Valid: true}
}

// fromNullMillis maps nullable SQL timestamps back into optional domain time values.
func fromNullMillis(value sql.NullInt64) *time.Time {
	if !value.Valid {
		return nil
	}
	t := fromMillis(value.Int64)
	return &t
}

// Store provides a SQLite-backed store implementing all storage interfaces.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path and applies embedded
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
//
// Close is intentionally nil-safe so callers can defer it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutGame persists a game record with its seated players. Round history is
// written through AppendRound only.
func (s *Store) PutGame(ctx context.Context, game doko.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(game.ID) == "" {
		return fmt.Errorf("game id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put game: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO games (id, max_rounds, with_mandatory_solos, created_at, ended_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    max_rounds = excluded.max_rounds,
    with_mandatory_solos = excluded.with_mandatory_solos,
    ended_at = excluded.ended_at
`,
		game.ID,
		game.MaxRounds,
		boolToInt(game.WithMandatorySolos),
		toMillis(game.CreatedAt),
		toNullMillis(game.EndedAt),
	); err != nil {
		return fmt.Errorf("put game: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM game_participants WHERE game_id = ?", game.ID); err != nil {
		return fmt.Errorf("clear game participants: %w", err)
	}
	for _, p := range game.Participants {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO game_participants (game_id, player_id, seat) VALUES (?, ?, ?)",
			game.ID, p.PlayerID, p.Seat,
		); err != nil {
			return fmt.Errorf("put game participant %s: %w", p.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put game: %w", err)
	}
	return nil
}

// GetGame loads a game with its participants and full round history.
func (s *Store) GetGame(ctx context.Context, id string) (doko.Game, error) {
	if err := ctx.Err(); err != nil {
		return doko.Game{}, err
	}
	if s == nil || s.sqlDB == nil {
		return doko.Game{}, fmt.Errorf("storage is not configured")
	}

	var game doko.Game
	var withSolos int
	var createdAt int64
	var endedAt sql.NullInt64
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT id, max_rounds, with_mandatory_solos, created_at, ended_at FROM games WHERE id = ?", id)
	if err := row.Scan(&game.ID, &game.MaxRounds, &withSolos, &createdAt, &endedAt); err != nil {
		if err == sql.ErrNoRows {
			return doko.Game{}, storage.ErrNotFound
		}
		return doko.Game{}, fmt.Errorf("get game: %w", err)
	}
	game.WithMandatorySolos = withSolos != 0
	game.CreatedAt = fromMillis(createdAt)
	game.EndedAt = fromNullMillis(endedAt)

	participants, err := s.listGameParticipants(ctx, id)
	if err != nil {
		return doko.Game{}, err
	}
	game.Participants = participants

	rounds, err := s.listRounds(ctx, id)
	if err != nil {
		return doko.Game{}, err
	}
	game.Rounds = rounds

	return game, nil
}

func (s *Store) listGameParticipants(ctx context.Context, gameID string) ([]doko.GameParticipant, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT player_id, seat FROM game_participants WHERE game_id = ? ORDER BY seat", gameID)
	if err != nil {
		return nil, fmt.Errorf("list game participants: %w", err)
	}
	defer rows.Close()

	var participants []doko.GameParticipant
	for rows.Next() {
		var p doko.GameParticipant
		if err := rows.Scan(&p.PlayerID, &p.Seat); err != nil {
			return nil, fmt.Errorf("scan game participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read game participants: %w", err)
	}
	return participants, nil
}

func (s *Store) listRounds(ctx context.Context, gameID string) ([]doko.Round, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, number, round_type, solo, eyes_re, created_at
FROM rounds WHERE game_id = ? ORDER BY number`, gameID)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	defer rows.Close()

	var rounds []doko.Round
	index := make(map[int]int)
	for rows.Next() {
		var r doko.Round
		var roundType, solo int
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Number, &roundType, &solo, &r.EyesRe, &createdAt); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		r.Type = doko.RoundType(roundType)
		r.Solo = doko.SoloKind(solo)
		r.CreatedAt = fromMillis(createdAt)
		index[r.Number] = len(rounds)
		rounds = append(rounds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read rounds: %w", err)
	}
	if len(rounds) == 0 {
		return nil, nil
	}

	if err := s.attachRoundParticipants(ctx, gameID, rounds, index); err != nil {
		return nil, err
	}
	return rounds, nil
}

// attachRoundParticipants loads participants, calls and bonuses for every
// round of the game in three queries instead of three per round.
func (s *Store) attachRoundParticipants(ctx context.Context, gameID string, rounds []doko.Round, index map[int]int) error {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT round_number, player_id, team
FROM round_participants WHERE game_id = ? ORDER BY round_number, rowid`, gameID)
	if err != nil {
		return fmt.Errorf("list round participants: %w", err)
	}
	defer rows.Close()

	seat := make(map[int]map[string]int)
	for rows.Next() {
		var number, team int
		var playerID string
		if err := rows.Scan(&number, &playerID, &team); err != nil {
			return fmt.Errorf("scan round participant: %w", err)
		}
		i, ok := index[number]
		if !ok {
			continue
		}
		if seat[number] == nil {
			seat[number] = make(map[string]int)
		}
		seat[number][playerID] = len(rounds[i].Participants)
		rounds[i].Participants = append(rounds[i].Participants, doko.RoundParticipant{
			PlayerID: playerID,
			Team:     doko.Team(team),
		})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read round participants: %w", err)
	}

	callRows, err := s.sqlDB.QueryContext(ctx, `
SELECT round_number, player_id, call_type
FROM round_calls WHERE game_id = ? ORDER BY id`, gameID)
	if err != nil {
		return fmt.Errorf("list round calls: %w", err)
	}
	defer callRows.Close()

	for callRows.Next() {
		var number, callType int
		var playerID string
		if err := callRows.Scan(&number, &playerID, &callType); err != nil {
			return fmt.Errorf("scan round call: %w", err)
		}
		i, ok := index[number]
		if !ok {
			continue
		}
		j, ok := seat[number][playerID]
		if !ok {
			continue
		}
		p := &rounds[i].Participants[j]
		p.Calls = append(p.Calls, doko.Call{PlayerID: playerID, Type: doko.CallType(callType)})
	}
	if err := callRows.Err(); err != nil {
		return fmt.Errorf("read round calls: %w", err)
	}

	bonusRows, err := s.sqlDB.QueryContext(ctx, `
SELECT round_number, player_id, bonus_type, count
FROM round_bonuses WHERE game_id = ? ORDER BY id`, gameID)
	if err != nil {
		return fmt.Errorf("list round bonuses: %w", err)
	}
	defer bonusRows.Close()

	for bonusRows.Next() {
		var number, bonusType, count int
		var playerID string
		if err := bonusRows.Scan(&number, &playerID, &bonusType, &count); err != nil {
			return fmt.Errorf("scan round bonus: %w", err)
		}
		i, ok := index[number]
		if !ok {
			continue
		}
		j, ok := seat[number][playerID]
		if !ok {
			continue
		}
		p := &rounds[i].Participants[j]
		p.Bonuses = append(p.Bonuses, doko.Bonus{
			PlayerID: playerID,
			Type:     doko.BonusType(bonusType),
			Count:    count,
		})
	}
	if err := bonusRows.Err(); err != nil {
		return fmt.Errorf("read round bonuses: %w", err)
	}

	return nil
}

// AppendRound persists a round with its participants, calls, bonuses and
// computed points in one transaction. A non-nil endedAt stamps the game as
// ended in the same transaction.
func (s *Store) AppendRound(ctx context.Context, gameID string, round doko.Round, points []doko.RoundPoints, endedAt *time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(gameID) == "" {
		return fmt.Errorf("game id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append round: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO rounds (id, game_id, number, round_type, solo, eyes_re, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		round.ID, gameID, round.Number, int(round.Type), int(round.Solo), round.EyesRe, toMillis(round.CreatedAt),
	); err != nil {
		return fmt.Errorf("append round: %w", err)
	}

	for _, p := range round.Participants {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO round_participants (game_id, round_number, player_id, team) VALUES (?, ?, ?, ?)",
			gameID, round.Number, p.PlayerID, int(p.Team),
		); err != nil {
			return fmt.Errorf("append round participant %s: %w", p.PlayerID, err)
		}
		for _, c := range p.Calls {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO round_calls (game_id, round_number, player_id, call_type) VALUES (?, ?, ?, ?)",
				gameID, round.Number, p.PlayerID, int(c.Type),
			); err != nil {
				return fmt.Errorf("append round call: %w", err)
			}
		}
		for _, b := range p.Bonuses {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO round_bonuses (game_id, round_number, player_id, bonus_type, count) VALUES (?, ?, ?, ?, ?)",
				gameID, round.Number, p.PlayerID, int(b.Type), b.Count,
			); err != nil {
				return fmt.Errorf("append round bonus: %w", err)
			}
		}
	}

	for _, pt := range points {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO round_points (game_id, round_number, player_id, points, result) VALUES (?, ?, ?, ?, ?)",
			gameID, round.Number, pt.PlayerID, pt.Points, int(pt.Result),
		); err != nil {
			return fmt.Errorf("append round points %s: %w", pt.PlayerID, err)
		}
	}

	if endedAt != nil {
		if _, err := tx.ExecContext(ctx,
			"UPDATE games SET ended_at = ? WHERE id = ?", toMillis(*endedAt), gameID,
		); err != nil {
			return fmt.Errorf("stamp game end: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append round: %w", err)
	}
	return nil
}

// ListGamePoints returns every persisted round point entry of the game,
// ordered by round number then player id.
func (s *Store) ListGamePoints(ctx context.Context, gameID string) ([]doko.RoundPoints, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT player_id, points, result
FROM round_points WHERE game_id = ? ORDER BY round_number, player_id`, gameID)
	if err != nil {
		return nil, fmt.Errorf("list game points: %w", err)
	}
	defer rows.Close()

	var points []doko.RoundPoints
	for rows.Next() {
		var pt doko.RoundPoints
		var result int
		if err := rows.Scan(&pt.PlayerID, &pt.Points, &result); err != nil {
			return nil, fmt.Errorf("scan game points: %w", err)
		}
		pt.Result = doko.Result(result)
		points = append(points, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read game points: %w", err)
	}
	return points, nil
}

// AppendTelemetryEvent persists one telemetry record. Attributes are stored
// as JSON.
func (s *Store) AppendTelemetryEvent(ctx context.Context, evt storage.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(evt.EventName) == "" {
		return fmt.Errorf("event name is required")
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}

	attributes := "{}"
	if len(evt.Attributes) > 0 {
		raw, err := json.Marshal(evt.Attributes)
		if err != nil {
			return fmt.Errorf("marshal telemetry attributes: %w", err)
		}
		attributes = string(raw)
	}

	if _, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO telemetry_events (timestamp, event_name, severity, game_id, actor_id, trace_id, span_id, attributes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		toMillis(evt.Timestamp), evt.EventName, evt.Severity, evt.GameID, evt.ActorID, evt.TraceID, evt.SpanID, attributes,
	); err != nil {
		return fmt.Errorf("append telemetry event: %w", err)
	}
	return nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

var (
	_ storage.GameStore      = (*Store)(nil)
	_ storage.RoundStore     = (*Store)(nil)
	_ storage.PointsStore    = (*Store)(nil)
	_ storage.TelemetryStore = (*Store)(nil)
)
