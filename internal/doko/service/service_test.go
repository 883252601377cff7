package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ahentschel/doppelkopf.club/internal/doko"
	apperrors "github.com/ahentschel/doppelkopf.club/internal/errors"
	"github.com/ahentschel/doppelkopf.club/internal/platform/telemetry"
	"github.com/ahentschel/doppelkopf.club/internal/storage"
)

// memStore is an in-memory implementation of the storage interfaces.
type memStore struct {
	games  map[string]doko.Game
	points map[string][]doko.RoundPoints
	events []storage.TelemetryEvent
}

func newMemStore() *memStore {
	return &memStore{
		games:  make(map[string]doko.Game),
		points: make(map[string][]doko.RoundPoints),
	}
}

func (m *memStore) PutGame(ctx context.Context, game doko.Game) error {
	m.games[game.ID] = game
	return nil
}

func (m *memStore) GetGame(ctx context.Context, id string) (doko.Game, error) {
	game, ok := m.games[id]
	if !ok {
		return doko.Game{}, storage.ErrNotFound
	}
	return game, nil
}

func (m *memStore) AppendRound(ctx context.Context, gameID string, round doko.Round, points []doko.RoundPoints, endedAt *time.Time) error {
	game, ok := m.games[gameID]
	if !ok {
		return storage.ErrNotFound
	}
	game.Rounds = append(game.Rounds, round)
	if endedAt != nil {
		game.EndedAt = endedAt
	}
	m.games[gameID] = game
	m.points[gameID] = append(m.points[gameID], points...)
	return nil
}

func (m *memStore) ListGamePoints(ctx context.Context, gameID string) ([]doko.RoundPoints, error) {
	return m.points[gameID], nil
}

func (m *memStore) AppendTelemetryEvent(ctx context.Context, evt storage.TelemetryEvent) error {
	m.events = append(m.events, evt)
	return nil
}

func (m *memStore) eventNames() []string {
	names := make([]string, len(m.events))
	for i, evt := range m.events {
		names[i] = evt.EventName
	}
	return names
}

var testClock = time.Date(2026, 8, 2, 19, 0, 0, 0, time.UTC)

func newTestService(store *memStore) *Service {
	svc := New(store, store, store, telemetry.NewEmitter(store))
	svc.clock = func() time.Time { return testClock }
	counter := 0
	svc.newID = func() (string, error) {
		counter++
		return fmt.Sprintf("id-%d", counter), nil
	}
	return svc
}

func createTestGame(t *testing.T, svc *Service, withSolos bool) doko.Game {
	t.Helper()
	game, err := svc.CreateGame(context.Background(), CreateGameInput{
		PlayerIDs:          []string{"anna", "bernd", "clara", "david"},
		MaxRounds:          8,
		WithMandatorySolos: withSolos,
	})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	return game
}

// normalInput is a plain round with the two named players on Re.
func normalInput(eyesRe int, re1, re2 string) RoundInput {
	in := RoundInput{Type: doko.RoundTypeNormal, EyesRe: eyesRe}
	for _, player := range []string{"anna", "bernd", "clara", "david"} {
		team := doko.TeamKontra
		if player == re1 || player == re2 {
			team = doko.TeamRe
		}
		in.Participants = append(in.Participants, doko.RoundParticipant{PlayerID: player, Team: team})
	}
	return in
}

func TestCreateGamePersists(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	game := createTestGame(t, svc, true)
	if game.ID != "id-1" {
		t.Fatalf("game id = %q, want id-1", game.ID)
	}
	if !game.CreatedAt.Equal(testClock) {
		t.Fatalf("created at = %v, want %v", game.CreatedAt, testClock)
	}
	if len(game.Participants) != 4 || game.Participants[2].Seat != 2 {
		t.Fatalf("unexpected participants: %+v", game.Participants)
	}

	if _, ok := store.games[game.ID]; !ok {
		t.Fatal("expected game to be persisted")
	}
	if names := store.eventNames(); len(names) != 1 || names[0] != telemetry.EventGameCreated {
		t.Fatalf("telemetry events = %v", names)
	}
}

func TestCreateGameValidatesPlayerCount(t *testing.T) {
	svc := newTestService(newMemStore())

	_, err := svc.CreateGame(context.Background(), CreateGameInput{
		PlayerIDs: []string{"anna", "bernd", "clara"},
		MaxRounds: 8,
	})
	if got := apperrors.GetCode(err); got != apperrors.CodeGameParticipantCount {
		t.Fatalf("code = %s, want %s", got, apperrors.CodeGameParticipantCount)
	}
}

func TestRecordRoundScoresAndPersists(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	game := createTestGame(t, svc, false)

	round, points, err := svc.RecordRound(context.Background(), game.ID, normalInput(130, "anna", "bernd"))
	if err != nil {
		t.Fatalf("record round: %v", err)
	}
	if round.Number != 1 {
		t.Fatalf("round number = %d, want 1", round.Number)
	}

	want := map[string]int{"anna": 1, "bernd": 1, "clara": -1, "david": -1}
	for _, pt := range points {
		if pt.Points != want[pt.PlayerID] {
			t.Fatalf("points for %s = %d, want %d", pt.PlayerID, pt.Points, want[pt.PlayerID])
		}
	}

	stored := store.games[game.ID]
	if len(stored.Rounds) != 1 || stored.Rounds[0].ID != round.ID {
		t.Fatalf("unexpected stored rounds: %+v", stored.Rounds)
	}
	names := store.eventNames()
	if len(names) != 2 || names[1] != telemetry.EventRoundRecorded {
		t.Fatalf("telemetry events = %v", names)
	}
}

func TestRecordRoundRejectsInvalidRound(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	game := createTestGame(t, svc, false)

	_, _, err := svc.RecordRound(context.Background(), game.ID, normalInput(300, "anna", "bernd"))
	if got := apperrors.GetCode(err); got != apperrors.CodeRoundEyesOutOfRange {
		t.Fatalf("code = %s, want %s", got, apperrors.CodeRoundEyesOutOfRange)
	}
	if len(store.games[game.ID].Rounds) != 0 {
		t.Fatal("rejected round must not be persisted")
	}
}

func TestRecordRoundEnforcesParadeOrder(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	game := createTestGame(t, svc, true)
	ctx := context.Background()

	for n := 1; n <= 4; n++ {
		if _, _, err := svc.RecordRound(ctx, game.ID, normalInput(130, "anna", "bernd")); err != nil {
			t.Fatalf("record round %d: %v", n, err)
		}
	}

	// Round 5 opens the parade; bernd sits left of the dealer and owes the
	// first solo, so a solo by clara is out of order.
	solo := RoundInput{
		Type:   doko.RoundTypeSoloKreuz,
		Solo:   doko.SoloPflicht,
		EyesRe: 121,
		Participants: []doko.RoundParticipant{
			{PlayerID: "clara", Team: doko.TeamRe},
			{PlayerID: "anna", Team: doko.TeamKontra},
			{PlayerID: "bernd", Team: doko.TeamKontra},
			{PlayerID: "david", Team: doko.TeamKontra},
		},
	}
	_, _, err := svc.RecordRound(ctx, game.ID, solo)
	if got := apperrors.GetCode(err); got != apperrors.CodeGameParadeWrongSoloist {
		t.Fatalf("code = %s, want %s", got, apperrors.CodeGameParadeWrongSoloist)
	}

	solo.Participants[0].PlayerID = "bernd"
	solo.Participants[2].PlayerID = "clara"
	if _, _, err := svc.RecordRound(ctx, game.ID, solo); err != nil {
		t.Fatalf("record parade solo: %v", err)
	}
}

func TestRecordRoundCompletesGame(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	game := createTestGame(t, svc, false)
	ctx := context.Background()

	for n := 1; n <= 8; n++ {
		if _, _, err := svc.RecordRound(ctx, game.ID, normalInput(130, "anna", "bernd")); err != nil {
			t.Fatalf("record round %d: %v", n, err)
		}
	}

	stored := store.games[game.ID]
	if stored.EndedAt == nil || !stored.EndedAt.Equal(testClock) {
		t.Fatalf("ended at = %v, want %v", stored.EndedAt, testClock)
	}
	names := store.eventNames()
	if names[len(names)-1] != telemetry.EventGameEnded {
		t.Fatalf("expected final telemetry event %s, got %v", telemetry.EventGameEnded, names)
	}

	_, _, err := svc.RecordRound(ctx, game.ID, normalInput(130, "anna", "bernd"))
	if got := apperrors.GetCode(err); got != apperrors.CodeGameComplete {
		t.Fatalf("code = %s, want %s", got, apperrors.CodeGameComplete)
	}
}

func TestRecordRoundNotFound(t *testing.T) {
	svc := newTestService(newMemStore())

	_, _, err := svc.RecordRound(context.Background(), "missing", normalInput(130, "anna", "bernd"))
	if got := apperrors.GetCode(err); got != apperrors.CodeNotFound {
		t.Fatalf("code = %s, want %s", got, apperrors.CodeNotFound)
	}
}

func TestScoreboardTotals(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	game := createTestGame(t, svc, false)
	ctx := context.Background()

	if _, _, err := svc.RecordRound(ctx, game.ID, normalInput(130, "anna", "bernd")); err != nil {
		t.Fatalf("record round 1: %v", err)
	}
	if _, _, err := svc.RecordRound(ctx, game.ID, normalInput(100, "clara", "david")); err != nil {
		t.Fatalf("record round 2: %v", err)
	}

	board, err := svc.Scoreboard(ctx, game.ID)
	if err != nil {
		t.Fatalf("scoreboard: %v", err)
	}

	want := []ScoreboardEntry{
		{PlayerID: "anna", Points: 2, Won: 2},
		{PlayerID: "bernd", Points: 2, Won: 2},
		{PlayerID: "clara", Points: -2, Lost: 2},
		{PlayerID: "david", Points: -2, Lost: 2},
	}
	if len(board) != len(want) {
		t.Fatalf("scoreboard size = %d, want %d", len(board), len(want))
	}
	for i, entry := range board {
		if entry != want[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, entry, want[i])
		}
	}
}

func TestNextRoundSchedule(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	game := createTestGame(t, svc, false)
	ctx := context.Background()

	info, err := svc.NextRound(ctx, game.ID)
	if err != nil {
		t.Fatalf("next round: %v", err)
	}
	if info.Number != 1 || info.DealerSeat != 0 || info.DealerID != "anna" {
		t.Fatalf("unexpected schedule: %+v", info)
	}
	if info.ParadeActive || info.ExpectedSoloist != "" {
		t.Fatalf("expected no parade, got %+v", info)
	}

	if _, _, err := svc.RecordRound(ctx, game.ID, normalInput(130, "anna", "bernd")); err != nil {
		t.Fatalf("record round: %v", err)
	}
	info, err = svc.NextRound(ctx, game.ID)
	if err != nil {
		t.Fatalf("next round: %v", err)
	}
	if info.Number != 2 || info.DealerSeat != 1 || info.DealerID != "bernd" {
		t.Fatalf("unexpected schedule: %+v", info)
	}
}

func TestNextRoundParade(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	game := createTestGame(t, svc, true)
	ctx := context.Background()

	for n := 1; n <= 4; n++ {
		if _, _, err := svc.RecordRound(ctx, game.ID, normalInput(130, "anna", "bernd")); err != nil {
			t.Fatalf("record round %d: %v", n, err)
		}
	}

	info, err := svc.NextRound(ctx, game.ID)
	if err != nil {
		t.Fatalf("next round: %v", err)
	}
	if !info.ParadeActive || info.ExpectedSoloist != "bernd" {
		t.Fatalf("expected parade with soloist bernd, got %+v", info)
	}
}
