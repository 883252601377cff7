package main

import (
	"strings"
	"testing"

	"github.com/ahentschel/doppelkopf.club/internal/doko"
)

func TestParseRoundInput(t *testing.T) {
	input := `{
		"type": "normal",
		"eyes_re": 131,
		"participants": [
			{"player_id": "anna", "team": "re", "calls": ["re", "keine90"]},
			{"player_id": "bernd", "team": "re", "bonuses": [{"type": "fuchs", "count": 1}]},
			{"player_id": "clara", "team": "kontra"},
			{"player_id": "david", "team": "kontra"}
		]
	}`

	in, err := parseRoundInput(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse round: %v", err)
	}
	if in.Type != doko.RoundTypeNormal || in.Solo != doko.SoloNone || in.EyesRe != 131 {
		t.Fatalf("unexpected round: %+v", in)
	}
	if len(in.Participants) != 4 {
		t.Fatalf("expected 4 participants, got %d", len(in.Participants))
	}

	anna := in.Participants[0]
	if anna.Team != doko.TeamRe || len(anna.Calls) != 2 || anna.Calls[1].Type != doko.CallKeine90 {
		t.Fatalf("unexpected participant: %+v", anna)
	}
	if anna.Calls[0].PlayerID != "anna" {
		t.Fatalf("call must carry the player id, got %q", anna.Calls[0].PlayerID)
	}

	bernd := in.Participants[1]
	if len(bernd.Bonuses) != 1 || bernd.Bonuses[0].Type != doko.BonusFuchs || bernd.Bonuses[0].Count != 1 {
		t.Fatalf("unexpected bonuses: %+v", bernd.Bonuses)
	}
}

func TestParseRoundInputSolo(t *testing.T) {
	input := `{
		"type": "solo-kreuz",
		"solo": "pflicht",
		"eyes_re": 121,
		"participants": [
			{"player_id": "anna", "team": "re"},
			{"player_id": "bernd", "team": "kontra"},
			{"player_id": "clara", "team": "kontra"},
			{"player_id": "david", "team": "kontra"}
		]
	}`

	in, err := parseRoundInput(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse round: %v", err)
	}
	if in.Type != doko.RoundTypeSoloKreuz || in.Solo != doko.SoloPflicht {
		t.Fatalf("unexpected round: %+v", in)
	}
}

func TestParseRoundInputRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"round type", `{"type": "grand", "participants": []}`},
		{"solo kind", `{"type": "normal", "solo": "maybe", "participants": []}`},
		{"team", `{"type": "normal", "participants": [{"player_id": "anna", "team": "blue"}]}`},
		{"call", `{"type": "normal", "participants": [{"player_id": "anna", "team": "re", "calls": ["absage"]}]}`},
		{"bonus", `{"type": "normal", "participants": [{"player_id": "anna", "team": "re", "bonuses": [{"type": "adler"}]}]}`},
		{"unknown field", `{"type": "normal", "color": "green", "participants": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseRoundInput(strings.NewReader(tt.input)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
