package doko

import (
	"errors"
	"testing"

	apperrors "github.com/ahentschel/doppelkopf.club/internal/errors"
)

func TestValidateRound(t *testing.T) {
	tests := []struct {
		name               string
		round              Round
		withMandatorySolos bool
		wantCode           apperrors.Code
	}{
		{
			name:  "valid normal round",
			round: normalRound(1, 121),
		},
		{
			name:               "valid mandatory solo",
			round:              soloRound(1, RoundTypeSoloKreuz, SoloPflicht, "anna", 100),
			withMandatorySolos: true,
		},
		{
			name: "too few participants",
			round: Round{Type: RoundTypeNormal, Participants: []RoundParticipant{
				{PlayerID: "anna", Team: TeamRe},
			}},
			wantCode: apperrors.CodeRoundParticipantCount,
		},
		{
			name:     "solo obligation without mandatory solos",
			round:    soloRound(1, RoundTypeSoloHerz, SoloLust, "anna", 121),
			wantCode: apperrors.CodeRoundSoloDisallowed,
		},
		{
			name: "missing team",
			round: Round{Type: RoundTypeNormal, EyesRe: 120, Participants: []RoundParticipant{
				{PlayerID: "anna", Team: TeamRe},
				{PlayerID: "bernd", Team: TeamRe},
				{PlayerID: "clara", Team: TeamKontra},
				{PlayerID: "david"},
			}},
			wantCode: apperrors.CodeRoundTeamMissing,
		},
		{
			name:     "eyes above 240",
			round:    normalRound(1, 241),
			wantCode: apperrors.CodeRoundEyesOutOfRange,
		},
		{
			name:     "negative eyes",
			round:    normalRound(1, -1),
			wantCode: apperrors.CodeRoundEyesOutOfRange,
		},
		{
			name:     "three foxes",
			round:    withBonus(withBonus(normalRound(1, 121), "anna", BonusFuchs, 2), "clara", BonusFuchs, 1),
			wantCode: apperrors.CodeRoundBonusLimitExceeded,
		},
		{
			name:     "two karlchen",
			round:    withBonus(normalRound(1, 121), "anna", BonusKarlchen, 2),
			wantCode: apperrors.CodeRoundBonusLimitExceeded,
		},
		{
			name:     "six doko",
			round:    withBonus(normalRound(1, 121), "bernd", BonusDoko, 6),
			wantCode: apperrors.CodeRoundBonusLimitExceeded,
		},
		{
			name:     "bonus in a solo round",
			round:    withBonus(soloRound(1, RoundTypeSoloBuben, SoloNone, "anna", 121), "clara", BonusFuchs, 1),
			wantCode: apperrors.CodeRoundBonusNotAllowed,
		},
		{
			name:     "bonus in an unresolved wedding",
			round:    withBonus(soloRound(1, RoundTypeHochzeitUngeklaert, SoloNone, "anna", 121), "anna", BonusDoko, 1),
			wantCode: apperrors.CodeRoundBonusNotAllowed,
		},
		{
			name: "three re players in a normal round",
			round: Round{Type: RoundTypeNormal, EyesRe: 120, Participants: []RoundParticipant{
				{PlayerID: "anna", Team: TeamRe},
				{PlayerID: "bernd", Team: TeamRe},
				{PlayerID: "clara", Team: TeamRe},
				{PlayerID: "david", Team: TeamKontra},
			}},
			wantCode: apperrors.CodeRoundTeamSplitInvalid,
		},
		{
			name: "two re players in a solo round",
			round: Round{Type: RoundTypeSoloHerz, EyesRe: 120, Participants: []RoundParticipant{
				{PlayerID: "anna", Team: TeamRe},
				{PlayerID: "bernd", Team: TeamRe},
				{PlayerID: "clara", Team: TeamKontra},
				{PlayerID: "david", Team: TeamKontra},
			}},
			wantCode: apperrors.CodeRoundTeamSplitInvalid,
		},
		{
			name:     "kontra call from a re player",
			round:    withCall(normalRound(1, 121), "anna", CallKontra),
			wantCode: apperrors.CodeRoundCallTeamMismatch,
		},
		{
			name:     "re call from a kontra player",
			round:    withCall(normalRound(1, 121), "david", CallRe),
			wantCode: apperrors.CodeRoundCallTeamMismatch,
		},
		{
			name:  "escalation call side is unrestricted",
			round: withCall(normalRound(1, 121), "david", CallKeine90),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRound(tt.round, tt.withMandatorySolos)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected code %s, got nil", tt.wantCode)
			}
			if got := apperrors.GetCode(err); got != tt.wantCode {
				t.Fatalf("code = %s, want %s", got, tt.wantCode)
			}
		})
	}
}

func TestValidateRoundFirstViolationWins(t *testing.T) {
	// Out-of-range eyes and an illegal bonus at once: the eyes check runs
	// first and must win.
	round := withBonus(normalRound(1, 300), "anna", BonusKarlchen, 2)
	err := ValidateRound(round, false)
	if !errors.Is(err, ErrRoundEyesOutOfRange) {
		t.Fatalf("error = %v, want %v", err, ErrRoundEyesOutOfRange)
	}
}
