package doko

import (
	"strconv"

	apperrors "github.com/ahentschel/doppelkopf.club/internal/errors"
)

var (
	// ErrRoundParticipantCount indicates a round without exactly four seats.
	ErrRoundParticipantCount = apperrors.New(apperrors.CodeRoundParticipantCount, "round must have exactly four participants")
	// ErrRoundSoloDisallowed indicates a solo obligation in a game played without mandatory solos.
	ErrRoundSoloDisallowed = apperrors.New(apperrors.CodeRoundSoloDisallowed, "solo obligation requires a game with mandatory solos")
	// ErrRoundTeamMissing indicates a participant without a team assignment.
	ErrRoundTeamMissing = apperrors.New(apperrors.CodeRoundTeamMissing, "participant team is required")
	// ErrRoundEyesOutOfRange indicates Re eyes outside [0, 240].
	ErrRoundEyesOutOfRange = apperrors.New(apperrors.CodeRoundEyesOutOfRange, "re eyes must be between 0 and 240")
	// ErrRoundBonusLimitExceeded indicates more special points of one type than the round can contain.
	ErrRoundBonusLimitExceeded = apperrors.New(apperrors.CodeRoundBonusLimitExceeded, "bonus count exceeds its limit")
	// ErrRoundBonusNotAllowed indicates special points in a round type that scores none.
	ErrRoundBonusNotAllowed = apperrors.New(apperrors.CodeRoundBonusNotAllowed, "bonuses are only allowed in normal and wedding rounds")
	// ErrRoundTeamSplitInvalid indicates team sizes that do not fit the round type.
	ErrRoundTeamSplitInvalid = apperrors.New(apperrors.CodeRoundTeamSplitInvalid, "team split does not match round type")
	// ErrRoundCallTeamMismatch indicates a party announcement made by a member of the other party.
	ErrRoundCallTeamMismatch = apperrors.New(apperrors.CodeRoundCallTeamMismatch, "call does not match the player's team")
)

// bonusLimits caps the aggregate special points a single round can
// physically contain: two foxes, one Karlchen, five Doppelkopf tricks.
var bonusLimits = map[BonusType]int{
	BonusFuchs:    2,
	BonusKarlchen: 1,
	BonusDoko:     5,
}

// ValidateRound checks one candidate round for legality. Checks run in a
// fixed order and the first violation wins; nil means the round may be
// recorded. withMandatorySolos is the owning game's configuration.
func ValidateRound(r Round, withMandatorySolos bool) error {
	if len(r.Participants) != RoundSeats {
		return apperrors.WithMetadata(
			apperrors.CodeRoundParticipantCount,
			"round must have exactly four participants",
			map[string]string{"Count": strconv.Itoa(len(r.Participants))},
		)
	}

	if r.Solo != SoloNone && !withMandatorySolos {
		return ErrRoundSoloDisallowed
	}

	for _, p := range r.Participants {
		if p.Team == TeamUnspecified {
			return apperrors.WithMetadata(
				apperrors.CodeRoundTeamMissing,
				"participant team is required",
				map[string]string{"PlayerID": p.PlayerID},
			)
		}
	}

	if r.EyesRe < 0 || r.EyesRe > MaxEyes {
		return apperrors.WithMetadata(
			apperrors.CodeRoundEyesOutOfRange,
			"re eyes must be between 0 and 240",
			map[string]string{"Eyes": strconv.Itoa(r.EyesRe)},
		)
	}

	if err := validateBonuses(r); err != nil {
		return err
	}

	if err := validateTeamSplit(r); err != nil {
		return err
	}

	return validateCallTeams(r)
}

func validateBonuses(r Round) error {
	totals := map[BonusType]int{}
	for _, p := range r.Participants {
		for _, b := range p.Bonuses {
			totals[b.Type] += b.Count
		}
	}

	for _, bt := range []BonusType{BonusFuchs, BonusKarlchen, BonusDoko} {
		if totals[bt] > bonusLimits[bt] {
			return apperrors.WithMetadata(
				apperrors.CodeRoundBonusLimitExceeded,
				"bonus count exceeds its limit",
				map[string]string{
					"Bonus": bt.String(),
					"Count": strconv.Itoa(totals[bt]),
					"Limit": strconv.Itoa(bonusLimits[bt]),
				},
			)
		}
	}

	if !r.Type.BonusEligible() {
		for _, total := range totals {
			if total > 0 {
				return ErrRoundBonusNotAllowed
			}
		}
	}

	return nil
}

func validateTeamSplit(r Round) error {
	re, kontra := 0, 0
	for _, p := range r.Participants {
		switch p.Team {
		case TeamRe:
			re++
		case TeamKontra:
			kontra++
		}
	}

	wantRe := 1
	if r.Type.TwoVsTwo() {
		wantRe = 2
	}
	if re != wantRe || kontra != RoundSeats-wantRe {
		return apperrors.WithMetadata(
			apperrors.CodeRoundTeamSplitInvalid,
			"team split does not match round type",
			map[string]string{
				"Type":   r.Type.String(),
				"Re":     strconv.Itoa(re),
				"Kontra": strconv.Itoa(kontra),
			},
		)
	}
	return nil
}

func validateCallTeams(r Round) error {
	for _, p := range r.Participants {
		for _, call := range p.Calls {
			mismatch := (call.Type == CallRe && p.Team != TeamRe) ||
				(call.Type == CallKontra && p.Team != TeamKontra)
			if mismatch {
				return apperrors.WithMetadata(
					apperrors.CodeRoundCallTeamMismatch,
					"call does not match the player's team",
					map[string]string{
						"PlayerID": p.PlayerID,
						"Call":     call.Type.String(),
					},
				)
			}
		}
	}
	return nil
}
