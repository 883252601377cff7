package doko

import (
	"strconv"

	apperrors "github.com/ahentschel/doppelkopf.club/internal/errors"
)

var (
	// ErrGameParticipantCount indicates a table that is not four or five players.
	ErrGameParticipantCount = apperrors.New(apperrors.CodeGameParticipantCount, "game needs four or five players")
	// ErrGamePlayerDuplicate indicates the same player seated twice.
	ErrGamePlayerDuplicate = apperrors.New(apperrors.CodeGamePlayerDuplicate, "player ids must be unique")
	// ErrGameRoundCountInvalid indicates a round count outside the legal set for the player count.
	ErrGameRoundCountInvalid = apperrors.New(apperrors.CodeGameRoundCountInvalid, "round count is not legal for the player count")
	// ErrGameMandatorySoloForbidden indicates a mandatory solo in a game played without them.
	ErrGameMandatorySoloForbidden = apperrors.New(apperrors.CodeGameMandatorySoloForbidden, "game does not allow mandatory solos")
	// ErrGameMandatorySoloRepeated indicates a player with more than one mandatory solo.
	ErrGameMandatorySoloRepeated = apperrors.New(apperrors.CodeGameMandatorySoloRepeated, "player already played a mandatory solo")
	// ErrGameMandatorySoloMissing indicates a complete game with an unplayed obligation.
	ErrGameMandatorySoloMissing = apperrors.New(apperrors.CodeGameMandatorySoloMissing, "every player must play one mandatory solo")
	// ErrGameMandatorySoloTooMany indicates more outstanding obligations than rounds left.
	ErrGameMandatorySoloTooMany = apperrors.New(apperrors.CodeGameMandatorySoloTooMany, "outstanding mandatory solos exceed remaining rounds")
	// ErrGameDealerSeated indicates a five-player round including its dealer.
	ErrGameDealerSeated = apperrors.New(apperrors.CodeGameDealerSeated, "dealer cannot participate in the round")
	// ErrGameParadeSoloRequired indicates a parade round that is not a mandatory solo.
	ErrGameParadeSoloRequired = apperrors.New(apperrors.CodeGameParadeSoloRequired, "parade rounds must be mandatory solos")
	// ErrGameParadeWrongSoloist indicates a parade solo by the wrong player.
	ErrGameParadeWrongSoloist = apperrors.New(apperrors.CodeGameParadeWrongSoloist, "parade solo played out of order")
)

// ValidateGame checks a game's structural and scheduling invariants over
// its full round history, the latest round being the candidate under
// review. Checks run in a fixed order and the first violation wins.
func ValidateGame(g Game) error {
	count := len(g.Participants)
	if count != 4 && count != 5 {
		return apperrors.WithMetadata(
			apperrors.CodeGameParticipantCount,
			"game needs four or five players",
			map[string]string{"Count": strconv.Itoa(count)},
		)
	}

	seen := make(map[string]bool, count)
	for _, p := range g.Participants {
		if seen[p.PlayerID] {
			return apperrors.WithMetadata(
				apperrors.CodeGamePlayerDuplicate,
				"player ids must be unique",
				map[string]string{"PlayerID": p.PlayerID},
			)
		}
		seen[p.PlayerID] = true
	}

	if !legalRoundCount(count, g.MaxRounds) {
		return apperrors.WithMetadata(
			apperrors.CodeGameRoundCountInvalid,
			"round count is not legal for the player count",
			map[string]string{
				"MaxRounds": strconv.Itoa(g.MaxRounds),
				"Players":   strconv.Itoa(count),
			},
		)
	}

	if err := validateMandatorySolos(g); err != nil {
		return err
	}

	if len(g.Rounds) == 0 {
		return nil
	}
	latest := g.Rounds[len(g.Rounds)-1]

	if count == 5 {
		dealer := g.PlayerAtSeat(DealerSeat(g, latest.Number))
		for _, p := range latest.Participants {
			if p.PlayerID == dealer {
				return apperrors.WithMetadata(
					apperrors.CodeGameDealerSeated,
					"dealer cannot participate in the round",
					map[string]string{"PlayerID": dealer},
				)
			}
		}
	}

	return validateParade(g, latest)
}

func legalRoundCount(playerCount, maxRounds int) bool {
	for _, n := range LegalRoundCounts(playerCount) {
		if n == maxRounds {
			return true
		}
	}
	return false
}

func validateMandatorySolos(g Game) error {
	if !g.WithMandatorySolos {
		for _, r := range g.Rounds {
			if r.Solo == SoloPflicht {
				return ErrGameMandatorySoloForbidden
			}
		}
		return nil
	}

	played := make(map[string]int)
	for _, r := range g.Rounds {
		if r.Solo != SoloPflicht {
			continue
		}
		soloist := r.Soloist()
		played[soloist]++
		if played[soloist] > 1 {
			return apperrors.WithMetadata(
				apperrors.CodeGameMandatorySoloRepeated,
				"player already played a mandatory solo",
				map[string]string{"PlayerID": soloist},
			)
		}
	}

	owing := g.owingMandatorySolo(g.NextRoundNumber())
	if g.Complete() {
		if owing > 0 {
			return ErrGameMandatorySoloMissing
		}
		return nil
	}

	remaining := g.MaxRounds - len(g.Rounds)
	if owing > remaining {
		return apperrors.WithMetadata(
			apperrors.CodeGameMandatorySoloTooMany,
			"outstanding mandatory solos exceed remaining rounds",
			map[string]string{
				"Owing":     strconv.Itoa(owing),
				"Remaining": strconv.Itoa(remaining),
			},
		)
	}
	return nil
}

func validateParade(g Game, latest Round) error {
	if !ParadeActive(g, latest.Number) {
		return nil
	}
	if latest.Solo != SoloPflicht {
		return ErrGameParadeSoloRequired
	}
	expected, ok := ExpectedSoloist(g, latest.Number)
	if ok && latest.Soloist() != expected {
		return apperrors.WithMetadata(
			apperrors.CodeGameParadeWrongSoloist,
			"parade solo played out of order",
			map[string]string{
				"Expected": expected,
				"Actual":   latest.Soloist(),
			},
		)
	}
	return nil
}
