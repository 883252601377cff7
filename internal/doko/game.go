package doko

import "time"

// GameParticipant seats one player at the table for the whole game.
type GameParticipant struct {
	PlayerID string
	Seat     int
}

// Game is a full Doppelkopf evening: the seated players, the agreed round
// count, and the ordered round history. Rounds are appended by the caller
// after validation, sorted ascending and dense from 1.
type Game struct {
	ID                 string
	MaxRounds          int
	WithMandatorySolos bool
	Participants       []GameParticipant
	Rounds             []Round
	CreatedAt          time.Time
	EndedAt            *time.Time
}

// legalRoundCounts are the agreed-upon game lengths: full rotations of the
// deal for four players, and their five-player equivalents.
var legalRoundCounts = map[int][]int{
	4: {8, 12, 16, 20, 24},
	5: {10, 15, 20, 25, 30},
}

// LegalRoundCounts returns the allowed MaxRounds values for a player count.
// The result is nil for unsupported player counts.
func LegalRoundCounts(playerCount int) []int {
	counts, ok := legalRoundCounts[playerCount]
	if !ok {
		return nil
	}
	out := make([]int, len(counts))
	copy(out, counts)
	return out
}

// Complete reports whether the game has reached its agreed round count.
func (g Game) Complete() bool {
	return len(g.Rounds) >= g.MaxRounds
}

// NextRoundNumber returns the number the next recorded round must carry.
func (g Game) NextRoundNumber() int {
	return len(g.Rounds) + 1
}

// PlayerAtSeat returns the player id seated at the given position, or the
// empty string when the seat is unoccupied.
func (g Game) PlayerAtSeat(seat int) string {
	for _, p := range g.Participants {
		if p.Seat == seat {
			return p.PlayerID
		}
	}
	return ""
}

// playedMandatorySolo reports whether the player appears as the soloist of
// a mandatory-solo round numbered below before.
func (g Game) playedMandatorySolo(playerID string, before int) bool {
	for _, r := range g.Rounds {
		if r.Number >= before {
			continue
		}
		if r.Solo == SoloPflicht && r.Soloist() == playerID {
			return true
		}
	}
	return false
}

// mandatorySolosBefore counts mandatory-solo rounds numbered below before.
func (g Game) mandatorySolosBefore(before int) int {
	count := 0
	for _, r := range g.Rounds {
		if r.Number < before && r.Solo == SoloPflicht {
			count++
		}
	}
	return count
}

// owingMandatorySolo counts players who have not yet played their
// mandatory solo in any round numbered below before.
func (g Game) owingMandatorySolo(before int) int {
	owing := 0
	for _, p := range g.Participants {
		if !g.playedMandatorySolo(p.PlayerID, before) {
			owing++
		}
	}
	return owing
}
