package doko

import "time"

// MaxEyes is the total trick-point value in play; the Kontra party's eyes
// are always the complement of the Re party's against this total.
const MaxEyes = 240

// RoundSeats is the number of participants in every round.
const RoundSeats = 4

// Call is one announcement made by a player during a round.
type Call struct {
	PlayerID string
	Type     CallType
}

// Bonus credits a player with a number of special-point events of one type.
type Bonus struct {
	PlayerID string
	Type     BonusType
	Count    int
}

// RoundParticipant is one player's seat in a round with their team
// assignment, announcements and special points. Team membership is scoped
// to the round, never to the player.
type RoundParticipant struct {
	PlayerID string
	Team     Team
	Calls    []Call
	Bonuses  []Bonus
}

// Round is one finished deal of a game. EyesRe is the Re party's trick
// points; the Kontra party holds MaxEyes - EyesRe. Rounds are immutable
// once scored.
type Round struct {
	ID           string
	Number       int
	Type         RoundType
	Solo         SoloKind
	EyesRe       int
	Participants []RoundParticipant
	CreatedAt    time.Time
}

// RoundPoints is the scored outcome for one participant of a round.
type RoundPoints struct {
	PlayerID string
	Points   int
	Result   Result
}

// Soloist returns the player id of the round's Re participant, which for
// one-against-three rounds is the soloist. Empty when no Re seat exists.
func (r Round) Soloist() string {
	for _, p := range r.Participants {
		if p.Team == TeamRe {
			return p.PlayerID
		}
	}
	return ""
}

// teamEyes returns a party's eye count derived from the stored Re eyes.
func (r Round) teamEyes(t Team) int {
	if t == TeamRe {
		return r.EyesRe
	}
	return MaxEyes - r.EyesRe
}
