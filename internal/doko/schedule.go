package doko

// DealerSeat returns the seat index dealing the given round number.
//
// Without mandatory solos the deal simply rotates. With mandatory solos the
// rotation pauses on mandatory-solo rounds so nobody loses a deal to an
// obligation, until the parade begins; from then on every round is a
// mandatory solo anyway and the rotation advances normally from the seat
// it held when the parade started.
//
// In five-player games the dealer sits out, so a player still owing their
// mandatory solo must never deal the final round; the deal shifts one seat
// forward in that case.
func DealerSeat(g Game, roundNumber int) int {
	count := len(g.Participants)
	if count == 0 {
		return 0
	}

	if !g.WithMandatorySolos {
		return (roundNumber - 1) % count
	}

	var seat int
	if start, ok := paradeStart(g, roundNumber); ok && roundNumber >= start {
		anchor := pausedSeat(g, start, count)
		seat = (anchor + (roundNumber - start)) % count
	} else {
		seat = pausedSeat(g, roundNumber, count)
	}

	if count == 5 && roundNumber == g.MaxRounds {
		if !g.playedMandatorySolo(g.PlayerAtSeat(seat), roundNumber) {
			seat = (seat + 1) % count
		}
	}
	return seat
}

// pausedSeat is the rotation with mandatory-solo rounds not consuming a step.
func pausedSeat(g Game, roundNumber, count int) int {
	return (roundNumber - 1 - g.mandatorySolosBefore(roundNumber)) % count
}

// paradeStart returns the first round number at or before roundNumber at
// which the rounds left exactly match the players still owing a mandatory
// solo. From that point on, by pigeonhole, every remaining round must be a
// mandatory solo.
func paradeStart(g Game, roundNumber int) (int, bool) {
	if !g.WithMandatorySolos {
		return 0, false
	}
	upto := roundNumber
	if upto > g.MaxRounds {
		upto = g.MaxRounds
	}
	for r := 1; r <= upto; r++ {
		remaining := g.MaxRounds - r + 1
		if owing := g.owingMandatorySolo(r); owing > 0 && owing == remaining {
			return r, true
		}
	}
	return 0, false
}

// ParadeActive reports whether the given round number falls into the
// parade, the terminal phase in which every round must be a still-owed
// mandatory solo.
func ParadeActive(g Game, roundNumber int) bool {
	if !g.WithMandatorySolos || roundNumber < 1 || roundNumber > g.MaxRounds {
		return false
	}
	start, ok := paradeStart(g, roundNumber)
	return ok && roundNumber >= start
}

// ExpectedSoloist returns the player obligated to play the mandatory solo
// in the given parade round. Ordering starts at the seat after the dealer
// and wraps around the table, skipping the dealer's seat entirely; the
// first player without a played mandatory solo is up. The second return is
// false outside the parade or when nobody owes a solo.
func ExpectedSoloist(g Game, roundNumber int) (string, bool) {
	if !ParadeActive(g, roundNumber) {
		return "", false
	}
	count := len(g.Participants)
	dealer := DealerSeat(g, roundNumber)
	for i := 1; i < count; i++ {
		player := g.PlayerAtSeat((dealer + i) % count)
		if player == "" {
			continue
		}
		if !g.playedMandatorySolo(player, roundNumber) {
			return player, true
		}
	}
	return "", false
}
