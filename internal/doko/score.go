package doko

// teamCalls aggregates a party's announcements with the escalation ladder
// cascaded downward: Schwarz implies Keine 30 implies Keine 60 implies
// Keine 90.
type teamCalls struct {
	announced bool
	keine90   bool
	keine60   bool
	keine30   bool
	schwarz   bool
}

func collectCalls(r Round, team Team) teamCalls {
	var c teamCalls
	for _, p := range r.Participants {
		if p.Team != team {
			continue
		}
		for _, call := range p.Calls {
			c.announced = true
			switch call.Type {
			case CallKeine90:
				c.keine90 = true
			case CallKeine60:
				c.keine60 = true
			case CallKeine30:
				c.keine30 = true
			case CallSchwarz:
				c.schwarz = true
			}
		}
	}
	if c.schwarz {
		c.keine30 = true
	}
	if c.keine30 {
		c.keine60 = true
	}
	if c.keine60 {
		c.keine90 = true
	}
	return c
}

// winThresholds returns the eye counts each party must reach to win.
// Defaults favor Kontra on a 120/120 split; an announced Kontra without a
// Re answer flips that tiebreak.
func winThresholds(re, kontra teamCalls) (reEyes, kontraEyes int) {
	reEyes, kontraEyes = 121, 120
	if kontra.announced && !re.announced {
		reEyes, kontraEyes = 120, 121
	}
	reEyes = escalatedThreshold(reEyes, re, kontra)
	kontraEyes = escalatedThreshold(kontraEyes, kontra, re)
	return reEyes, kontraEyes
}

// escalatedThreshold adjusts one party's winning bar for escalation calls:
// the party's own calls raise its bar, while unanswered opposing calls
// lower it to the claimed limit.
func escalatedThreshold(base int, own, opp teamCalls) int {
	switch {
	case own.schwarz:
		return 240
	case own.keine30:
		return 211
	case own.keine60:
		return 181
	case own.keine90:
		return 151
	}
	switch {
	case opp.schwarz:
		return 0
	case opp.keine30:
		return 30
	case opp.keine60:
		return 60
	case opp.keine90:
		return 90
	}
	return base
}

// basePoints scores the win itself plus the independent under-90/60/30 and
// schwarz steps against the opposing party's eyes.
func basePoints(won bool, oppEyes int) int {
	pts := 0
	if won {
		pts++
	}
	if oppEyes < 90 {
		pts++
	}
	if oppEyes < 60 {
		pts++
	}
	if oppEyes < 30 {
		pts++
	}
	if oppEyes == 0 {
		pts++
	}
	return pts
}

// callPoints values a party's announcements: two for announcing at all,
// one per escalation rung held.
func callPoints(c teamCalls) int {
	if !c.announced {
		return 0
	}
	pts := 2
	for _, held := range []bool{c.keine90, c.keine60, c.keine30, c.schwarz} {
		if held {
			pts++
		}
	}
	return pts
}

// overcompliancePoints rewards beating the limit the opponent announced,
// regardless of who won the round.
func overcompliancePoints(ownEyes int, opp teamCalls) int {
	pts := 0
	if opp.keine90 && ownEyes >= 120 {
		pts++
	}
	if opp.keine60 && ownEyes >= 90 {
		pts++
	}
	if opp.keine30 && ownEyes >= 60 {
		pts++
	}
	if opp.schwarz && ownEyes >= 30 {
		pts++
	}
	return pts
}

// bonusPoints sums a party's special points. Special points only exist in
// normal and resolved-wedding rounds; the Kontra party additionally earns
// one for winning against the Re party.
func bonusPoints(r Round, team Team, kontraWon bool) int {
	if !r.Type.BonusEligible() {
		return 0
	}
	pts := 0
	if team == TeamKontra && kontraWon {
		pts++
	}
	for _, p := range r.Participants {
		if p.Team != team {
			continue
		}
		for _, b := range p.Bonuses {
			pts += b.Count
		}
	}
	return pts
}

// Score computes the signed point delta and result label for every
// participant of a structurally valid round. It is total: scoring never
// fails, and the two parties' team totals are exact negatives before the
// solo stake is applied.
func Score(r Round) []RoundPoints {
	reCalls := collectCalls(r, TeamRe)
	kontraCalls := collectCalls(r, TeamKontra)

	reEyes := r.teamEyes(TeamRe)
	kontraEyes := r.teamEyes(TeamKontra)

	reBar, kontraBar := winThresholds(reCalls, kontraCalls)
	reWon := reEyes >= reBar
	kontraWon := kontraEyes >= kontraBar

	reBase := basePoints(reWon, kontraEyes)
	kontraBase := basePoints(kontraWon, reEyes)

	// Announcements pay into one pool that goes to the actual winner.
	// On a draw the pool is forfeit.
	pool := callPoints(reCalls) + callPoints(kontraCalls)
	callDelta := 0
	switch {
	case reWon:
		callDelta = pool
	case kontraWon:
		callDelta = -pool
	}

	overDelta := overcompliancePoints(reEyes, kontraCalls) - overcompliancePoints(kontraEyes, reCalls)
	bonusDelta := bonusPoints(r, TeamRe, kontraWon) - bonusPoints(r, TeamKontra, kontraWon)

	reTotal := (reBase - kontraBase) + callDelta + overDelta + bonusDelta
	kontraTotal := -reTotal

	rePoints, kontraPoints := reTotal, kontraTotal
	if r.Type.SoloScored() {
		// The soloist settles against three opponents.
		rePoints = reTotal * 3
	}

	reResult, kontraResult := ResultDraw, ResultDraw
	switch {
	case reWon:
		reResult, kontraResult = ResultWon, ResultLost
	case kontraWon:
		reResult, kontraResult = ResultLost, ResultWon
	}

	out := make([]RoundPoints, 0, len(r.Participants))
	for _, p := range r.Participants {
		pts, res := kontraPoints, kontraResult
		if p.Team == TeamRe {
			pts, res = rePoints, reResult
		}
		out = append(out, RoundPoints{PlayerID: p.PlayerID, Points: pts, Result: res})
	}
	return out
}
