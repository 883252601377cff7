package doko

// Team assigns a round participant to one of the two parties.
type Team int

const (
	// TeamUnspecified represents a missing team assignment.
	TeamUnspecified Team = iota
	// TeamRe is the Re party.
	TeamRe
	// TeamKontra is the Kontra party.
	TeamKontra
)

// String returns the display name of the team.
func (t Team) String() string {
	switch t {
	case TeamRe:
		return "Re"
	case TeamKontra:
		return "Kontra"
	default:
		return "Unspecified"
	}
}

// CallType identifies an announcement made during a round.
//
// Keine90 through Schwarz form a strict escalation ladder; announcing a
// higher rung implies every lower one for the announcing party.
type CallType int

const (
	// CallUnspecified represents an invalid call value.
	CallUnspecified CallType = iota
	// CallRe announces the Re party.
	CallRe
	// CallKontra announces the Kontra party.
	CallKontra
	// CallKeine90 claims the opponents stay under 90 eyes.
	CallKeine90
	// CallKeine60 claims the opponents stay under 60 eyes.
	CallKeine60
	// CallKeine30 claims the opponents stay under 30 eyes.
	CallKeine30
	// CallSchwarz claims the opponents take no trick at all.
	CallSchwarz
)

// String returns the display name of the call.
func (c CallType) String() string {
	switch c {
	case CallRe:
		return "Re"
	case CallKontra:
		return "Kontra"
	case CallKeine90:
		return "Keine 90"
	case CallKeine60:
		return "Keine 60"
	case CallKeine30:
		return "Keine 30"
	case CallSchwarz:
		return "Schwarz"
	default:
		return "Unspecified"
	}
}

// BonusType identifies a special-point event credited to a participant.
type BonusType int

const (
	// BonusUnspecified represents an invalid bonus value.
	BonusUnspecified BonusType = iota
	// BonusDoko is a Doppelkopf trick (40+ eyes in one trick).
	BonusDoko
	// BonusFuchs is a captured fox (opposing ace of diamonds).
	BonusFuchs
	// BonusKarlchen is winning the last trick with a jack of clubs.
	BonusKarlchen
)

// String returns the display name of the bonus.
func (b BonusType) String() string {
	switch b {
	case BonusDoko:
		return "Doko"
	case BonusFuchs:
		return "Fuchs"
	case BonusKarlchen:
		return "Karlchen"
	default:
		return "Unspecified"
	}
}

// RoundType is the category a round was played as.
type RoundType int

const (
	// RoundTypeUnspecified represents an invalid round type.
	RoundTypeUnspecified RoundType = iota
	// RoundTypeNormal is a regular two-against-two round.
	RoundTypeNormal
	// RoundTypeHochzeitNormal is a wedding where a partner was found.
	RoundTypeHochzeitNormal
	// RoundTypeHochzeitStill is a silent wedding played alone.
	RoundTypeHochzeitStill
	// RoundTypeHochzeitUngeklaert is a wedding that never resolved.
	RoundTypeHochzeitUngeklaert
	// RoundTypeSoloKaro is a diamonds trump solo.
	RoundTypeSoloKaro
	// RoundTypeSoloHerz is a hearts trump solo.
	RoundTypeSoloHerz
	// RoundTypeSoloPik is a spades trump solo.
	RoundTypeSoloPik
	// RoundTypeSoloKreuz is a clubs trump solo.
	RoundTypeSoloKreuz
	// RoundTypeSoloBuben is a jacks-only solo.
	RoundTypeSoloBuben
	// RoundTypeSoloDamen is a queens-only solo.
	RoundTypeSoloDamen
	// RoundTypeSoloFleischlos is a trumpless (aces) solo.
	RoundTypeSoloFleischlos
)

// String returns the display name of the round type.
func (rt RoundType) String() string {
	switch rt {
	case RoundTypeNormal:
		return "Normal"
	case RoundTypeHochzeitNormal:
		return "Hochzeit"
	case RoundTypeHochzeitStill:
		return "Stille Hochzeit"
	case RoundTypeHochzeitUngeklaert:
		return "Ungeklärte Hochzeit"
	case RoundTypeSoloKaro:
		return "Karo-Solo"
	case RoundTypeSoloHerz:
		return "Herz-Solo"
	case RoundTypeSoloPik:
		return "Pik-Solo"
	case RoundTypeSoloKreuz:
		return "Kreuz-Solo"
	case RoundTypeSoloBuben:
		return "Buben-Solo"
	case RoundTypeSoloDamen:
		return "Damen-Solo"
	case RoundTypeSoloFleischlos:
		return "Fleischloses"
	default:
		return "Unspecified"
	}
}

// Solo reports whether the round type is one of the seven solo variants.
func (rt RoundType) Solo() bool {
	switch rt {
	case RoundTypeSoloKaro, RoundTypeSoloHerz, RoundTypeSoloPik, RoundTypeSoloKreuz,
		RoundTypeSoloBuben, RoundTypeSoloDamen, RoundTypeSoloFleischlos:
		return true
	}
	return false
}

// SoloScored reports whether the round settles one-against-three: the lone
// Re player's points carry the threefold stake. This covers the solo
// variants plus both weddings played without a revealed partner.
func (rt RoundType) SoloScored() bool {
	return rt.Solo() || rt == RoundTypeHochzeitStill || rt == RoundTypeHochzeitUngeklaert
}

// TwoVsTwo reports whether the round splits the table two against two.
func (rt RoundType) TwoVsTwo() bool {
	return rt == RoundTypeNormal || rt == RoundTypeHochzeitNormal
}

// BonusEligible reports whether special points count in this round type.
func (rt RoundType) BonusEligible() bool {
	return rt == RoundTypeNormal || rt == RoundTypeHochzeitNormal
}

// SoloKind distinguishes how a solo round came about.
type SoloKind int

const (
	// SoloNone means the round is not bound to a solo obligation.
	SoloNone SoloKind = iota
	// SoloPflicht is the mandatory solo every player owes once per game.
	SoloPflicht
	// SoloLust is a voluntary solo.
	SoloLust
)

// String returns the display name of the solo kind.
func (s SoloKind) String() string {
	switch s {
	case SoloPflicht:
		return "Pflicht"
	case SoloLust:
		return "Lust"
	default:
		return "None"
	}
}

// Result labels a participant's outcome for one round.
type Result int

const (
	// ResultUnspecified represents an invalid result value.
	ResultUnspecified Result = iota
	// ResultWon means the participant's team met its winning threshold.
	ResultWon
	// ResultLost means the opposing team met its threshold.
	ResultLost
	// ResultDraw means neither team met its threshold.
	ResultDraw
)

// String returns the display name of the result.
func (r Result) String() string {
	switch r {
	case ResultWon:
		return "Won"
	case ResultLost:
		return "Lost"
	case ResultDraw:
		return "Draw"
	default:
		return "Unspecified"
	}
}
