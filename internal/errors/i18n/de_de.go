package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown = "UNKNOWN"

	CodeRoundParticipantCount   = "ROUND_PARTICIPANT_COUNT_INVALID"
	CodeRoundSoloDisallowed     = "ROUND_SOLO_REQUIRES_MANDATORY_SOLOS"
	CodeRoundTeamMissing        = "ROUND_PARTICIPANT_TEAM_MISSING"
	CodeRoundEyesOutOfRange     = "ROUND_EYES_OUT_OF_RANGE"
	CodeRoundBonusLimitExceeded = "ROUND_BONUS_LIMIT_EXCEEDED"
	CodeRoundBonusNotAllowed    = "ROUND_BONUS_NOT_ALLOWED"
	CodeRoundTeamSplitInvalid   = "ROUND_TEAM_SPLIT_INVALID"
	CodeRoundCallTeamMismatch   = "ROUND_CALL_TEAM_MISMATCH"

	CodeGameParticipantCount       = "GAME_PARTICIPANT_COUNT_INVALID"
	CodeGamePlayerDuplicate        = "GAME_PLAYER_DUPLICATE"
	CodeGameRoundCountInvalid      = "GAME_ROUND_COUNT_INVALID"
	CodeGameMandatorySoloForbidden = "GAME_MANDATORY_SOLO_DISALLOWED"
	CodeGameMandatorySoloRepeated  = "GAME_MANDATORY_SOLO_REPEATED"
	CodeGameMandatorySoloMissing   = "GAME_MANDATORY_SOLO_MISSING"
	CodeGameMandatorySoloTooMany   = "GAME_MANDATORY_SOLO_INFEASIBLE"
	CodeGameDealerSeated           = "GAME_DEALER_SEATED"
	CodeGameParadeSoloRequired     = "GAME_PARADE_SOLO_REQUIRED"
	CodeGameParadeWrongSoloist     = "GAME_PARADE_WRONG_SOLOIST"
	CodeGameComplete               = "GAME_COMPLETE"

	CodeNotFound = "NOT_FOUND"
)

// deDECatalog carries the reference German messages. These texts are the
// user-facing contract; clients key on the code, never on the wording.
var deDECatalog = &Catalog{
	locale: "de-DE",
	messages: map[Code]string{
		CodeUnknown: "Ein unerwarteter Fehler ist aufgetreten",

		// Round errors
		CodeRoundParticipantCount:   "Eine Runde muss genau vier Teilnehmer haben",
		CodeRoundSoloDisallowed:     "Diese Partie wird ohne Pflichtsoli gespielt",
		CodeRoundTeamMissing:        "Jeder Teilnehmer muss einem Team zugeordnet sein",
		CodeRoundEyesOutOfRange:     "Die Augen der Re-Partei müssen zwischen 0 und 240 liegen",
		CodeRoundBonusLimitExceeded: "Höchstens {{.Limit}} Sonderpunkte vom Typ {{.Bonus}} sind erlaubt",
		CodeRoundBonusNotAllowed:    "Sonderpunkte gibt es nur in Normal- und Hochzeitsrunden",
		CodeRoundTeamSplitInvalid:   "Die Teamaufteilung passt nicht zum Rundentyp",
		CodeRoundCallTeamMismatch:   "Die Ansage {{.Call}} passt nicht zum Team des Spielers",

		// Game errors
		CodeGameParticipantCount:       "Eine Partie braucht vier oder fünf Spieler",
		CodeGamePlayerDuplicate:        "Jeder Spieler darf nur einmal an der Partie teilnehmen",
		CodeGameRoundCountInvalid:      "Die Rundenzahl {{.MaxRounds}} ist für {{.Players}} Spieler nicht zulässig",
		CodeGameMandatorySoloForbidden: "Diese Partie wird ohne Pflichtsoli gespielt",
		CodeGameMandatorySoloRepeated:  "Ein Spieler darf nur ein Pflichtsolo spielen",
		CodeGameMandatorySoloMissing:   "Am Ende der Partie muss jeder Spieler ein Pflichtsolo gespielt haben",
		CodeGameMandatorySoloTooMany:   "Die verbleibenden Runden reichen nicht für alle ausstehenden Pflichtsoli",
		CodeGameDealerSeated:           "Der Geber darf in dieser Runde nicht mitspielen",
		CodeGameParadeSoloRequired:     "In der Vorführung muss jede Runde ein Pflichtsolo sein",
		CodeGameParadeWrongSoloist:     "In der Vorführung ist {{.Expected}} mit dem Pflichtsolo an der Reihe",
		CodeGameComplete:               "Die Partie ist bereits beendet",

		// Storage errors
		CodeNotFound: "Der angeforderte Datensatz wurde nicht gefunden",
	},
}
