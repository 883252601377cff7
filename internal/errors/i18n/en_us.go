package i18n

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeUnknown: "An unexpected error occurred",

		// Round errors
		CodeRoundParticipantCount:   "A round must have exactly four participants",
		CodeRoundSoloDisallowed:     "This game is played without mandatory solos",
		CodeRoundTeamMissing:        "Every participant must be assigned to a team",
		CodeRoundEyesOutOfRange:     "The Re party's eyes must be between 0 and 240",
		CodeRoundBonusLimitExceeded: "At most {{.Limit}} bonus points of type {{.Bonus}} are allowed",
		CodeRoundBonusNotAllowed:    "Bonus points only exist in normal and wedding rounds",
		CodeRoundTeamSplitInvalid:   "The team split does not match the round type",
		CodeRoundCallTeamMismatch:   "The call {{.Call}} does not match the player's team",

		// Game errors
		CodeGameParticipantCount:       "A game needs four or five players",
		CodeGamePlayerDuplicate:        "Each player may join a game only once",
		CodeGameRoundCountInvalid:      "A round count of {{.MaxRounds}} is not legal for {{.Players}} players",
		CodeGameMandatorySoloForbidden: "This game is played without mandatory solos",
		CodeGameMandatorySoloRepeated:  "A player may only play one mandatory solo",
		CodeGameMandatorySoloMissing:   "Every player must have played a mandatory solo by the end of the game",
		CodeGameMandatorySoloTooMany:   "The remaining rounds cannot fit all outstanding mandatory solos",
		CodeGameDealerSeated:           "The dealer must sit out this round",
		CodeGameParadeSoloRequired:     "During the parade every round must be a mandatory solo",
		CodeGameParadeWrongSoloist:     "During the parade it is {{.Expected}}'s turn to play the mandatory solo",
		CodeGameComplete:               "The game has already ended",

		// Storage errors
		CodeNotFound: "The requested record was not found",
	},
}
