package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Round errors
	CodeRoundParticipantCount   Code = "ROUND_PARTICIPANT_COUNT_INVALID"
	CodeRoundSoloDisallowed     Code = "ROUND_SOLO_REQUIRES_MANDATORY_SOLOS"
	CodeRoundTeamMissing        Code = "ROUND_PARTICIPANT_TEAM_MISSING"
	CodeRoundEyesOutOfRange     Code = "ROUND_EYES_OUT_OF_RANGE"
	CodeRoundBonusLimitExceeded Code = "ROUND_BONUS_LIMIT_EXCEEDED"
	CodeRoundBonusNotAllowed    Code = "ROUND_BONUS_NOT_ALLOWED"
	CodeRoundTeamSplitInvalid   Code = "ROUND_TEAM_SPLIT_INVALID"
	CodeRoundCallTeamMismatch   Code = "ROUND_CALL_TEAM_MISMATCH"

	// Game errors
	CodeGameParticipantCount       Code = "GAME_PARTICIPANT_COUNT_INVALID"
	CodeGamePlayerDuplicate        Code = "GAME_PLAYER_DUPLICATE"
	CodeGameRoundCountInvalid      Code = "GAME_ROUND_COUNT_INVALID"
	CodeGameMandatorySoloForbidden Code = "GAME_MANDATORY_SOLO_DISALLOWED"
	CodeGameMandatorySoloRepeated  Code = "GAME_MANDATORY_SOLO_REPEATED"
	CodeGameMandatorySoloMissing   Code = "GAME_MANDATORY_SOLO_MISSING"
	CodeGameMandatorySoloTooMany   Code = "GAME_MANDATORY_SOLO_INFEASIBLE"
	CodeGameDealerSeated           Code = "GAME_DEALER_SEATED"
	CodeGameParadeSoloRequired     Code = "GAME_PARADE_SOLO_REQUIRED"
	CodeGameParadeWrongSoloist     Code = "GAME_PARADE_WRONG_SOLOIST"
	CodeGameComplete               Code = "GAME_COMPLETE"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeRoundParticipantCount,
		CodeRoundSoloDisallowed,
		CodeRoundTeamMissing,
		CodeRoundEyesOutOfRange,
		CodeRoundBonusLimitExceeded,
		CodeRoundBonusNotAllowed,
		CodeRoundTeamSplitInvalid,
		CodeRoundCallTeamMismatch,
		CodeGameParticipantCount,
		CodeGamePlayerDuplicate,
		CodeGameRoundCountInvalid:
		return codes.InvalidArgument

	// FailedPrecondition - game state doesn't allow the round
	case CodeGameMandatorySoloForbidden,
		CodeGameMandatorySoloRepeated,
		CodeGameMandatorySoloMissing,
		CodeGameMandatorySoloTooMany,
		CodeGameDealerSeated,
		CodeGameParadeSoloRequired,
		CodeGameParadeWrongSoloist,
		CodeGameComplete:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
