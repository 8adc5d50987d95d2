package services

import "errors"

// Errors shared by the competition service and the HTTP error mapping.
var (
	// Not found
	ErrTeamNotFound    = errors.New("team not found")
	ErrGameNotFound    = errors.New("game not found")
	ErrBracketNotFound = errors.New("no bracket has been generated for this game")

	// Validation
	ErrTeamNameRequired   = errors.New("team name is required")
	ErrGameNameRequired   = errors.New("game name is required")
	ErrInvalidGameType    = errors.New("game type must be 'tournament' or 'overall_score'")
	ErrInvalidPointValue  = errors.New("point values must not be negative")
	ErrWrongGameType      = errors.New("operation is not available for this game type")
	ErrUnknownSeedTeam    = errors.New("seeding references an unknown team")
	ErrDuplicateSeedTeam  = errors.New("seeding lists the same team more than once")
	ErrInvalidRoundNumber = errors.New("round number must be positive")
)
