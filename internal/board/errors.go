package board

import "errors"

var (
	ErrNameAlreadyExists      = errors.New("name already taken")
	ErrNotFound               = errors.New("not found")
	ErrNotOrganizer           = errors.New("not organizer")
	ErrNotAuthor              = errors.New("not author")
	ErrInvalidPhaseTransition = errors.New("invalid phase transition")
	ErrForbiddenInPhase       = errors.New("forbidden in current phase")
	ErrVoteLimitExceeded      = errors.New("vote limit exceeded")
	ErrNoteTextTooLong        = errors.New("note text too long")
	ErrStickyLimitExceeded    = errors.New("sticky limit exceeded")
)
