package results

import "errors"

var (
	ErrHouseNotFound  = errors.New("house not found")
	ErrNotDrawable    = errors.New("house lottery cannot be drawn")
	ErrAlreadyDrawn   = errors.New("house lottery already drawn")
	ErrResultNotFound = errors.New("lottery result not found")
	ErrAlreadyClaimed = errors.New("prize already claimed")
)
