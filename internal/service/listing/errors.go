package listing

import "errors"

var (
	ErrHouseNotFound = errors.New("house not found")
	ErrInvalidStatus = errors.New("invalid house status")
)
