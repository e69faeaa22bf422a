package admin

import (
	"errors"
)

var (
	ErrHouseConflict = errors.New("house already exists")
	ErrHouseNotFound = errors.New("house not found")
	ErrInvalidHouse  = errors.New("invalid house")
	ErrInvalidStatus = errors.New("invalid house status")
)
