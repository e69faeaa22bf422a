package repository

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrLotteryInactive = errors.New("lottery is not active")
	ErrSoldOut         = errors.New("no tickets remaining")
	ErrAlreadyDrawn    = errors.New("already drawn")
	ErrAlreadyClaimed  = errors.New("already claimed")
	ErrMissingParent   = errors.New("referenced row does not exist")
)
