package domain

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownField    = errors.New("unknown project field")
)
