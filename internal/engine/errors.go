package engine

import "errors"

// Rejections. A command that returns one of these left the session untouched.
var (
	ErrInvalidPhase            = errors.New("command not allowed in current phase")
	ErrInvalidTokenOwner       = errors.New("token belongs to another player")
	ErrTokenNotFound           = errors.New("token not found")
	ErrDegenerateConfiguration = errors.New("degenerate configuration")
)
