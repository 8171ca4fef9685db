package errors

import "errors"

// Доменные ошибки. CLI-слой (cmd) маппит их в exit code.
var (
	ErrIncompleteSeed = errors.New("seed incomplete")
)
