package docker

import "errors"

var (
	// ErrNotInstalled is returned when the runtime binary is not on PATH.
	ErrNotInstalled = errors.New("not installed")
	// ErrTimeout is returned when the process listing exceeds its deadline.
	ErrTimeout = errors.New("timeout")
	// ErrUnavailable is returned when the runtime ran but could not list containers.
	ErrUnavailable = errors.New("unavailable")
)
