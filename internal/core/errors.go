package core

import "errors"

var (
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrInvalidProcess      = errors.New("invalid process")
	ErrInvalidProcessState = errors.New("invalid process state")
	ErrIncompleteProcess   = errors.New("incomplete process")
	ErrSimulationTimeout   = errors.New("simulation timeout")
)
