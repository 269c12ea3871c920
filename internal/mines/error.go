package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrOutOfBounds          = errors.New("out of bounds")
	ErrGameAlreadyOver      = errors.New("game already over")
)

type ConfigError struct {
	Params GameParams
	Reason string
}

// [ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrInvalidConfiguration, e.Params, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

type PositionError struct {
	Row, Col int
	Err      error
}

// [PositionError] implements [error]
func (e *PositionError) Error() string {
	return fmt.Sprintf("cell %d:%d: %s", e.Row, e.Col, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}
