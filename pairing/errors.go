/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPlayers is returned when fewer than 2 pairable
	// entities exist; no pairings are produced.
	ErrInsufficientPlayers = errors.New("fewer than 2 pairable players")

	// ErrInvalidRound is returned when the requested round lies outside
	// [1, TotalRounds].
	ErrInvalidRound = errors.New("round number out of range")

	// ErrUnknownSystem indicates an unrecognized pairing system name.
	ErrUnknownSystem = errors.New("unknown pairing system")

	// ErrUnknownTiebreak indicates an unrecognized tiebreaker name.
	ErrUnknownTiebreak = errors.New("unknown tiebreak")
)

// ConfigError wraps a configuration sentinel with the offending field and
// value.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %v=%q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
