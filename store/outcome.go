/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"fmt"

	"github.com/aarushchugh/chesspair/pairing"
)

// Outcomes are stored as the single-letter codes USCF crosstables use:
// W/L/D for played games, B full bye, H half bye, X forfeit win, F forfeit
// loss, U unplayed.
var outcomeCodes = map[pairing.Outcome]string{
	pairing.OutcomeWin:         "W",
	pairing.OutcomeLoss:        "L",
	pairing.OutcomeDraw:        "D",
	pairing.OutcomeFullBye:     "B",
	pairing.OutcomeHalfBye:     "H",
	pairing.OutcomeForfeitWin:  "X",
	pairing.OutcomeForfeitLoss: "F",
	pairing.OutcomeUnplayed:    "U",
}

// OutcomeCode returns the stored code for an engine outcome.
func OutcomeCode(o pairing.Outcome) (string, error) {
	code, ok := outcomeCodes[o]
	if !ok {
		return "", fmt.Errorf("unknown outcome %v", int(o))
	}
	return code, nil
}

func parseOutcome(code string) (pairing.Outcome, error) {
	for outcome, c := range outcomeCodes {
		if c == code {
			return outcome, nil
		}
	}
	return pairing.OutcomeUnknown, fmt.Errorf("unknown outcome code %q", code)
}
