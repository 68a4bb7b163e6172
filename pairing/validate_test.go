/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"testing"
)

func issueTypes(issues []Issue) map[IssueType]int {
	m := make(map[IssueType]int)
	for _, i := range issues {
		m[i.Type]++
	}
	return m
}

// TestValidateStructural exercises the hard integrity checks: duplicate
// boards, self-pairing, and double-booking.
func TestValidateStructural(t *testing.T) {
	standings := BuildStandings(testRoster(4, 1600), nil, DefaultConfig())

	cases := []struct {
		name     string
		pairings []Pairing
		want     IssueType
	}{
		{
			name: "duplicate board",
			pairings: []Pairing{
				{Round: 1, Board: 1, White: 1, Black: 2},
				{Round: 1, Board: 1, White: 3, Black: 4},
			},
			want: ErrorDuplicateBoard,
		},
		{
			name: "self pairing",
			pairings: []Pairing{
				{Round: 1, Board: 1, White: 1, Black: 1},
			},
			want: ErrorSelfPairing,
		},
		{
			name: "double booked",
			pairings: []Pairing{
				{Round: 1, Board: 1, White: 1, Black: 2},
				{Round: 1, Board: 2, White: 1, Black: 3},
			},
			want: ErrorDoubleBooked,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := Validate(c.pairings, standings, 1)
			if v.OK() {
				t.Fatalf("%s: validation passed; want %v error", c.name, c.want)
			}
			if issueTypes(v.Errors)[c.want] == 0 {
				t.Errorf("%s: missing %v in errors: %+v", c.name, c.want,
					v.Errors)
			}
		})
	}
}

// TestValidateRematch verifies a repeat pairing is an error through the
// public entry point, with no forced-repeat downgrade.
func TestValidateRematch(t *testing.T) {
	roster := testRoster(4, 1600)
	history := []GameRecord{
		{PlayerID: 1, Round: 1, OpponentID: 2, Color: White, Outcome: OutcomeWin},
		{PlayerID: 2, Round: 1, OpponentID: 1, Color: Black, Outcome: OutcomeLoss},
	}
	standings := BuildStandings(roster, history, DefaultConfig())

	pairings := []Pairing{
		{Round: 2, Board: 1, White: 2, Black: 1},
		{Round: 2, Board: 2, White: 3, Black: 4},
	}

	v := Validate(pairings, standings, 2)
	if issueTypes(v.Errors)[ErrorRematch] == 0 {
		t.Errorf("rematch not reported as error: %+v", v.Errors)
	}

	// the internal path downgrades pairs the engine was forced into
	forced := map[pairKey]bool{makePairKey(1, 2): true}
	v = validatePairings(pairings, standings, 2, forced)
	if !v.OK() {
		t.Errorf("forced repeat reported as error: %+v", v.Errors)
	}
	if issueTypes(v.Warnings)[WarningForcedRepeat] == 0 {
		t.Errorf("forced repeat missing from warnings: %+v", v.Warnings)
	}
}

// TestValidateRatingGap verifies the advisory warning for lopsided boards.
func TestValidateRatingGap(t *testing.T) {
	roster := []Player{
		{ID: 1, DisplayName: "Master", Rating: 2200},
		{ID: 2, DisplayName: "Novice", Rating: 900},
	}
	standings := BuildStandings(roster, nil, DefaultConfig())

	v := Validate([]Pairing{{Round: 1, Board: 1, White: 1, Black: 2}},
		standings, 1)
	if !v.OK() {
		t.Errorf("rating gap must not be an error: %+v", v.Errors)
	}
	if issueTypes(v.Warnings)[WarningRatingGap] == 0 {
		t.Errorf("missing rating gap warning: %+v", v.Warnings)
	}
}

// TestValidateCleanRound verifies a well-formed round passes with no
// findings, byes included.
func TestValidateCleanRound(t *testing.T) {
	standings := BuildStandings(testRoster(5, 1600), nil, DefaultConfig())
	pairings := []Pairing{
		{Round: 1, Board: 1, White: 1, Black: 3},
		{Round: 1, Board: 2, White: 4, Black: 2},
		{Round: 1, Board: 3, White: 5, Black: NoPlayer},
	}

	v := Validate(pairings, standings, 1)
	if !v.OK() || len(v.Warnings) != 0 {
		t.Errorf("clean round flagged: errors=%+v warnings=%+v",
			v.Errors, v.Warnings)
	}
}
