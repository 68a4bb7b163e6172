/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"strings"
	"testing"
)

// TestBuildPairingsOutput checks the table layout essentials: round header,
// section headers when multiple sections exist, and bye rendering per the
// bye policy.
func TestBuildPairingsOutput(t *testing.T) {
	var roster []Player
	for i, p := range testRoster(5, 1700) {
		if i < 3 {
			p.Section = "Open"
		} else {
			p.Section = "U1600"
		}
		roster = append(roster, p)
	}
	cfg := DefaultConfig()
	standings := BuildStandings(roster, nil, cfg)
	res, err := Generate(roster, nil, 1, cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	out := BuildPairingsOutput(res.Pairings, standings, cfg)

	for _, want := range []string{"Round 1 Pairings:", "Open Section",
		"U1600 Section", "Board", "White", "Black", "BYE(1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	cfg.Bye.FullPoint = false
	out = BuildPairingsOutput(res.Pairings, standings, cfg)
	if !strings.Contains(out, "BYE(½)") {
		t.Errorf("half-point bye not rendered:\n%s", out)
	}
}

// TestBuildStandingsOutput checks ranked ordering, blank ranks on tied
// scores, and tiebreak columns.
func TestBuildStandingsOutput(t *testing.T) {
	standings := threePlayerStandings()
	order := []string{TiebreakBuchholz, TiebreakSonnebornBerger}
	breaks, err := ComputeTiebreaks(standings, order)
	if err != nil {
		t.Fatalf("ComputeTiebreaks failed: %v", err)
	}

	out := BuildStandingsOutput(standings, breaks, order)

	for _, want := range []string{"Place", "Name", "Score", "Buch", "S-B",
		"Alice", "1.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// leader listed before the rest
	if strings.Index(out, "Alice") > strings.Index(out, "Carol") {
		t.Errorf("standings out of order:\n%s", out)
	}
}
