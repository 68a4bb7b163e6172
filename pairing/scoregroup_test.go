/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"testing"
)

// TestPartitionScoreGroups verifies group ordering and intra-group ranking.
func TestPartitionScoreGroups(t *testing.T) {
	standings := []Standing{
		{Player: Player{ID: 1, DisplayName: "Low", Rating: 1200}, Score: 1.0},
		{Player: Player{ID: 2, DisplayName: "Champ", Rating: 2100}, Score: 2.5},
		{Player: Player{ID: 3, DisplayName: "Unrated", Rating: 0}, Score: 2.5},
		{Player: Player{ID: 4, DisplayName: "Strong", Rating: 1900}, Score: 2.5},
	}

	groups := partitionScoreGroups(standings)
	if len(groups) != 2 {
		t.Fatalf("got %d groups; want 2", len(groups))
	}
	if groups[0].Score != 2.5 || groups[1].Score != 1.0 {
		t.Errorf("group scores = %v, %v; want 2.5, 1.0",
			groups[0].Score, groups[1].Score)
	}

	// rated players by rating descending, unrated last
	top := groups[0].Players
	wantOrder := []ID{2, 4, 3}
	for i, want := range wantOrder {
		if top[i].Player.ID != want {
			t.Errorf("top group position %d = player %v; want %v",
				i, top[i].Player.ID, want)
		}
	}
}

// TestScoreKey verifies half-point bucketing survives float accumulation.
func TestScoreKey(t *testing.T) {
	accumulated := 0.0
	for i := 0; i < 5; i++ {
		accumulated += 0.5
	}
	if scoreKey(accumulated) != scoreKey(2.5) {
		t.Errorf("accumulated 2.5 bucketed differently from literal 2.5")
	}
	if scoreKey(2.5) == scoreKey(2.0) {
		t.Error("distinct half-point scores share a bucket")
	}
}

// TestRankLessSeedOrderTie verifies the stable seed tiebreak for identical
// ratings.
func TestRankLessSeedOrderTie(t *testing.T) {
	a := Standing{Player: Player{ID: 1, DisplayName: "A", Rating: 1500, SeedOrder: 2}}
	b := Standing{Player: Player{ID: 2, DisplayName: "B", Rating: 1500, SeedOrder: 1}}
	if rankLess(a, b) {
		t.Error("higher seed order ranked above lower")
	}
	if !rankLess(b, a) {
		t.Error("lower seed order not ranked above higher")
	}
}
