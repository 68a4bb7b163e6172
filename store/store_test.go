/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aarushchugh/chesspair/pairing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestTournamentRoundTrip covers tournament creation, roster management,
// and the conversion into the engine's roster type.
func TestTournamentRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.CreateTournament(ctx, "Spring Open", "swiss", 5)
	if err != nil {
		t.Fatalf("CreateTournament failed: %v", err)
	}

	tourney, err := s.Tournament(ctx, id)
	if err != nil {
		t.Fatalf("Tournament failed: %v", err)
	}
	if tourney.Name != "Spring Open" || tourney.System != "swiss" ||
		tourney.TotalRounds != 5 {
		t.Errorf("tournament row = %+v", tourney)
	}
	if tourney.Status != "active" {
		t.Errorf("status = %q; want active default", tourney.Status)
	}

	players := []PlayerRow{
		{TournamentID: id, Name: "Alice", UscfID: "12345678", Rating: 1800,
			Section: "Open", SeedOrder: 1},
		{TournamentID: id, Name: "Bob", Rating: 1600, Section: "Open",
			SeedOrder: 2},
		{TournamentID: id, Name: "Carol", UscfID: "87654321",
			Section: "Open", SeedOrder: 3, Status: "withdrawn"},
	}
	for _, p := range players {
		if _, err := s.AddPlayer(ctx, p); err != nil {
			t.Fatalf("AddPlayer(%v) failed: %v", p.Name, err)
		}
	}

	roster, err := s.Roster(ctx, id)
	if err != nil {
		t.Fatalf("Roster failed: %v", err)
	}
	// withdrawn players never reach the engine
	if len(roster) != 2 {
		t.Fatalf("roster size = %d; want 2", len(roster))
	}
	if roster[0].DisplayName != "Alice" || roster[0].Rating != 1800 {
		t.Errorf("roster[0] = %+v", roster[0])
	}

	withIDs, err := s.PlayersWithUscfID(ctx, id)
	if err != nil {
		t.Fatalf("PlayersWithUscfID failed: %v", err)
	}
	if len(withIDs) != 2 {
		t.Errorf("%d players with USCF IDs; want 2", len(withIDs))
	}
}

// TestUpdatePlayerRating verifies the rating sync write path.
func TestUpdatePlayerRating(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.CreateTournament(ctx, "Club Night", "swiss", 4)
	if err != nil {
		t.Fatalf("CreateTournament failed: %v", err)
	}
	pid, err := s.AddPlayer(ctx, PlayerRow{TournamentID: id, Name: "Alice",
		UscfID: "12345678", Rating: 1700})
	if err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}

	if err := s.UpdatePlayerRating(ctx, pid, 1850, "2027-12-31"); err != nil {
		t.Fatalf("UpdatePlayerRating failed: %v", err)
	}

	rows, err := s.PlayersWithUscfID(ctx, id)
	if err != nil {
		t.Fatalf("PlayersWithUscfID failed: %v", err)
	}
	if rows[0].Rating != 1850 || rows[0].ExpirationDate != "2027-12-31" {
		t.Errorf("player row after update = %+v", rows[0])
	}
}

// TestResultsHistory verifies results round-trip into engine game records.
func TestResultsHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.CreateTournament(ctx, "Club Night", "swiss", 4)
	if err != nil {
		t.Fatalf("CreateTournament failed: %v", err)
	}

	results := []ResultRow{
		{TournamentID: id, PlayerID: 1, Round: 1, OpponentID: 2,
			Color: "w", Outcome: "W"},
		{TournamentID: id, PlayerID: 2, Round: 1, OpponentID: 1,
			Color: "b", Outcome: "L"},
		{TournamentID: id, PlayerID: 3, Round: 1, Outcome: "B"},
	}
	for _, r := range results {
		if err := s.RecordResult(ctx, r); err != nil {
			t.Fatalf("RecordResult failed: %v", err)
		}
	}

	history, err := s.History(ctx, id)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history length = %d; want 3", len(history))
	}
	if history[0].Outcome != pairing.OutcomeWin ||
		history[0].Color != pairing.White ||
		history[0].OpponentID != 2 {
		t.Errorf("history[0] = %+v", history[0])
	}
	if history[2].Outcome != pairing.OutcomeFullBye ||
		history[2].OpponentID != pairing.NoPlayer {
		t.Errorf("bye record = %+v", history[2])
	}
}

// TestSavePairings verifies a round's pairings replace any prior set for
// the same round.
func TestSavePairings(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.CreateTournament(ctx, "Club Night", "swiss", 4)
	if err != nil {
		t.Fatalf("CreateTournament failed: %v", err)
	}

	first := []pairing.Pairing{
		{Round: 1, Board: 1, Section: "Open", White: 1, Black: 2},
		{Round: 1, Board: 2, Section: "Open", White: 3, Black: 4},
	}
	if err := s.SavePairings(ctx, id, 1, first); err != nil {
		t.Fatalf("SavePairings failed: %v", err)
	}

	// regenerated round replaces the stored one
	second := []pairing.Pairing{
		{Round: 1, Board: 1, Section: "Open", White: 1, Black: 4},
		{Round: 1, Board: 2, Section: "Open", White: 3, Black: 2},
	}
	if err := s.SavePairings(ctx, id, 1, second); err != nil {
		t.Fatalf("SavePairings failed: %v", err)
	}

	stored, err := s.Pairings(ctx, id, 1)
	if err != nil {
		t.Fatalf("Pairings failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("%d stored pairings; want 2", len(stored))
	}
	if stored[0].Black != 4 {
		t.Errorf("board 1 = %+v; want the regenerated pairing", stored[0])
	}
}

// TestOutcomeCodes verifies the outcome code round trip and rejection of
// junk codes.
func TestOutcomeCodes(t *testing.T) {
	for outcome := range outcomeCodes {
		code, err := OutcomeCode(outcome)
		if err != nil {
			t.Fatalf("OutcomeCode(%v) failed: %v", outcome, err)
		}
		back, err := parseOutcome(code)
		if err != nil {
			t.Fatalf("parseOutcome(%q) failed: %v", code, err)
		}
		if back != outcome {
			t.Errorf("round trip %v -> %q -> %v", outcome, code, back)
		}
	}

	if _, err := parseOutcome("Z"); err == nil {
		t.Error("expected error for unknown outcome code")
	}
	if _, err := OutcomeCode(pairing.OutcomeUnknown); err == nil {
		t.Error("expected error for OutcomeUnknown")
	}
}
