/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"fmt"
	"testing"
)

// testTeams builds n teams of boardCount players each. Team IDs run 1..n;
// player IDs are teamID*100+board.
func testTeams(n, boardCount int) []Team {
	teams := make([]Team, 0, n)
	for i := 1; i <= n; i++ {
		team := Team{
			ID:        ID(i),
			Name:      fmt.Sprintf("Team %d", i),
			SeedOrder: i,
		}
		for b := 1; b <= boardCount; b++ {
			team.Roster = append(team.Roster, Player{
				ID:          ID(i*100 + b),
				DisplayName: fmt.Sprintf("Team %d Board %d", i, b),
				Rating:      2000 - i*100 - b*50,
				Board:       b,
			})
		}
		teams = append(teams, team)
	}
	return teams
}

// TestAverageRating verifies unrated boards are excluded from the synthetic
// team rating.
func TestAverageRating(t *testing.T) {
	team := Team{Roster: []Player{
		{ID: 1, Rating: 1800},
		{ID: 2, Rating: 1600},
		{ID: 3, Rating: 0},
	}}
	if got := team.AverageRating(); got != 1700 {
		t.Errorf("average rating = %d; want 1700", got)
	}

	empty := Team{Roster: []Player{{ID: 1}, {ID: 2}}}
	if got := empty.AverageRating(); got != 0 {
		t.Errorf("all-unrated team rating = %d; want 0", got)
	}
}

// TestTeamRoundRobin runs a 4-team round robin: exactly 3 rounds, every team
// plays every other exactly once, and no byes occur.
func TestTeamRoundRobin(t *testing.T) {
	teams := testTeams(4, 2)
	cfg := DefaultConfig()
	cfg.System = SystemTeamRoundRobin

	if got := roundRobinRounds(len(teams)); got != 3 {
		t.Fatalf("cycle length = %d; want 3", got)
	}

	met := make(map[pairKey]int)
	for round := 1; round <= 3; round++ {
		res, err := GenerateTeams(teams, nil, round, cfg)
		if err != nil {
			t.Fatalf("round %d: GenerateTeams failed: %v", round, err)
		}
		if len(res.TeamPairings) != 2 {
			t.Fatalf("round %d: %d team pairings; want 2",
				round, len(res.TeamPairings))
		}
		for _, tp := range res.TeamPairings {
			if tp.OpponentID == NoPlayer {
				t.Errorf("round %d: unexpected team bye for %v",
					round, tp.TeamID)
				continue
			}
			met[makePairKey(tp.TeamID, tp.OpponentID)]++
		}
	}

	for a := 1; a <= 4; a++ {
		for b := a + 1; b <= 4; b++ {
			if n := met[makePairKey(ID(a), ID(b))]; n != 1 {
				t.Errorf("teams %d and %d met %d times; want 1", a, b, n)
			}
		}
	}
}

// TestTeamSwissExpansion verifies board-by-board expansion: board 1 plays
// board 1, the team color holds across all boards, and board numbers are
// contiguous across the section.
func TestTeamSwissExpansion(t *testing.T) {
	teams := testTeams(4, 3)
	cfg := DefaultConfig()
	cfg.System = SystemTeamSwiss

	res, err := GenerateTeams(teams, nil, 1, cfg)
	if err != nil {
		t.Fatalf("GenerateTeams failed: %v", err)
	}
	if len(res.TeamPairings) != 2 {
		t.Fatalf("%d team pairings; want 2", len(res.TeamPairings))
	}
	if want := 2 * 3; len(res.Pairings) != want {
		t.Fatalf("%d expanded pairings; want %d", len(res.Pairings), want)
	}

	rosters := make(map[ID]Team)
	for _, tm := range teams {
		rosters[tm.ID] = tm
	}

	for i, p := range res.Pairings {
		if p.Board != i+1 {
			t.Errorf("board %d at position %d; want contiguous numbering",
				p.Board, i)
		}
	}

	for _, tp := range res.TeamPairings {
		home, away := rosters[tp.TeamID], rosters[tp.OpponentID]
		for b := 0; b < 3; b++ {
			wantWhite, wantBlack := home.Roster[b].ID, away.Roster[b].ID
			if tp.TeamColor == Black {
				wantWhite, wantBlack = wantBlack, wantWhite
			}
			found := false
			for _, p := range res.Pairings {
				if p.White == wantWhite && p.Black == wantBlack {
					found = true
				}
			}
			if !found {
				t.Errorf("missing expanded pairing %v vs %v (board %d of %v)",
					wantWhite, wantBlack, b+1, tp.TeamID)
			}
		}
	}
}

// TestExpandTeamPairingsBoardOrder verifies rosters listed out of board
// order still pair board 1 against board 1.
func TestExpandTeamPairingsBoardOrder(t *testing.T) {
	teams := []Team{
		{ID: 1, Roster: []Player{
			{ID: 103, Board: 3}, {ID: 101, Board: 1}, {ID: 102, Board: 2},
		}},
		{ID: 2, Roster: []Player{
			{ID: 202, Board: 2}, {ID: 203, Board: 3}, {ID: 201, Board: 1},
		}},
	}
	tps := []TeamPairing{{
		Round:      1,
		Board:      1,
		TeamID:     1,
		OpponentID: 2,
		TeamColor:  White,
	}}

	pairings := ExpandTeamPairings(tps, teams, 1)
	if len(pairings) != 3 {
		t.Fatalf("%d pairings; want 3", len(pairings))
	}
	want := []struct{ white, black ID }{
		{101, 201}, {102, 202}, {103, 203},
	}
	for i, w := range want {
		if pairings[i].White != w.white || pairings[i].Black != w.black {
			t.Errorf("board %d: %v vs %v; want %v vs %v", i+1,
				pairings[i].White, pairings[i].Black, w.white, w.black)
		}
	}
}

// TestGenerateTeamsSharedRosterPlayer verifies a player rostered on two
// teams fails validation on the expanded boards.
func TestGenerateTeamsSharedRosterPlayer(t *testing.T) {
	teams := testTeams(4, 2)
	teams[0].Roster[1].ID = 999
	teams[1].Roster[1].ID = 999
	cfg := DefaultConfig()
	cfg.System = SystemTeamSwiss

	res, err := GenerateTeams(teams, nil, 1, cfg)
	if err != nil {
		t.Fatalf("GenerateTeams failed: %v", err)
	}
	if res.Validation.OK() {
		t.Fatal("player rostered on two teams passed validation")
	}
	found := false
	for _, issue := range res.Validation.Errors {
		if issue.Type == ErrorDoubleBooked {
			found = true
		}
	}
	if !found {
		t.Errorf("no double-booked error reported: %+v", res.Validation.Errors)
	}
}

// TestExpandTeamBye verifies a team bye expands into one bye pairing per
// rostered board.
func TestExpandTeamBye(t *testing.T) {
	teams := testTeams(1, 4)
	tps := []TeamPairing{{
		Round:  2,
		Board:  1,
		TeamID: 1,
	}}

	pairings := ExpandTeamPairings(tps, teams, 2)
	if len(pairings) != 4 {
		t.Fatalf("%d pairings; want 4", len(pairings))
	}
	for i, p := range pairings {
		if !p.IsBye() {
			t.Errorf("pairing %d not a bye", i)
		}
		if p.White != teams[0].Roster[i].ID {
			t.Errorf("bye %d for player %v; want %v",
				i, p.White, teams[0].Roster[i].ID)
		}
	}
}

// TestGenerateTeamsRejectsIndividualSystem verifies the team entry point
// only accepts team systems.
func TestGenerateTeamsRejectsIndividualSystem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.System = SystemSwiss
	if _, err := GenerateTeams(testTeams(4, 2), nil, 1, cfg); err == nil {
		t.Error("expected error for individual system in GenerateTeams")
	}
}
