/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import "sort"

// teamSection is the synthetic section name team matches pair under.
const teamSection = "Teams"

// syntheticPlayers maps each team onto a synthetic entrant whose rating is
// the team's average board rating. Team match points flow in through the
// team-level results history, so the regular standings projector and pairing
// strategies apply unchanged.
func syntheticPlayers(teams []Team) []Player {
	players := make([]Player, 0, len(teams))
	for _, t := range teams {
		players = append(players, Player{
			ID:          t.ID,
			DisplayName: t.Name,
			Rating:      t.AverageRating(),
			Section:     teamSection,
			SeedOrder:   t.SeedOrder,
		})
	}
	return players
}

// toTeamPairings converts engine pairings over synthetic players back into
// team-level matchups. The synthetic white side becomes the white team.
func toTeamPairings(pairings []Pairing) []TeamPairing {
	out := make([]TeamPairing, 0, len(pairings))
	for _, p := range pairings {
		tp := TeamPairing{
			Round:      p.Round,
			Board:      p.Board,
			TeamID:     p.White,
			OpponentID: p.Black,
			TeamColor:  White,
			Section:    teamSection,
		}
		out = append(out, tp)
	}
	return out
}

// boardOrder returns the roster sorted by board number. Entries without a
// board number keep their given order.
func boardOrder(roster []Player) []Player {
	ordered := make([]Player, len(roster))
	copy(ordered, roster)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Board < ordered[j].Board
	})
	return ordered
}

// ExpandTeamPairings expands team matchups into per-board individual
// pairings: board 1 plays board 1 and so on down the rosters in
// Player.Board order. Color is carried at the team level, so the white team
// takes white on every board. Boards are numbered contiguously across the
// section's matches. A team bye expands into one bye pairing per rostered
// board.
func ExpandTeamPairings(teamPairings []TeamPairing, teams []Team,
	round int) []Pairing {

	rosters := make(map[ID]Team, len(teams))
	for _, t := range teams {
		t.Roster = boardOrder(t.Roster)
		rosters[t.ID] = t
	}

	var pairings []Pairing
	board := 1
	for _, tp := range teamPairings {
		home := rosters[tp.TeamID]

		if tp.OpponentID == NoPlayer {
			for _, p := range home.Roster {
				pairings = append(pairings, Pairing{
					Round:   round,
					Board:   board,
					Section: teamSection,
					White:   p.ID,
					Black:   NoPlayer,
				})
				board++
			}
			continue
		}

		away := rosters[tp.OpponentID]
		n := len(home.Roster)
		if len(away.Roster) < n {
			n = len(away.Roster)
		}
		for i := 0; i < n; i++ {
			white, black := home.Roster[i].ID, away.Roster[i].ID
			if tp.TeamColor == Black {
				white, black = black, white
			}
			pairings = append(pairings, Pairing{
				Round:   round,
				Board:   board,
				Section: teamSection,
				White:   white,
				Black:   black,
			})
			board++
		}
	}

	return pairings
}

// GenerateTeams pairs a team event for the given round. Teams run through
// the same strategies as individuals via synthetic players whose scores are
// team match points; the resulting team matchups are then expanded into
// per-board pairings. history must hold team-level records (team IDs, one
// row per team per round).
func GenerateTeams(teams []Team, history []GameRecord, round int,
	cfg Config) (*Result, error) {

	var system System
	switch cfg.System {
	case SystemTeamSwiss:
		system = SystemSwiss
	case SystemTeamRoundRobin:
		system = SystemRoundRobin
	default:
		return nil, &ConfigError{Field: "system", Value: cfg.System.String(),
			Err: ErrUnknownSystem}
	}

	teamCfg := cfg
	teamCfg.System = system

	res, err := Generate(syntheticPlayers(teams), history, round, teamCfg)
	if err != nil {
		return nil, err
	}

	res.TeamPairings = toTeamPairings(res.Pairings)
	res.Pairings = ExpandTeamPairings(res.TeamPairings, teams, round)

	// Rematch checks already ran at the team level; the expanded boards
	// still need structural checks of their own, which catch a player
	// rostered on more than one team.
	boards := validatePairings(res.Pairings, nil, round, nil)
	res.Validation.Errors = append(res.Validation.Errors, boards.Errors...)
	res.Validation.Warnings = append(res.Validation.Warnings, boards.Warnings...)

	return res, nil
}
