/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"sort"
)

// RoundFact is one projected fact from the results history: what a player
// scored in one round and against whom. Byes and forfeits carry
// OpponentID==NoPlayer or a non-played outcome and contribute no color.
type RoundFact struct {
	Round      int
	OpponentID ID
	Outcome    Outcome
	Points     float64
}

// Standing is the per-player aggregate the engine pairs from. Standings are
// value objects rebuilt from scratch on every invocation; they are never
// persisted or updated incrementally.
type Standing struct {
	Player      Player
	Score       float64
	GamesPlayed int
	// ColorHistory holds one entry per played game, in round order. Byes
	// and forfeits add no entry, so len(ColorHistory)==GamesPlayed.
	ColorHistory []Color
	// Facts holds every scored round in round order, byes included.
	Facts []RoundFact
	// Opponents is the set of opponent IDs already faced.
	Opponents map[ID]bool
	// HadBye reports whether the player has already received a bye.
	HadBye bool
}

// colorImbalance returns whiteCount - blackCount.
func (s Standing) colorImbalance() int {
	imbalance := 0
	for _, c := range s.ColorHistory {
		if c == White {
			imbalance++
		} else {
			imbalance--
		}
	}
	return imbalance
}

// lastColors returns the player's most recent n colors, most recent last.
func (s Standing) lastColors(n int) []Color {
	if len(s.ColorHistory) < n {
		n = len(s.ColorHistory)
	}
	return s.ColorHistory[len(s.ColorHistory)-n:]
}

// hasPlayed reports whether the player already faced the given opponent.
func (s Standing) hasPlayed(opp ID) bool {
	return s.Opponents[opp]
}

// outcomePoints maps an outcome to the score it awards. Assigned byes score
// per the bye rule; a half bye always scores 0.5 regardless of policy.
func outcomePoints(o Outcome, cfg Config) float64 {
	switch o {
	case OutcomeWin, OutcomeForfeitWin:
		return 1.0
	case OutcomeDraw:
		return 0.5
	case OutcomeFullBye:
		return cfg.byePoints()
	case OutcomeHalfBye:
		return 0.5
	}
	return 0.0
}

// BuildStandings projects the results history into per-player standings.
// Duplicate rows for the same (player, round) are deduplicated keeping the
// latest, which recovers from upstream write races in the collaborator
// store. Rounds a player sat out contribute no color and no opponent fact.
func BuildStandings(roster []Player, history []GameRecord, cfg Config) []Standing {
	// latest row wins per (player, round)
	type key struct {
		player ID
		round  int
	}
	latest := make(map[key]GameRecord)
	for _, rec := range history {
		latest[key{rec.PlayerID, rec.Round}] = rec
	}

	byPlayer := make(map[ID][]GameRecord)
	for _, rec := range latest {
		byPlayer[rec.PlayerID] = append(byPlayer[rec.PlayerID], rec)
	}
	for id := range byPlayer {
		recs := byPlayer[id]
		sort.Slice(recs, func(i, j int) bool {
			return recs[i].Round < recs[j].Round
		})
		byPlayer[id] = recs
	}

	standings := make([]Standing, 0, len(roster))
	for _, p := range roster {
		st := Standing{
			Player:    p,
			Opponents: make(map[ID]bool),
		}
		for _, rec := range byPlayer[p.ID] {
			pts := outcomePoints(rec.Outcome, cfg)
			st.Score += pts
			st.Facts = append(st.Facts, RoundFact{
				Round:      rec.Round,
				OpponentID: rec.OpponentID,
				Outcome:    rec.Outcome,
				Points:     pts,
			})
			if rec.Outcome.Played() && rec.OpponentID != NoPlayer {
				st.GamesPlayed++
				st.ColorHistory = append(st.ColorHistory, rec.Color)
				st.Opponents[rec.OpponentID] = true
			} else if rec.OpponentID != NoPlayer {
				// forfeit results still forbid a rematch
				st.Opponents[rec.OpponentID] = true
			}
			if rec.Outcome == OutcomeFullBye || rec.Outcome == OutcomeHalfBye {
				st.HadBye = true
			}
		}
		standings = append(standings, st)
	}

	return standings
}

// standingsByID indexes standings for opponent lookups.
func standingsByID(standings []Standing) map[ID]*Standing {
	m := make(map[ID]*Standing, len(standings))
	for i := range standings {
		m[standings[i].Player.ID] = &standings[i]
	}
	return m
}
