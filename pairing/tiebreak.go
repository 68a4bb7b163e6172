/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"sort"
)

// Tiebreak names accepted in Config.TiebreakOrder and returned as keys in
// each player's Tiebreaks map.
const (
	TiebreakBuchholz          = "buchholz"
	TiebreakBuchholzCut1      = "buchholzCut1"
	TiebreakMedian            = "median"
	TiebreakSonnebornBerger   = "sonnebornBerger"
	TiebreakCumulative        = "cumulative"
	TiebreakDirectEncounter   = "directEncounter"
	TiebreakPerformanceRating = "performanceRating"
)

// Tiebreaks maps tiebreak name to value for one player.
type Tiebreaks map[string]float64

// ComputeTiebreaks evaluates the named tiebreaks for every player in
// standings. Values are recomputed in full from the results history on every
// call; nothing is cached, so a corrected historical result changes them
// retroactively. Rounding is left entirely to display code.
func ComputeTiebreaks(standings []Standing,
	order []string) (map[ID]Tiebreaks, error) {

	byID := standingsByID(standings)

	out := make(map[ID]Tiebreaks, len(standings))
	for _, st := range standings {
		out[st.Player.ID] = make(Tiebreaks, len(order))
	}

	for _, name := range order {
		switch name {
		case TiebreakBuchholz:
			for _, st := range standings {
				out[st.Player.ID][name] = buchholz(st, byID, 0, 0)
			}
		case TiebreakBuchholzCut1:
			for _, st := range standings {
				out[st.Player.ID][name] = buchholz(st, byID, 1, 0)
			}
		case TiebreakMedian:
			for _, st := range standings {
				out[st.Player.ID][name] = buchholz(st, byID, 1, 1)
			}
		case TiebreakSonnebornBerger:
			for _, st := range standings {
				out[st.Player.ID][name] = sonnebornBerger(st, byID)
			}
		case TiebreakCumulative:
			for _, st := range standings {
				out[st.Player.ID][name] = cumulative(st)
			}
		case TiebreakDirectEncounter:
			for id, val := range directEncounter(standings) {
				out[id][name] = val
			}
		case TiebreakPerformanceRating:
			for _, st := range standings {
				out[st.Player.ID][name] = performanceRating(st, byID)
			}
		default:
			return nil, &ConfigError{Field: "tiebreakOrder", Value: name,
				Err: ErrUnknownTiebreak}
		}
	}

	return out, nil
}

// opponentScores returns the final scores of every opponent the player
// actually faced over the board, in ascending order.
func opponentScores(s Standing, byID map[ID]*Standing) []float64 {
	var scores []float64
	for _, f := range s.Facts {
		if !f.Outcome.Played() || f.OpponentID == NoPlayer {
			continue
		}
		if opp, ok := byID[f.OpponentID]; ok {
			scores = append(scores, opp.Score)
		}
	}
	sort.Float64s(scores)
	return scores
}

// buchholz sums opponent final scores, optionally cutting the lowest and
// highest entries (cutLow=1 gives cut-1, cutLow=cutHigh=1 gives median).
func buchholz(s Standing, byID map[ID]*Standing, cutLow, cutHigh int) float64 {
	scores := opponentScores(s, byID)
	if len(scores) <= cutLow+cutHigh {
		return 0.0
	}
	sum := 0.0
	for _, sc := range scores[cutLow : len(scores)-cutHigh] {
		sum += sc
	}
	return sum
}

// resultWeight is the Sonneborn-Berger weight of one played game.
func resultWeight(o Outcome) float64 {
	switch o {
	case OutcomeWin:
		return 1.0
	case OutcomeDraw:
		return 0.5
	}
	return 0.0
}

func sonnebornBerger(s Standing, byID map[ID]*Standing) float64 {
	sum := 0.0
	for _, f := range s.Facts {
		if !f.Outcome.Played() || f.OpponentID == NoPlayer {
			continue
		}
		opp, ok := byID[f.OpponentID]
		if !ok {
			continue
		}
		sum += opp.Score * resultWeight(f.Outcome)
	}
	return sum
}

// cumulative sums the player's running score total after each round, which
// rewards early wins over late ones.
func cumulative(s Standing) float64 {
	running, sum := 0.0, 0.0
	for _, f := range s.Facts {
		running += f.Points
		sum += running
	}
	return sum
}

// directEncounter scores head-to-head results, counted only against players
// tied on overall score. Players without a tied head-to-head opponent get 0.
func directEncounter(standings []Standing) map[ID]float64 {
	tied := make(map[int]map[ID]bool)
	for _, st := range standings {
		k := scoreKey(st.Score)
		if tied[k] == nil {
			tied[k] = make(map[ID]bool)
		}
		tied[k][st.Player.ID] = true
	}

	out := make(map[ID]float64, len(standings))
	for _, st := range standings {
		group := tied[scoreKey(st.Score)]
		sum := 0.0
		for _, f := range st.Facts {
			if f.Outcome.Played() && group[f.OpponentID] {
				sum += f.Points
			}
		}
		out[st.Player.ID] = sum
	}
	return out
}

// performanceRating is the linear approximation: average rated-opponent
// rating plus 400 times the win/loss margin per game.
func performanceRating(s Standing, byID map[ID]*Standing) float64 {
	sum, games := 0, 0
	margin := 0.0
	for _, f := range s.Facts {
		if !f.Outcome.Played() || f.OpponentID == NoPlayer {
			continue
		}
		opp, ok := byID[f.OpponentID]
		if !ok || !opp.Player.Rated() {
			continue
		}
		sum += opp.Player.Rating
		games++
		switch f.Outcome {
		case OutcomeWin:
			margin++
		case OutcomeLoss:
			margin--
		}
	}
	if games == 0 {
		return 0.0
	}
	return float64(sum)/float64(games) + 400.0*margin/float64(games)
}

// SortStandings orders standings for display: score descending, then the
// configured tiebreaks in order, then rankLess for full determinism.
func SortStandings(standings []Standing, breaks map[ID]Tiebreaks,
	order []string) []Standing {

	ranked := make([]Standing, len(standings))
	copy(ranked, standings)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if scoreKey(a.Score) != scoreKey(b.Score) {
			return a.Score > b.Score
		}
		for _, name := range order {
			av, bv := breaks[a.Player.ID][name], breaks[b.Player.ID][name]
			if av != bv {
				return av > bv
			}
		}
		return rankLess(a, b)
	})
	return ranked
}
