/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"math"
	"sort"
)

// ScoreGroup is an ordered set of players sharing the same score. Groups are
// produced fresh for every round and never persisted.
type ScoreGroup struct {
	Score   float64
	Players []Standing
}

// scoreKey buckets a score into half-point units so float accumulation never
// splits a group.
func scoreKey(score float64) int {
	return int(math.Round(score * 2))
}

// rankLess orders players within a score group: rating descending, unrated
// players after all rated players ordered by name, remaining ties broken by
// the caller-supplied seed order so reruns are reproducible.
func rankLess(a, b Standing) bool {
	ar, br := a.Player.Rated(), b.Player.Rated()
	if ar != br {
		return ar
	}
	if !ar {
		if a.Player.DisplayName != b.Player.DisplayName {
			return a.Player.DisplayName < b.Player.DisplayName
		}
		return a.Player.SeedOrder < b.Player.SeedOrder
	}
	if a.Player.Rating != b.Player.Rating {
		return a.Player.Rating > b.Player.Rating
	}
	return a.Player.SeedOrder < b.Player.SeedOrder
}

// partitionScoreGroups splits standings into score groups ordered by score
// descending, each internally ordered by rankLess.
func partitionScoreGroups(standings []Standing) []ScoreGroup {
	byScore := make(map[int][]Standing)
	for _, st := range standings {
		k := scoreKey(st.Score)
		byScore[k] = append(byScore[k], st)
	}

	keys := make([]int, 0, len(byScore))
	for k := range byScore {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	groups := make([]ScoreGroup, 0, len(keys))
	for _, k := range keys {
		players := byScore[k]
		sort.SliceStable(players, func(i, j int) bool {
			return rankLess(players[i], players[j])
		})
		groups = append(groups, ScoreGroup{
			Score:   float64(k) / 2,
			Players: players,
		})
	}

	return groups
}
