/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"sort"
)

// board is one matched pair prior to board numbering. white/black are final
// color assignments; forced marks a rematch the engine could not avoid.
type board struct {
	white  Standing
	black  Standing
	forced bool
}

// pairSwissSection runs the Dutch-style Swiss algorithm over one section's
// standings for the given round. Score groups are processed from highest to
// lowest; unplaceable players float down into the next group, and the final
// group falls back to least-bad forced repeats rather than failing, so a
// round always produces a schedule. The returned set records the forced
// repeats so the validator can downgrade them to warnings.
func pairSwissSection(section string, standings []Standing, round int,
	cfg Config) ([]Pairing, map[pairKey]bool) {

	pool := make([]Standing, len(standings))
	copy(pool, standings)

	// bye first so the remaining pool is even
	var byePlayer *Standing
	if len(pool)%2 == 1 {
		idx := selectBye(pool, cfg)
		bp := pool[idx]
		byePlayer = &bp
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	boosted := applyAcceleration(pool, round, cfg)
	groups := partitionScoreGroups(boosted)

	var boards []board
	var carry []Standing
	for gi := range groups {
		group := append(carry, groups[gi].Players...)
		carry = nil
		sort.SliceStable(group, func(i, j int) bool {
			if scoreKey(group[i].Score) != scoreKey(group[j].Score) {
				return group[i].Score > group[j].Score
			}
			return rankLess(group[i], group[j])
		})

		last := gi == len(groups)-1
		pairs, leftover, ok := matchScoreGroup(group, cfg.Color)
		if !last {
			if !ok {
				// deadlocked group: merge everyone into the next group
				carry = group
				continue
			}
			for _, pr := range pairs {
				boards = append(boards, board{white: pr[0], black: pr[1]})
			}
			carry = leftover
			continue
		}

		// final group: pair what we can, then force the remainder
		if ok {
			for _, pr := range pairs {
				boards = append(boards, board{white: pr[0], black: pr[1]})
			}
		} else {
			leftover = group
		}
		boards = append(boards, forcePairs(leftover)...)
	}

	forced := make(map[pairKey]bool)
	for _, b := range boards {
		if b.forced {
			forced[makePairKey(b.white.Player.ID, b.black.Player.ID)] = true
		}
	}

	return numberBoards(section, round, boards, byePlayer, cfg), forced
}

// selectBye returns the pool index of the player receiving this round's bye:
// the lowest-scoring, lowest-rated player without a prior bye, or the
// lowest-scoring player overall when everyone has had one.
func selectBye(pool []Standing, cfg Config) int {
	best := -1
	better := func(i, j int) bool {
		// prefer lower score, then lower rank (unrated sorts lowest)
		a, b := pool[i], pool[j]
		if scoreKey(a.Score) != scoreKey(b.Score) {
			return scoreKey(a.Score) < scoreKey(b.Score)
		}
		return rankLess(b, a)
	}

	if cfg.Bye.AvoidRepeat {
		for i := range pool {
			if pool[i].HadBye {
				continue
			}
			if best == -1 || better(i, best) {
				best = i
			}
		}
	}
	if best == -1 {
		best = 0
		for i := 1; i < len(pool); i++ {
			if better(i, best) {
				best = i
			}
		}
	}

	return best
}

// matchScoreGroup attempts a rematch-free perfect matching of the group. For
// odd groups one player floats down (lowest-rated first); for even groups
// that deadlock, a minimal pair of floaters is tried before giving up. The
// returned leftover holds the floaters.
func matchScoreGroup(group []Standing, rule ColorRule) (pairs [][2]Standing,
	leftover []Standing, ok bool) {

	if len(group) == 0 {
		return nil, nil, true
	}

	if len(group)%2 == 1 {
		// float the lowest-ranked player that still leaves the rest
		// pairable
		for i := len(group) - 1; i >= 0; i-- {
			rest := withoutIndex(group, i)
			if pairs, ok := matchHalves(rest, rule); ok {
				return pairs, []Standing{group[i]}, true
			}
		}
		return nil, nil, false
	}

	if pairs, ok := matchHalves(group, rule); ok {
		return pairs, nil, true
	}

	// float a minimal pair, preferring the bottom of the group
	for i := len(group) - 1; i >= 1; i-- {
		for j := i - 1; j >= 0; j-- {
			rest := withoutIndexes(group, j, i)
			if pairs, ok := matchHalves(rest, rule); ok {
				return pairs, []Standing{group[j], group[i]}, true
			}
		}
	}

	return nil, nil, false
}

// matchHalves searches for a rematch-free perfect matching using the classic
// S1-vs-S2 preference: the top player meets the top of the bottom half, with
// backtracking over alternatives when rematches block the ideal pairing.
// Candidates honoring both players' color preferences are tried first within
// each preference tier.
func matchHalves(group []Standing, rule ColorRule) ([][2]Standing, bool) {
	if len(group) == 0 {
		return nil, true
	}
	if len(group)%2 == 1 {
		return nil, false
	}

	first := group[0]
	rest := group[1:]

	for _, idx := range candidateOrder(first, rest, rule) {
		opp := rest[idx]
		if first.hasPlayed(opp.Player.ID) {
			continue
		}
		sub, ok := matchHalves(withoutIndex(rest, idx), rule)
		if !ok {
			continue
		}
		pairs := make([][2]Standing, 0, len(sub)+1)
		pairs = append(pairs, [2]Standing{first, opp})
		pairs = append(pairs, sub...)
		return pairs, true
	}

	return nil, false
}

// candidateOrder returns indexes into rest in Dutch preference order for the
// group leader: the top of the bottom half first, walking down, then the
// upper-half players nearest in rating. Within that order, opponents whose
// color due is compatible with the leader's are preferred.
func candidateOrder(first Standing, rest []Standing, rule ColorRule) []int {
	mid := len(rest) / 2
	order := make([]int, 0, len(rest))
	for i := mid; i < len(rest); i++ {
		order = append(order, i)
	}
	for i := mid - 1; i >= 0; i-- {
		order = append(order, i)
	}

	firstDue, firstMust := colorDue(first, rule)
	if !firstMust {
		return order
	}
	sort.SliceStable(order, func(i, j int) bool {
		a := colorCompatible(firstDue, rest[order[i]], rule)
		b := colorCompatible(firstDue, rest[order[j]], rule)
		return a && !b
	})

	return order
}

// colorCompatible reports whether opp can take the color opposite to the
// leader's due color without violating opp's own mandatory due.
func colorCompatible(leaderDue Color, opp Standing, rule ColorRule) bool {
	oppDue, oppMust := colorDue(opp, rule)
	if !oppMust {
		return true
	}
	return oppDue != leaderDue
}

// forcePairs pairs the remaining players even when rematches are
// unavoidable, choosing for each leader the opponent with the smallest score
// distance, then the smallest rating distance. Repeats are marked forced so
// they surface as warnings instead of validation errors.
func forcePairs(remaining []Standing) []board {
	var boards []board

	rest := make([]Standing, len(remaining))
	copy(rest, remaining)
	sort.SliceStable(rest, func(i, j int) bool {
		if scoreKey(rest[i].Score) != scoreKey(rest[j].Score) {
			return rest[i].Score > rest[j].Score
		}
		return rankLess(rest[i], rest[j])
	})

	for len(rest) >= 2 {
		first := rest[0]
		rest = rest[1:]

		best := 0
		for i := 1; i < len(rest); i++ {
			if forceBetter(first, rest[i], rest[best]) {
				best = i
			}
		}

		opp := rest[best]
		rest = withoutIndex(rest, best)
		boards = append(boards, board{white: first, black: opp,
			forced: first.hasPlayed(opp.Player.ID)})
	}

	return boards
}

// forceBetter reports whether candidate a is a better forced opponent for
// first than b: non-rematches first, then smaller score distance, then
// smaller rating distance.
func forceBetter(first, a, b Standing) bool {
	ra, rb := first.hasPlayed(a.Player.ID), first.hasPlayed(b.Player.ID)
	if ra != rb {
		return !ra
	}
	da := absInt(scoreKey(first.Score) - scoreKey(a.Score))
	db := absInt(scoreKey(first.Score) - scoreKey(b.Score))
	if da != db {
		return da < db
	}
	return absInt(first.Player.Rating-a.Player.Rating) <
		absInt(first.Player.Rating-b.Player.Rating)
}

// numberBoards orders the matched boards (descending score of the stronger
// side, then descending rating), finalizes colors, and assigns contiguous
// board numbers starting at 1. The bye, when present, takes the final board.
func numberBoards(section string, round int, boards []board,
	byePlayer *Standing, cfg Config) []Pairing {

	sort.SliceStable(boards, func(i, j int) bool {
		si := maxScoreKey(boards[i])
		sj := maxScoreKey(boards[j])
		if si != sj {
			return si > sj
		}
		return maxRating(boards[i]) > maxRating(boards[j])
	})

	pairings := make([]Pairing, 0, len(boards)+1)
	alt := White
	for i, b := range boards {
		w, bl := assignColors(b.white, b.black, cfg, &alt)
		pairings = append(pairings, Pairing{
			Round:   round,
			Board:   i + 1,
			Section: section,
			White:   w.Player.ID,
			Black:   bl.Player.ID,
		})
	}
	if byePlayer != nil {
		pairings = append(pairings, Pairing{
			Round:   round,
			Board:   len(boards) + 1,
			Section: section,
			White:   byePlayer.Player.ID,
			Black:   NoPlayer,
		})
	}

	return pairings
}

// colorDue computes a player's due color. must is true when the imbalance
// limit or same-color streak forces the assignment.
func colorDue(s Standing, rule ColorRule) (due Color, must bool) {
	imbalance := s.colorImbalance()
	limit := rule.imbalanceLimit()
	streak := rule.maxStreak()

	if imbalance >= limit {
		return Black, true
	}
	if imbalance <= -limit {
		return White, true
	}

	last := s.lastColors(streak)
	if len(last) == streak {
		same := true
		for _, c := range last[1:] {
			if c != last[0] {
				same = false
			}
		}
		if same {
			return last[0].Other(), true
		}
	}

	if imbalance > 0 {
		return Black, false
	}
	if imbalance < 0 {
		return White, false
	}
	return White, false
}

// hasDue reports whether the player leans toward any color at all.
func hasDue(s Standing, rule ColorRule) bool {
	if s.colorImbalance() != 0 {
		return true
	}
	streak := rule.maxStreak()
	last := s.lastColors(streak)
	if len(last) < streak {
		return false
	}
	for _, c := range last[1:] {
		if c != last[0] {
			return false
		}
	}
	return true
}

// assignColors finalizes the white/black assignment for a matched pair.
// first is the higher-ranked player. When both players are due the same
// color, the larger cumulative imbalance wins; unresolved ties give the
// higher-ranked player the color matching the section's alternating
// pattern.
func assignColors(first, second Standing, cfg Config,
	alt *Color) (white, black Standing) {

	firstDue, _ := colorDue(first, cfg.Color)
	secondDue, _ := colorDue(second, cfg.Color)
	firstHas := hasDue(first, cfg.Color)
	secondHas := hasDue(second, cfg.Color)

	patternColor := *alt
	*alt = alt.Other()

	switch {
	case firstHas && !secondHas:
		if firstDue == White {
			return first, second
		}
		return second, first
	case secondHas && !firstHas:
		if secondDue == White {
			return second, first
		}
		return first, second
	case firstHas && secondHas && firstDue != secondDue:
		if firstDue == White {
			return first, second
		}
		return second, first
	case firstHas && secondHas:
		// both due the same color: larger imbalance wins
		fi := absInt(first.colorImbalance())
		si := absInt(second.colorImbalance())
		if fi > si {
			if firstDue == White {
				return first, second
			}
			return second, first
		}
		if si > fi {
			if secondDue == White {
				return second, first
			}
			return first, second
		}
	}

	// indifferent or deadlocked: alternating pattern decides
	if patternColor == White {
		return first, second
	}
	return second, first
}

func maxScoreKey(b board) int {
	w, bl := scoreKey(b.white.Score), scoreKey(b.black.Score)
	if w > bl {
		return w
	}
	return bl
}

func maxRating(b board) int {
	if b.white.Player.Rating > b.black.Player.Rating {
		return b.white.Player.Rating
	}
	return b.black.Player.Rating
}

func withoutIndex(s []Standing, i int) []Standing {
	out := make([]Standing, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

// withoutIndexes removes i and j from s; requires i < j.
func withoutIndexes(s []Standing, i, j int) []Standing {
	out := make([]Standing, 0, len(s)-2)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:j]...)
	out = append(out, s[j+1:]...)
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
