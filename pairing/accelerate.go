/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"sort"
)

// applyAcceleration returns a copy of standings with the configured virtual
// score bonus added to the top fraction of the field for early rounds. The
// adjustment is strictly an input transform to the partitioner; real scores
// are never touched, so the boost disappears once the acceleration rounds
// elapse.
func applyAcceleration(standings []Standing, round int, cfg Config) []Standing {
	acc := cfg.Acceleration
	if !acc.Enabled || round > acc.Rounds || acc.TopFraction <= 0 {
		return standings
	}

	boosted := make([]Standing, len(standings))
	copy(boosted, standings)

	// top fraction of the field by initial ranking
	order := make([]int, len(boosted))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rankLess(boosted[order[i]], boosted[order[j]])
	})

	n := int(float64(len(boosted)) * acc.TopFraction)
	if n > len(boosted) {
		n = len(boosted)
	}
	for _, idx := range order[:n] {
		boosted[idx].Score += acc.bonus()
	}

	return boosted
}
