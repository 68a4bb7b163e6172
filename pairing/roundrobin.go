/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"sort"
)

// roundRobinRounds returns the number of rounds a full cycle takes for n
// entrants: n-1 when n is even, n when odd (the bye slot rotates through
// everyone).
func roundRobinRounds(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}

// seedOrder returns the section's entrants in their fixed initial ordering:
// seed order, then rating descending, then name. The whole schedule is
// determined by this ordering and the round number alone.
func seedOrder(standings []Standing) []Standing {
	seeded := make([]Standing, len(standings))
	copy(seeded, standings)
	sort.SliceStable(seeded, func(i, j int) bool {
		a, b := seeded[i].Player, seeded[j].Player
		if a.SeedOrder != b.SeedOrder {
			return a.SeedOrder < b.SeedOrder
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.DisplayName < b.DisplayName
	})
	return seeded
}

// pairRoundRobinSection produces the circle-method schedule for the given
// round: the first slot stays fixed while the remaining slots rotate one
// position per round. No history lookups are needed and no rematch is
// possible by construction. For an odd entrant count a rotating ghost slot
// awards each player exactly one bye per cycle.
func pairRoundRobinSection(section string, standings []Standing,
	round int) []Pairing {

	seeded := seedOrder(standings)

	// ghost entrant fills the bye slot for odd fields
	slots := make([]ID, 0, len(seeded)+1)
	for _, st := range seeded {
		slots = append(slots, st.Player.ID)
	}
	if len(slots)%2 == 1 {
		slots = append(slots, NoPlayer)
	}

	n := len(slots)
	cycle := roundRobinRounds(len(seeded))
	rot := (round - 1) % cycle

	// rotate all but the fixed first slot
	rotated := make([]ID, n)
	rotated[0] = slots[0]
	for i := 1; i < n; i++ {
		src := (i-1+rot)%(n-1) + 1
		rotated[i] = slots[src]
	}

	var pairings []Pairing
	var byeID ID
	board := 1
	for i := 0; i < n/2; i++ {
		a, b := rotated[i], rotated[n-1-i]
		if a == NoPlayer || b == NoPlayer {
			if a == NoPlayer {
				byeID = b
			} else {
				byeID = a
			}
			continue
		}
		// alternate colors down the schedule for rough balance
		if (round+i)%2 == 1 {
			a, b = b, a
		}
		pairings = append(pairings, Pairing{
			Round:   round,
			Board:   board,
			Section: section,
			White:   a,
			Black:   b,
		})
		board++
	}

	if byeID != NoPlayer {
		pairings = append(pairings, Pairing{
			Round:   round,
			Board:   board,
			Section: section,
			White:   byeID,
			Black:   NoPlayer,
		})
	}

	return pairings
}
