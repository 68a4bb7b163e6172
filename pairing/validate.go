/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"fmt"
	"sort"
)

// ratingGapWarn is the rating difference above which a pairing draws a
// warning. Large gaps are legal but usually indicate a seeding mistake.
const ratingGapWarn = 700

type IssueType int

const (
	ErrorDuplicateBoard IssueType = iota
	ErrorSelfPairing
	ErrorDoubleBooked
	ErrorRematch
	WarningForcedRepeat
	WarningRatingGap
)

func (t IssueType) String() string {
	switch t {
	case ErrorDuplicateBoard:
		return "duplicate board"
	case ErrorSelfPairing:
		return "self pairing"
	case ErrorDoubleBooked:
		return "double booked"
	case ErrorRematch:
		return "rematch"
	case WarningForcedRepeat:
		return "forced repeat"
	case WarningRatingGap:
		return "rating gap"
	}
	return "unknown"
}

// Issue is one validation finding, tied to the boards it was observed on.
type Issue struct {
	Type    IssueType
	Message string
	Boards  []int
}

// Validation partitions findings into errors (the round must not be
// published) and warnings (publishable, but a director should look).
type Validation struct {
	Errors   []Issue
	Warnings []Issue
}

// OK reports whether the round is publishable as-is.
func (v Validation) OK() bool {
	return len(v.Errors) == 0
}

// pairKey identifies an unordered player pair.
type pairKey struct {
	lo, hi ID
}

func makePairKey(a, b ID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Validate checks a proposed round against the standings it was generated
// from. Every rematch is reported as an error; rounds produced by Generate
// run the internal variant instead, which downgrades the repeats the engine
// itself was forced into.
func Validate(pairings []Pairing, standings []Standing, round int) Validation {
	return validatePairings(pairings, standings, round, nil)
}

func validatePairings(pairings []Pairing, standings []Standing, round int,
	forced map[pairKey]bool) Validation {

	var v Validation
	byID := standingsByID(standings)

	// structural checks are per-section: board numbers restart per section
	bySection := make(map[string][]Pairing)
	for _, p := range pairings {
		bySection[p.Section] = append(bySection[p.Section], p)
	}
	sections := make([]string, 0, len(bySection))
	for s := range bySection {
		sections = append(sections, s)
	}
	sort.Strings(sections)

	for _, section := range sections {
		seenBoard := make(map[int]bool)
		seenPlayer := make(map[ID]int)

		for _, p := range bySection[section] {
			if seenBoard[p.Board] {
				v.Errors = append(v.Errors, Issue{
					Type: ErrorDuplicateBoard,
					Message: fmt.Sprintf("board %v assigned twice in %v",
						p.Board, section),
					Boards: []int{p.Board},
				})
			}
			seenBoard[p.Board] = true

			if p.White == p.Black {
				v.Errors = append(v.Errors, Issue{
					Type: ErrorSelfPairing,
					Message: fmt.Sprintf("board %v pairs player %v against itself",
						p.Board, p.White),
					Boards: []int{p.Board},
				})
				continue
			}

			for _, id := range []ID{p.White, p.Black} {
				if id == NoPlayer {
					continue
				}
				if prev, ok := seenPlayer[id]; ok {
					v.Errors = append(v.Errors, Issue{
						Type: ErrorDoubleBooked,
						Message: fmt.Sprintf(
							"player %v appears on boards %v and %v in %v",
							id, prev, p.Board, section),
						Boards: []int{prev, p.Board},
					})
				}
				seenPlayer[id] = p.Board
			}

			if p.IsBye() {
				continue
			}

			white, black := byID[p.White], byID[p.Black]
			if white != nil && white.hasPlayed(p.Black) {
				issue := Issue{
					Message: fmt.Sprintf("board %v repeats %v vs %v",
						p.Board, playerName(white), playerLabel(byID, p.Black)),
					Boards: []int{p.Board},
				}
				if forced[makePairKey(p.White, p.Black)] {
					issue.Type = WarningForcedRepeat
					v.Warnings = append(v.Warnings, issue)
				} else {
					issue.Type = ErrorRematch
					v.Errors = append(v.Errors, issue)
				}
			}

			if white != nil && black != nil &&
				white.Player.Rated() && black.Player.Rated() {
				gap := absInt(white.Player.Rating - black.Player.Rating)
				if gap > ratingGapWarn {
					v.Warnings = append(v.Warnings, Issue{
						Type: WarningRatingGap,
						Message: fmt.Sprintf(
							"board %v has a %v point rating gap (%v vs %v)",
							p.Board, gap, playerName(white), playerName(black)),
						Boards: []int{p.Board},
					})
				}
			}
		}
	}

	return v
}

func playerName(s *Standing) string {
	return s.Player.DisplayName
}

func playerLabel(byID map[ID]*Standing, id ID) string {
	if s, ok := byID[id]; ok {
		return s.Player.DisplayName
	}
	return fmt.Sprintf("player %v", id)
}
