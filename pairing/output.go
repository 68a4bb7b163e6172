/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aarushchugh/chesspair/internal"
)

// BuildPairingsOutput formats a round's pairings into grouped, aligned
// string output, one table per section.
func BuildPairingsOutput(pairings []Pairing, standings []Standing,
	cfg Config) string {

	byID := standingsByID(standings)

	sections := make(map[string][]Pairing)
	for _, p := range pairings {
		sections[p.Section] = append(sections[p.Section], p)
	}
	var sectionNames []string
	for sec := range sections {
		sectionNames = append(sectionNames, sec)
	}
	sort.Sort(SectionSorter(sectionNames))

	var sb strings.Builder

	if len(pairings) > 0 {
		sb.WriteString(fmt.Sprintf("Round %v Pairings:\n\n", pairings[0].Round))
	} else {
		sb.WriteString("No pairings generated")
	}

	for _, sec := range sectionNames {
		list := sections[sec]
		sort.Slice(list, func(i, j int) bool {
			return list[i].Board < list[j].Board
		})

		type row struct{ board, white, black string }
		var rows []row
		for _, p := range list {
			var b, w, bl string
			w = playerCell(byID, p.White)
			if p.IsBye() {
				b = "n/a"
				if cfg.byePoints() == 1.0 {
					bl = "BYE(1)"
				} else {
					bl = "BYE(½)"
				}
			} else {
				b = fmt.Sprintf("%d.", p.Board)
				bl = playerCell(byID, p.Black)
			}
			rows = append(rows, row{board: b, white: w, black: bl})
		}

		// Compute column widths
		maxB, maxW, maxBl := len("Board"), len("White"), len("Black")
		for _, r := range rows {
			if l := len(r.board); l > maxB {
				maxB = l
			}
			if l := len(r.white); l > maxW {
				maxW = l
			}
			if l := len(r.black); l > maxBl {
				maxBl = l
			}
		}

		if len(sectionNames) > 1 {
			if sec == "" {
				sec = "UNNAMED"
			}
			sb.WriteString(fmt.Sprintf("%s Section\n", sec))
		}
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, "Board", maxW,
			"White", maxBl, "Black"))
		for _, r := range rows {
			sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, r.board,
				maxW, r.white, maxBl, r.black))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func playerCell(byID map[ID]*Standing, id ID) string {
	st, ok := byID[id]
	if !ok {
		return fmt.Sprintf("player %v", id)
	}
	return fmt.Sprintf("%s(%d %v)", st.Player.DisplayName, st.Player.Rating,
		internal.ScoreToString(st.Score))
}

// tiebreakLabels maps tiebreak names to standings column headers.
var tiebreakLabels = map[string]string{
	TiebreakBuchholz:          "Buch",
	TiebreakBuchholzCut1:      "Buch-1",
	TiebreakMedian:            "Medn",
	TiebreakSonnebornBerger:   "S-B",
	TiebreakCumulative:        "Cuml",
	TiebreakDirectEncounter:   "H2H",
	TiebreakPerformanceRating: "Perf",
}

// BuildStandingsOutput formats standings into grouped, aligned string
// output ordered by score and the given tiebreak order, one table per
// section, with one column per tiebreak.
func BuildStandingsOutput(standings []Standing, breaks map[ID]Tiebreaks,
	order []string) string {

	secStandings := make(map[string][]Standing)
	for _, st := range standings {
		sec := st.Player.Section
		secStandings[sec] = append(secStandings[sec], st)
	}
	var sectionNames []string
	for sec := range secStandings {
		sectionNames = append(sectionNames, sec)
	}
	sort.Sort(SectionSorter(sectionNames))

	var sb strings.Builder

	for _, sec := range sectionNames {
		ranked := SortStandings(secStandings[sec], breaks, order)

		type row struct {
			rank, player, score string
			tb                  []string
		}
		var rows []row
		priorScore := -1.0
		for idx, st := range ranked {
			var rank string
			if idx != 0 && st.Score == priorScore {
				rank = ""
			} else {
				rank = fmt.Sprintf("%v.", idx+1)
				priorScore = st.Score
			}
			r := row{
				rank:   rank,
				player: st.Player.DisplayName,
				score:  fmt.Sprintf("%.1f", st.Score),
			}
			for _, name := range order {
				val := breaks[st.Player.ID][name]
				if name == TiebreakPerformanceRating {
					r.tb = append(r.tb, fmt.Sprintf("%.0f", val))
				} else {
					r.tb = append(r.tb, fmt.Sprintf("%.1f", val))
				}
			}
			rows = append(rows, r)
		}

		// Compute column widths
		headers := []string{"Place", "Name", "Score"}
		for _, name := range order {
			label, ok := tiebreakLabels[name]
			if !ok {
				label = name
			}
			headers = append(headers, label)
		}
		widths := make([]int, len(headers))
		for i, h := range headers {
			widths[i] = len(h)
		}
		for _, r := range rows {
			cells := append([]string{r.rank, r.player, r.score}, r.tb...)
			for i, c := range cells {
				if len(c) > widths[i] {
					widths[i] = len(c)
				}
			}
		}

		if len(sectionNames) > 1 {
			if sec == "" {
				sec = "UNNAMED"
			}
			sb.WriteString(fmt.Sprintf("%s Section\n", sec))
		}
		writeRow := func(cells []string) {
			for i, c := range cells {
				if i > 0 {
					sb.WriteString("  ")
				}
				sb.WriteString(fmt.Sprintf("%-*s", widths[i], c))
			}
			sb.WriteString("\n")
		}
		writeRow(headers)
		for _, r := range rows {
			writeRow(append([]string{r.rank, r.player, r.score}, r.tb...))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
