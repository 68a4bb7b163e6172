/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SectionSorter implements sort.Interface for conventional section ordering:
// "Open" or "Championship" first, then U<Number> sections descending by
// number, then others lexicographically.
type SectionSorter []string

func (s SectionSorter) Len() int { return len(s) }

func (s SectionSorter) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s SectionSorter) Less(i, j int) bool {
	a, b := s[i], s[j]
	if a == "Open" && b != "Open" {
		return true
	}
	if b == "Open" && a != "Open" {
		return false
	}
	if a == "Championship" && b != "Championship" {
		return true
	}
	if b == "Championship" && a != "Championship" {
		return false
	}
	ua, ub := strings.HasPrefix(a, "U"), strings.HasPrefix(b, "U")
	if ua && ub {
		ai, errA := strconv.Atoi(strings.TrimPrefix(a, "U"))
		bi, errB := strconv.Atoi(strings.TrimPrefix(b, "U"))
		if errA == nil && errB == nil {
			return ai > bi
		}
	}
	if ua != ub {
		return ua
	}
	return a < b
}

// strategy pairs one section for one round. The returned set marks pairs the
// strategy was forced to repeat despite the rematch constraint.
type strategy interface {
	pairSection(section string, standings []Standing, round int,
		cfg Config) ([]Pairing, map[pairKey]bool, error)
}

type swissDutch struct{}

func (swissDutch) pairSection(section string, standings []Standing, round int,
	cfg Config) ([]Pairing, map[pairKey]bool, error) {

	pairings, forced := pairSwissSection(section, standings, round, cfg)
	return pairings, forced, nil
}

type roundRobin struct{}

func (roundRobin) pairSection(section string, standings []Standing, round int,
	cfg Config) ([]Pairing, map[pairKey]bool, error) {

	return pairRoundRobinSection(section, standings, round), nil, nil
}

func strategyFor(system System) (strategy, error) {
	switch system {
	case SystemSwiss:
		return swissDutch{}, nil
	case SystemRoundRobin:
		return roundRobin{}, nil
	}
	return nil, &ConfigError{Field: "system", Value: system.String(),
		Err: ErrUnknownSystem}
}

// Generate produces the pairings for one round of an individual event, one
// call per round with no state carried between calls. Standings are rebuilt
// from the full results history on every invocation. Sections pair
// independently and concurrently; the merged result carries the validator's
// findings, with engine-forced repeats reported as warnings.
//
// Team events go through GenerateTeams instead.
func Generate(roster []Player, history []GameRecord, round int,
	cfg Config) (*Result, error) {

	if round < 1 || (cfg.TotalRounds > 0 && round > cfg.TotalRounds) {
		return nil, &ConfigError{Field: "round", Value: strconv.Itoa(round),
			Err: ErrInvalidRound}
	}

	strat, err := strategyFor(cfg.System)
	if err != nil {
		return nil, err
	}

	active := make([]Player, 0, len(roster))
	for _, p := range roster {
		if !p.InactiveFor(round) {
			active = append(active, p)
		}
	}
	if len(active) < 2 {
		return nil, ErrInsufficientPlayers
	}

	standings := BuildStandings(active, history, cfg)

	bySection := make(map[string][]Standing)
	for _, st := range standings {
		bySection[st.Player.Section] = append(bySection[st.Player.Section], st)
	}
	sections := make([]string, 0, len(bySection))
	for s := range bySection {
		sections = append(sections, s)
	}
	sort.Sort(SectionSorter(sections))

	type sectionResult struct {
		pairings []Pairing
		forced   map[pairKey]bool
	}
	results := make([]sectionResult, len(sections))

	var eg errgroup.Group
	for i, section := range sections {
		i, section := i, section
		eg.Go(func() error {
			pairings, forced, err := strat.pairSection(section,
				bySection[section], round, cfg)
			if err != nil {
				return err
			}
			results[i] = sectionResult{pairings: pairings, forced: forced}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var pairings []Pairing
	forced := make(map[pairKey]bool)
	for _, r := range results {
		pairings = append(pairings, r.pairings...)
		for k := range r.forced {
			forced[k] = true
		}
	}

	return &Result{
		Pairings:   pairings,
		Validation: validatePairings(pairings, standings, round, forced),
	}, nil
}
