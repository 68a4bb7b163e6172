/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aarushchugh/chesspair/pairing"
	"github.com/aarushchugh/chesspair/store"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage:\n\n%v -tournament <id> -round <n> [options]\n\nGenerate pairings for one round of a stored tournament.\n\nOptions:\n",
		os.Args[0])
	flag.PrintDefaults()
}

func main() {
	dbPath := flag.String("db", "chess_tournaments.db",
		"Path to the tournament database")
	tournamentID := flag.Int64("tournament", 0, "Tournament id to pair")
	round := flag.Int("round", 0, "Round number to generate")
	standings := flag.Bool("standings", false,
		"Print current standings with tiebreaks instead of pairing")
	save := flag.Bool("save", false,
		"Persist the generated pairings, replacing any stored set for the round")
	flag.Usage = usage
	flag.Parse()

	if *tournamentID == 0 || (!*standings && *round == 0) {
		flag.Usage()
		os.Exit(1)
	}

	ctx := context.Background()

	st, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("%v: failed to open %v: %v", os.Args[0], *dbPath, err)
	}
	defer st.Close()

	tourney, err := st.Tournament(ctx, *tournamentID)
	if err != nil {
		log.Fatalf("%v: failed to load tournament %v: %v", os.Args[0],
			*tournamentID, err)
	}

	system, err := pairing.ParseSystem(tourney.System)
	if err != nil {
		log.Fatalf("%v: tournament %v: %v", os.Args[0], tourney.ID, err)
	}
	cfg := pairing.DefaultConfig()
	cfg.System = system
	cfg.TotalRounds = tourney.TotalRounds

	roster, err := st.Roster(ctx, tourney.ID)
	if err != nil {
		log.Fatalf("%v: failed to load roster: %v", os.Args[0], err)
	}
	history, err := st.History(ctx, tourney.ID)
	if err != nil {
		log.Fatalf("%v: failed to load results: %v", os.Args[0], err)
	}

	if *standings {
		printStandings(roster, history, cfg)
		return
	}

	res, err := pairing.Generate(roster, history, *round, cfg)
	if err != nil {
		log.Fatalf("%v: pairing round %v failed: %v", os.Args[0], *round, err)
	}
	for _, w := range res.Validation.Warnings {
		log.Printf("warning: %v", w.Message)
	}
	if !res.Validation.OK() {
		for _, e := range res.Validation.Errors {
			log.Printf("error: %v", e.Message)
		}
		log.Fatalf("%v: round %v failed validation; not saving", os.Args[0],
			*round)
	}

	if *save {
		if err := st.SavePairings(ctx, tourney.ID, *round, res.Pairings); err != nil {
			log.Fatalf("%v: failed to save pairings: %v", os.Args[0], err)
		}
	}

	allStandings := pairing.BuildStandings(roster, history, cfg)
	fmt.Print(pairing.BuildPairingsOutput(res.Pairings, allStandings, cfg))
}

func printStandings(roster []pairing.Player, history []pairing.GameRecord,
	cfg pairing.Config) {

	allStandings := pairing.BuildStandings(roster, history, cfg)
	breaks, err := pairing.ComputeTiebreaks(allStandings, cfg.TiebreakOrder)
	if err != nil {
		log.Fatalf("%v: computing tiebreaks: %v", os.Args[0], err)
	}
	fmt.Print(pairing.BuildStandingsOutput(allStandings, breaks,
		cfg.TiebreakOrder))
}
