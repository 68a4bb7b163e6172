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
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/aarushchugh/chesspair/store"
	"github.com/aarushchugh/chesspair/uscf"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage:\n\n%v [options]\n\nRefresh USCF ratings and membership status for stored players.\n\nOptions:\n",
		os.Args[0])
	flag.PrintDefaults()
}

func main() {
	dbPath := flag.String("db", "chess_tournaments.db",
		"Path to the tournament database")
	tournamentID := flag.Int64("tournament", 0,
		"Tournament id to refresh (0 refreshes every tournament)")
	workers := flag.Int("workers", 4, "Concurrent USCF lookups")
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()

	st, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("%v: failed to open %v: %v", os.Args[0], *dbPath, err)
	}
	defer st.Close()

	client := uscf.NewClient(ctx)

	tournaments, err := targetTournaments(ctx, st, *tournamentID)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	var updated, failed int64
	for _, tourney := range tournaments {
		players, err := st.PlayersWithUscfID(ctx, tourney.ID)
		if err != nil {
			log.Fatalf("%v: loading players for %v: %v", os.Args[0],
				tourney.Name, err)
		}
		if len(players) == 0 {
			continue
		}
		log.Printf("%v: refreshing %v players", tourney.Name, len(players))

		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(*workers)
		for _, p := range players {
			p := p
			eg.Go(func() error {
				if err := refreshPlayer(egCtx, st, client, p); err != nil {
					log.Printf("%v: %v", p.Name, err)
					atomic.AddInt64(&failed, 1)
					return nil
				}
				atomic.AddInt64(&updated, 1)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			log.Fatalf("%v: refreshing %v: %v", os.Args[0], tourney.Name, err)
		}
	}

	fmt.Printf("updated %v players, %v failed\n", updated, failed)
}

func targetTournaments(ctx context.Context, st *store.Store,
	id int64) ([]store.Tournament, error) {

	if id != 0 {
		tourney, err := st.Tournament(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("loading tournament %v: %w", id, err)
		}
		return []store.Tournament{*tourney}, nil
	}
	tournaments, err := st.Tournaments(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tournaments: %w", err)
	}
	return tournaments, nil
}

func refreshPlayer(ctx context.Context, st *store.Store, client *uscf.Client,
	p store.PlayerRow) error {

	memberID, err := strconv.Atoi(p.UscfID)
	if err != nil {
		return fmt.Errorf("bad USCF id %q: %w", p.UscfID, err)
	}

	member, err := client.FetchMember(ctx, uscf.MemID(memberID))
	if err != nil {
		return fmt.Errorf("fetching member %v: %w", memberID, err)
	}
	if member.Expired() {
		log.Printf("%v: USCF membership expired %v", p.Name,
			member.Expiration.Format("2006-01-02"))
	}

	expiration := ""
	if !member.Expiration.IsZero() {
		expiration = member.Expiration.Format("2006-01-02")
	}
	if err := st.UpdatePlayerRating(ctx, p.ID, member.RegRating,
		expiration); err != nil {
		return fmt.Errorf("updating %v: %w", p.Name, err)
	}

	log.Printf("%v: rating %v", p.Name, member.RegRating)
	return nil
}
