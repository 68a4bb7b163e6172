/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package store persists tournaments, rosters, results, and generated
// pairings in SQLite. It is the collaborator the pairing engine reads
// rosters and history from; the engine itself never touches the database.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/aarushchugh/chesspair/pairing"
)

// note: as per SQLite's manual suggestions, we do not use 'AUTOINCREMENT' on
// the 'INTEGER PRIMARY KEY' columns. The default behaviour of such columns is
// nearly identical anyway, with less overhead.
var schemaStmts = []string{
	`PRAGMA journal_mode=WAL;`,
	`PRAGMA foreign_keys=ON;`,
	`CREATE TABLE IF NOT EXISTS tournaments (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		system TEXT NOT NULL DEFAULT 'swiss',
		total_rounds INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
	);`,
	`CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY,
		tournament_id INTEGER NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		uscf_id TEXT NOT NULL DEFAULT '',
		rating INTEGER NOT NULL DEFAULT 0,
		section TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		seed_order INTEGER NOT NULL DEFAULT 0,
		expiration_date TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY,
		tournament_id INTEGER NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
		player_id INTEGER NOT NULL REFERENCES players(id) ON DELETE CASCADE,
		round INTEGER NOT NULL,
		opponent_id INTEGER NOT NULL DEFAULT 0,
		color TEXT NOT NULL DEFAULT 'w',
		outcome TEXT NOT NULL,
		recorded_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		CHECK (outcome IN ('W', 'L', 'D', 'B', 'H', 'X', 'F', 'U'))
		CHECK (color IN ('w', 'b'))
	);`,
	`CREATE TABLE IF NOT EXISTS pairings (
		id INTEGER PRIMARY KEY,
		tournament_id INTEGER NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
		round INTEGER NOT NULL,
		board INTEGER NOT NULL,
		section TEXT NOT NULL DEFAULT '',
		white_id INTEGER NOT NULL,
		black_id INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE INDEX IF NOT EXISTS idx_players_tournament_id ON players(tournament_id);`,
	`CREATE INDEX IF NOT EXISTS idx_results_tournament_round ON results(tournament_id, round);`,
	`CREATE INDEX IF NOT EXISTS idx_results_player_id ON results(player_id);`,
	`CREATE INDEX IF NOT EXISTS idx_pairings_tournament_round ON pairings(tournament_id, round);`,
}

type Store struct {
	db *sqlx.DB
}

func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// keep it predictable; this is a single-instance tool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	for _, stmt := range schemaStmts {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Tournament is one tournaments table row.
type Tournament struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Status      string `db:"status"`
	System      string `db:"system"`
	TotalRounds int    `db:"total_rounds"`
	CreatedAt   string `db:"created_at"`
}

// PlayerRow is one players table row.
type PlayerRow struct {
	ID             int64  `db:"id"`
	TournamentID   int64  `db:"tournament_id"`
	Name           string `db:"name"`
	UscfID         string `db:"uscf_id"`
	Rating         int    `db:"rating"`
	Section        string `db:"section"`
	Status         string `db:"status"`
	SeedOrder      int    `db:"seed_order"`
	ExpirationDate string `db:"expiration_date"`
}

// ResultRow is one results table row.
type ResultRow struct {
	ID           int64  `db:"id"`
	TournamentID int64  `db:"tournament_id"`
	PlayerID     int64  `db:"player_id"`
	Round        int    `db:"round"`
	OpponentID   int64  `db:"opponent_id"`
	Color        string `db:"color"`
	Outcome      string `db:"outcome"`
	RecordedAt   string `db:"recorded_at"`
}

func (s *Store) CreateTournament(ctx context.Context, name, system string,
	totalRounds int) (int64, error) {

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO tournaments (name, system, total_rounds)
		VALUES (?, ?, ?)
	`, name, system, totalRounds)
	if err != nil {
		return 0, fmt.Errorf("insert tournament: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) Tournaments(ctx context.Context) ([]Tournament, error) {
	var out []Tournament
	err := s.db.SelectContext(ctx, &out, `
		SELECT id, name, status, system, total_rounds, created_at
		FROM tournaments
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}
	return out, nil
}

func (s *Store) Tournament(ctx context.Context, id int64) (*Tournament, error) {
	var t Tournament
	err := s.db.GetContext(ctx, &t, `
		SELECT id, name, status, system, total_rounds, created_at
		FROM tournaments
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("select tournament %v: %w", id, err)
	}
	return &t, nil
}

func (s *Store) AddPlayer(ctx context.Context, p PlayerRow) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO players (tournament_id, name, uscf_id, rating, section,
			status, seed_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.TournamentID, p.Name, p.UscfID, p.Rating, p.Section,
		orDefault(p.Status, "active"), p.SeedOrder)
	if err != nil {
		return 0, fmt.Errorf("insert player: %w", err)
	}
	return res.LastInsertId()
}

// PlayersWithUscfID lists a tournament's entrants that carry a USCF ID,
// for rating refreshes.
func (s *Store) PlayersWithUscfID(ctx context.Context,
	tournamentID int64) ([]PlayerRow, error) {

	var out []PlayerRow
	err := s.db.SelectContext(ctx, &out, `
		SELECT id, tournament_id, name, uscf_id, rating, section, status,
			seed_order, expiration_date
		FROM players
		WHERE tournament_id = ? AND uscf_id != ''
		ORDER BY name
	`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}
	return out, nil
}

func (s *Store) UpdatePlayerRating(ctx context.Context, playerID int64,
	rating int, expiration string) error {

	_, err := s.db.ExecContext(ctx, `
		UPDATE players
		SET rating = ?, expiration_date = ?
		WHERE id = ?
	`, rating, expiration, playerID)
	if err != nil {
		return fmt.Errorf("update player %v rating: %w", playerID, err)
	}
	return nil
}

// Roster returns a tournament's active players in the engine's terms.
// Withdrawn players are excluded here; the engine never sees them.
func (s *Store) Roster(ctx context.Context,
	tournamentID int64) ([]pairing.Player, error) {

	var rows []PlayerRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, tournament_id, name, uscf_id, rating, section, status,
			seed_order, expiration_date
		FROM players
		WHERE tournament_id = ? AND status = 'active'
		ORDER BY seed_order, id
	`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("select roster: %w", err)
	}

	roster := make([]pairing.Player, 0, len(rows))
	for _, r := range rows {
		roster = append(roster, pairing.Player{
			ID:          pairing.ID(r.ID),
			DisplayName: r.Name,
			Rating:      r.Rating,
			Section:     r.Section,
			SeedOrder:   r.SeedOrder,
		})
	}
	return roster, nil
}

func (s *Store) RecordResult(ctx context.Context, r ResultRow) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (tournament_id, player_id, round, opponent_id,
			color, outcome)
		VALUES (?, ?, ?, ?, ?, ?)
	`, r.TournamentID, r.PlayerID, r.Round, r.OpponentID,
		orDefault(r.Color, "w"), r.Outcome)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// History returns a tournament's full results history in the engine's
// terms, ordered by insertion so the engine's duplicate handling keeps the
// latest correction.
func (s *Store) History(ctx context.Context,
	tournamentID int64) ([]pairing.GameRecord, error) {

	var rows []ResultRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, tournament_id, player_id, round, opponent_id, color,
			outcome, recorded_at
		FROM results
		WHERE tournament_id = ?
		ORDER BY id
	`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}

	history := make([]pairing.GameRecord, 0, len(rows))
	for _, r := range rows {
		outcome, err := parseOutcome(r.Outcome)
		if err != nil {
			return nil, fmt.Errorf("result row %v: %w", r.ID, err)
		}
		color := pairing.White
		if r.Color == "b" {
			color = pairing.Black
		}
		history = append(history, pairing.GameRecord{
			PlayerID:   pairing.ID(r.PlayerID),
			Round:      r.Round,
			OpponentID: pairing.ID(r.OpponentID),
			Color:      color,
			Outcome:    outcome,
		})
	}
	return history, nil
}

// SavePairings replaces a round's stored pairings with the given set.
func (s *Store) SavePairings(ctx context.Context, tournamentID int64,
	round int, pairings []pairing.Pairing) error {

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM pairings WHERE tournament_id = ? AND round = ?
	`, tournamentID, round)
	if err != nil {
		return fmt.Errorf("clear round %v pairings: %w", round, err)
	}

	for _, p := range pairings {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO pairings (tournament_id, round, board, section,
				white_id, black_id)
			VALUES (?, ?, ?, ?, ?, ?)
		`, tournamentID, p.Round, p.Board, p.Section, int64(p.White),
			int64(p.Black))
		if err != nil {
			return fmt.Errorf("insert pairing board %v: %w", p.Board, err)
		}
	}

	return tx.Commit()
}

// Pairings returns a round's stored pairings.
func (s *Store) Pairings(ctx context.Context, tournamentID int64,
	round int) ([]pairing.Pairing, error) {

	rows, err := s.db.QueryxContext(ctx, `
		SELECT round, board, section, white_id, black_id
		FROM pairings
		WHERE tournament_id = ? AND round = ?
		ORDER BY section, board
	`, tournamentID, round)
	if err != nil {
		return nil, fmt.Errorf("select pairings: %w", err)
	}
	defer rows.Close()

	var out []pairing.Pairing
	for rows.Next() {
		var p pairing.Pairing
		var white, black int64
		if err := rows.Scan(&p.Round, &p.Board, &p.Section, &white,
			&black); err != nil {
			return nil, fmt.Errorf("scan pairing: %w", err)
		}
		p.White, p.Black = pairing.ID(white), pairing.ID(black)
		out = append(out, p)
	}
	return out, rows.Err()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
