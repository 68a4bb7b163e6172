/* Copyright © 2026 Aarush Chugh. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pairing

// ID identifies a player or team in the caller's store. IDs are opaque to the
// engine; it never generates them.
type ID int64

// NoPlayer marks the empty side of a bye pairing.
const NoPlayer ID = 0

type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Other returns the opposite color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// Outcome represents the result of a single round for one player, mirroring
// the outcome codes used on USCF crosstables.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomeDraw
	OutcomeFullBye
	OutcomeHalfBye
	OutcomeForfeitWin
	OutcomeForfeitLoss
	OutcomeUnplayed
	OutcomeUnknown
)

// Played reports whether the outcome represents a game played over the board.
// Forfeits and byes score points but contribute no color or opponent history.
func (o Outcome) Played() bool {
	switch o {
	case OutcomeWin, OutcomeLoss, OutcomeDraw:
		return true
	}
	return false
}

// System selects the pairing strategy for a tournament.
type System int

const (
	SystemSwiss System = iota
	SystemRoundRobin
	SystemTeamSwiss
	SystemTeamRoundRobin
)

func (s System) String() string {
	switch s {
	case SystemSwiss:
		return "swiss"
	case SystemRoundRobin:
		return "roundrobin"
	case SystemTeamSwiss:
		return "teamswiss"
	case SystemTeamRoundRobin:
		return "teamroundrobin"
	}
	return "?"
}

// ParseSystem returns the System named by s.
func ParseSystem(s string) (System, error) {
	switch s {
	case "swiss":
		return SystemSwiss, nil
	case "roundrobin":
		return SystemRoundRobin, nil
	case "teamswiss":
		return SystemTeamSwiss, nil
	case "teamroundrobin":
		return SystemTeamRoundRobin, nil
	}
	return SystemSwiss, &ConfigError{Field: "system", Value: s,
		Err: ErrUnknownSystem}
}

// Player is one rostered entrant. The caller supplies only active players;
// withdrawn entrants must be filtered before invoking the engine.
type Player struct {
	ID          ID
	DisplayName string
	// Rating is the player's current rating; 0 means unrated.
	Rating  int
	Section string

	// SeedOrder is a caller-supplied stable ordering key (typically
	// registration order) used to break rating ties deterministically.
	SeedOrder int

	// Board is the 1-based board position within a team roster, set for
	// team formats only. Board expansion pairs rosters in this order.
	Board int

	// InactiveRounds lists rounds the player sits out intentionally.
	InactiveRounds map[int]bool
}

// InactiveFor reports whether the player sits out the given round.
func (p Player) InactiveFor(round int) bool {
	return p.InactiveRounds[round]
}

// Rated reports whether the player carries a usable rating.
func (p Player) Rated() bool {
	return p.Rating > 0
}

// GameRecord is one row of results history: what happened to one player in
// one round. Two records describe a played game, one per player.
type GameRecord struct {
	PlayerID   ID
	Round      int
	OpponentID ID // NoPlayer for byes and unplayed rounds
	Color      Color
	Outcome    Outcome
}

// Pairing is a single board assignment for one round. A bye is represented
// by Black==NoPlayer; White is never empty.
type Pairing struct {
	Round   int
	Board   int
	Section string
	White   ID
	Black   ID
}

// IsBye reports whether the pairing awards a bye.
func (p Pairing) IsBye() bool {
	return p.Black == NoPlayer
}

// TeamPairing is a team-level match assignment produced by the team formats
// before board expansion.
type TeamPairing struct {
	Round        int
	Board        int
	TeamID       ID
	OpponentID   ID // NoPlayer for a team bye
	TeamColor    Color
	Section      string
}

// Team is one entrant in a team event. Roster must be board-ordered:
// Roster[0] plays board 1.
type Team struct {
	ID        ID
	Name      string
	Section   string
	SeedOrder int
	Roster    []Player
}

// AverageRating returns the mean rating of the team's rated boards, used as
// the synthetic rating when teams run through the individual pairing engine.
func (t Team) AverageRating() int {
	sum, n := 0, 0
	for _, p := range t.Roster {
		if p.Rated() {
			sum += p.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / n
}

// ColorRule controls color allocation in the Swiss engine.
type ColorRule struct {
	// ImbalanceLimit is the |whiteCount-blackCount| at which a color
	// becomes mandatory. Defaults to 2.
	ImbalanceLimit int
	// MaxStreak is the number of consecutive same-color games after which
	// the other color becomes mandatory. Defaults to 2.
	MaxStreak int
}

// Acceleration configures virtual score boosts for early rounds of large
// fields.
type Acceleration struct {
	Enabled bool
	// Rounds is the number of early rounds the boost applies to.
	Rounds int
	// TopFraction of the field (by rating) receives the boost.
	TopFraction float64
	// Bonus is the virtual score added; 1.0 if zero.
	Bonus float64
}

// ByeRule configures bye point awards.
type ByeRule struct {
	// FullPoint awards 1.0 for an assigned bye instead of 0.5.
	FullPoint bool
	// AvoidRepeat prefers players who have not yet had a bye.
	AvoidRepeat bool
}

// Config is the immutable per-invocation configuration. Construct it once
// and pass it into Generate; the engine never mutates it.
type Config struct {
	System        System
	TotalRounds   int
	TiebreakOrder []string
	Color         ColorRule
	Acceleration  Acceleration
	Bye           ByeRule
}

// DefaultConfig returns the configuration used by most club events: Swiss
// pairings, full-point byes that avoid repeats, and the standard color
// thresholds.
func DefaultConfig() Config {
	return Config{
		System:        SystemSwiss,
		TiebreakOrder: []string{TiebreakBuchholz, TiebreakSonnebornBerger, TiebreakCumulative},
		Color:         ColorRule{ImbalanceLimit: 2, MaxStreak: 2},
		Bye:           ByeRule{FullPoint: true, AvoidRepeat: true},
	}
}

// byePoints returns the score awarded for an assigned bye.
func (c Config) byePoints() float64 {
	if c.Bye.FullPoint {
		return 1.0
	}
	return 0.5
}

func (c ColorRule) imbalanceLimit() int {
	if c.ImbalanceLimit <= 0 {
		return 2
	}
	return c.ImbalanceLimit
}

func (c ColorRule) maxStreak() int {
	if c.MaxStreak <= 0 {
		return 2
	}
	return c.MaxStreak
}

func (a Acceleration) bonus() float64 {
	if a.Bonus <= 0 {
		return 1.0
	}
	return a.Bonus
}

// Result is the product of one Generate call.
type Result struct {
	Pairings []Pairing
	// TeamPairings is populated by the team systems before board expansion.
	TeamPairings []TeamPairing
	Validation   Validation
}
