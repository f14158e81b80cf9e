package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Phase is the discrete turn state gating which commands are legal.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseRolling
	PhaseRolled
	PhaseMoving
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseRolling:
		return "rolling"
	case PhaseRolled:
		return "rolled"
	case PhaseMoving:
		return "moving"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

func (p Phase) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

func (p *Phase) UnmarshalYAML(value *yaml.Node) error {
	for _, candidate := range []Phase{PhaseWaiting, PhaseRolling, PhaseRolled, PhaseMoving} {
		if candidate.String() == value.Value {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", value.Value)
}

// TokenID identifies a token for the lifetime of a session.
type TokenID int

// GameConfiguration is fixed for a session.
type GameConfiguration struct {
	NumPlayers     int `yaml:"num_players"`
	PawnsPerPlayer int `yaml:"pawns_per_player"`
	PathLength     int `yaml:"path_length"`
}

// PathCell is one step of a player's private route. Order is 1-based; order 0
// stands for the player's home area and only appears as the origin of an
// entering move.
type PathCell struct {
	PlayerIndex int `yaml:"player"`
	Order       int `yaml:"order"`
}

func (c PathCell) IsHome() bool {
	return c.Order == 0
}

func (c PathCell) ID() string {
	if c.IsHome() {
		return fmt.Sprintf("p%d:home", c.PlayerIndex)
	}
	return fmt.Sprintf("p%d:%d", c.PlayerIndex, c.Order)
}

// Token is a player-owned pawn.
type Token struct {
	ID       TokenID `yaml:"id"`
	Owner    int     `yaml:"owner"`
	Slot     int     `yaml:"slot"`
	InPlay   bool    `yaml:"in_play"`
	Progress int     `yaml:"progress"` // 0 at home, else the order of the occupied cell
}

// AtGoal reports whether the token sits on the last cell of a path of the given length.
func (t Token) AtGoal(pathLength int) bool {
	return t.InPlay && pathLength > 0 && t.Progress == pathLength
}

// TurnState is the single per-session turn record.
type TurnState struct {
	CurrentPlayer int   `yaml:"current_player"`
	LastDie       int   `yaml:"last_die"` // 0 = not rolled this turn
	Phase         Phase `yaml:"phase"`
}

// GameSession is a point-in-time view of a running game.
type GameSession struct {
	ID     string            `yaml:"id"`
	Config GameConfiguration `yaml:"config"`
	Turn   TurnState         `yaml:"turn"`
	Tokens []Token           `yaml:"tokens"`

	// PathLengths is each player's path length, which may differ between
	// players. Empty means every path is Config.PathLength long.
	PathLengths []int `yaml:"path_lengths,omitempty"`
}

// PathLen is the number of cells on the player's path.
func (s *GameSession) PathLen(player int) int {
	if player >= 0 && player < len(s.PathLengths) {
		return s.PathLengths[player]
	}
	return s.Config.PathLength
}

// TokensOf returns the player's tokens in creation order.
func (s *GameSession) TokensOf(player int) []Token {
	var out []Token
	for _, t := range s.Tokens {
		if t.Owner == player {
			out = append(out, t)
		}
	}
	return out
}

// Arrived counts the player's tokens parked on the goal.
func (s *GameSession) Arrived(player int) int {
	n := 0
	for _, t := range s.TokensOf(player) {
		if t.AtGoal(s.PathLen(player)) {
			n++
		}
	}
	return n
}
