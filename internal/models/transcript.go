package models

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TurnRecord is one resolved turn as seen from outside the engine.
type TurnRecord struct {
	Turn      int     `yaml:"turn"`
	Player    int     `yaml:"player"`
	Die       int     `yaml:"die"`
	Token     TokenID `yaml:"token"`
	From      string  `yaml:"from,omitempty"`
	To        string  `yaml:"to,omitempty"`
	Arrived   bool    `yaml:"arrived,omitempty"`
	Rejected  bool    `yaml:"rejected,omitempty"`
	ExtraTurn bool    `yaml:"extra_turn,omitempty"`
	Reason    string  `yaml:"reason,omitempty"`
}

// Transcript is an append-only log of a played session. It is written for
// inspection only; there is no way to resume a game from it.
type Transcript struct {
	SessionID string            `yaml:"session_id"`
	Config    GameConfiguration `yaml:"config"`
	Turns     []TurnRecord      `yaml:"turns"`
	Final     []Token           `yaml:"final_tokens,omitempty"`
}

func (t *Transcript) Append(r TurnRecord) {
	r.Turn = len(t.Turns) + 1
	t.Turns = append(t.Turns, r)
}

func (t *Transcript) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func LoadTranscript(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Transcript
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
