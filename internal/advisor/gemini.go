package advisor

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Alucard666haku/front-end-ludo-app/internal/engine"
	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"
)

//go:embed prompts/choose_token.txt
var chooseTokenPrompt string

var chooseTokenTmpl = template.Must(template.New("choose_token").Parse(chooseTokenPrompt))

// Gemini asks a Gemini model to pick the token.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)
	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

func (g *Gemini) Choose(ctx context.Context, session models.GameSession, moves []engine.Move) (Choice, error) {
	if len(moves) == 0 {
		return Choice{}, ErrNoCandidates
	}

	prompt, err := renderPrompt(session, moves)
	if err != nil {
		return Choice{}, err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Choice{}, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Choice{}, fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return Choice{}, fmt.Errorf("unexpected response type from Gemini")
	}

	return parseChoice(string(text), moves)
}

type promptCandidate struct {
	Token   models.TokenID
	Slot    int
	Legal   bool
	Parked  bool
	From    string
	To      string
	Arrives bool
}

func renderPrompt(session models.GameSession, moves []engine.Move) (string, error) {
	player := session.Turn.CurrentPlayer

	var candidates []promptCandidate
	for _, m := range moves {
		c := promptCandidate{Token: m.Token, Legal: m.Legal, Arrives: m.Arrives, From: m.From.ID()}
		if m.Legal {
			c.To = m.To.ID()
			c.Parked = m.From.Order == m.To.Order
		}
		for _, t := range session.Tokens {
			if t.ID == m.Token {
				c.Slot = t.Slot + 1
			}
		}
		candidates = append(candidates, c)
	}

	var opponents []string
	for p := 0; p < session.Config.NumPlayers; p++ {
		if p == player {
			continue
		}
		var progress []string
		for _, t := range session.TokensOf(p) {
			progress = append(progress, fmt.Sprint(t.Progress))
		}
		opponents = append(opponents, fmt.Sprintf("player %d: %s", p, strings.Join(progress, ", ")))
	}

	data := struct {
		Player     int
		Players    int
		PathLength int
		Die        int
		Candidates []promptCandidate
		Opponents  []string
	}{
		Player:     player,
		Players:    session.Config.NumPlayers,
		PathLength: session.PathLen(player),
		Die:        session.Turn.LastDie,
		Candidates: candidates,
		Opponents:  opponents,
	}

	var buf bytes.Buffer
	if err := chooseTokenTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// parseChoice reads the YAML answer, tolerating a markdown fence around it.
func parseChoice(text string, moves []engine.Move) (Choice, error) {
	cleanYAML := strings.TrimSpace(text)
	cleanYAML = strings.TrimPrefix(cleanYAML, "```yaml")
	cleanYAML = strings.TrimPrefix(cleanYAML, "```")
	cleanYAML = strings.TrimSuffix(cleanYAML, "```")

	var raw struct {
		Token  *int   `yaml:"token"`
		Reason string `yaml:"reason"`
	}
	if err := yaml.Unmarshal([]byte(cleanYAML), &raw); err != nil {
		return Choice{}, fmt.Errorf("failed to parse choice YAML: %v\nOutput was: %s", err, cleanYAML)
	}
	if raw.Token == nil {
		return Choice{}, fmt.Errorf("choice has no token\nOutput was: %s", cleanYAML)
	}

	c := Choice{Token: models.TokenID(*raw.Token), Reason: strings.TrimSpace(raw.Reason)}
	if _, ok := find(moves, c.Token); !ok {
		return Choice{}, fmt.Errorf("token %d is not a candidate", c.Token)
	}
	return c, nil
}
