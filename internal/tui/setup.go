package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Alucard666haku/front-end-ludo-app/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldPlayers = iota
	fieldPawns
	fieldPath
	fieldCount
)

var fieldLabels = [fieldCount]string{"Players (2-8)", "Pawns per player", "Path length"}

// setupForm collects the three values a game is configured with.
type setupForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    error
}

func newSetupForm(cfg *config.Config) setupForm {
	var f setupForm
	values := [fieldCount]int{cfg.NumPlayers, cfg.PawnsPerPlayer, cfg.PathLength}
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 3
		ti.Width = 6
		ti.Validate = digitsOnly
		ti.SetValue(strconv.Itoa(values[i]))
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("%q is not a number", s)
		}
	}
	return nil
}

func (f *setupForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

func (f setupForm) update(msg tea.Msg) (setupForm, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "down":
			f.move(1)
			return f, nil
		case "shift+tab", "up":
			f.move(-1)
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// apply copies the form values onto a copy of base and validates the result.
func (f setupForm) apply(base *config.Config) (*config.Config, error) {
	cfg := *base
	targets := [fieldCount]*int{&cfg.NumPlayers, &cfg.PawnsPerPlayer, &cfg.PathLength}
	for i, in := range f.inputs {
		v, err := strconv.Atoi(strings.TrimSpace(in.Value()))
		if err != nil {
			return nil, fmt.Errorf("%s: enter a number", fieldLabels[i])
		}
		*targets[i] = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (f setupForm) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("LUDO") + "\n\n")
	b.WriteString("Configure the board:\n\n")
	for i, in := range f.inputs {
		label := blurredLabel
		if i == f.focus {
			label = focusedLabel
		}
		b.WriteString(fmt.Sprintf("%s %s\n", label.Width(20).Render(fieldLabels[i]), in.View()))
	}
	if f.err != nil {
		b.WriteString("\n" + errorStyle.Render(f.err.Error()) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab: next field, enter: start, esc: quit"))
	return b.String()
}
