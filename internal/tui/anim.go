package tui

import (
	"math"
	"time"

	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	frameDuration = time.Second / 30
	faceDuration  = 0.1 // seconds each die face stays up
	moveDuration  = 0.8
	shakeDuration = 0.3
	cheerDuration = 1.0
)

type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameDuration, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func frameSeconds() float32 {
	return float32(frameDuration.Seconds())
}

// rollAnim flips through the die faces at a constant pace.
type rollAnim struct {
	faces []int
	tween *gween.Tween
	face  int
}

func newRollAnim(faces []int) *rollAnim {
	n := float32(len(faces))
	return &rollAnim{
		faces: faces,
		tween: gween.New(0, n, n*faceDuration, ease.Linear),
		face:  faces[0],
	}
}

func (a *rollAnim) update(dt float32) bool {
	v, done := a.tween.Update(dt)
	i := int(v)
	if i >= len(a.faces) || done {
		i = len(a.faces) - 1
	}
	a.face = a.faces[i]
	return done
}

// moveAnim hops a token from one cell order to another, easing in and out.
type moveAnim struct {
	id       models.TokenID
	from, to int
	tween    *gween.Tween
	pos      float32
}

func newMoveAnim(id models.TokenID, from, to models.PathCell) *moveAnim {
	return &moveAnim{
		id:    id,
		from:  from.Order,
		to:    to.Order,
		tween: gween.New(float32(from.Order), float32(to.Order), moveDuration, ease.InOutQuad),
		pos:   float32(from.Order),
	}
}

func (a *moveAnim) update(dt float32) bool {
	v, done := a.tween.Update(dt)
	a.pos = v
	return done
}

// cell is the path order the token is drawn on right now.
func (a *moveAnim) cell() int {
	return int(math.Round(float64(a.pos)))
}

// timer is a one-shot gween tween used for flashes that only need an end.
type timer struct {
	tween *gween.Tween
}

func newTimer(seconds float32) *timer {
	return &timer{tween: gween.New(0, 1, seconds, ease.Linear)}
}

func (t *timer) update(dt float32) bool {
	_, done := t.tween.Update(dt)
	return done
}
