package engine

import (
	"testing"

	"github.com/Alucard666haku/front-end-ludo-app/internal/board"
	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	paths, err := board.New([]int{5, 1, 0})
	require.NoError(t, err)

	cases := []struct {
		name    string
		token   models.Token
		die     int
		legal   bool
		to      int
		arrives bool
	}{
		{"home without six", models.Token{Owner: 0}, 5, false, 0, false},
		{"home with six", models.Token{Owner: 0}, 6, true, 1, false},
		{"home with six onto single cell path", models.Token{Owner: 1}, 6, true, 1, true},
		{"empty path", models.Token{Owner: 2}, 6, false, 0, false},
		{"advance", models.Token{Owner: 0, InPlay: true, Progress: 1}, 3, true, 4, false},
		{"exact goal", models.Token{Owner: 0, InPlay: true, Progress: 2}, 3, true, 5, true},
		{"overshoot clamps", models.Token{Owner: 0, InPlay: true, Progress: 4}, 5, true, 5, true},
		{"parked on goal", models.Token{Owner: 0, InPlay: true, Progress: 5}, 2, true, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Resolve(tc.token, tc.die, paths)
			assert.Equal(t, tc.legal, m.Legal)
			assert.Equal(t, tc.to, m.To.Order)
			assert.Equal(t, tc.arrives, m.Arrives)
			if tc.legal {
				assert.Equal(t, tc.token.Owner, m.To.PlayerIndex)
				assert.Equal(t, tc.token.Progress, m.From.Order)
			}
		})
	}
}

func TestResolveHomeOrigin(t *testing.T) {
	paths, err := board.NewUniform(2, 5)
	require.NoError(t, err)

	m := Resolve(models.Token{ID: 3, Owner: 1}, 6, paths)
	assert.Equal(t, models.TokenID(3), m.Token)
	assert.True(t, m.From.IsHome())
	assert.Equal(t, "p1:home", m.From.ID())
	assert.Equal(t, "p1:1", m.To.ID())
}
