package engine

import "math/rand/v2"

// Dice yields die faces in [1,6].
type Dice interface {
	Roll() int
}

// RandomDice draws uniformly from a PCG source.
type RandomDice struct {
	rng *rand.Rand
}

// NewRandomDice returns seeded dice; seed 0 picks a random seed.
func NewRandomDice(seed uint64) *RandomDice {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &RandomDice{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (d *RandomDice) Roll() int {
	return d.rng.IntN(6) + 1
}

// ScriptedDice replays a fixed list of faces and then repeats the last one.
type ScriptedDice struct {
	faces []int
	next  int
}

func NewScriptedDice(faces ...int) *ScriptedDice {
	return &ScriptedDice{faces: faces}
}

func (d *ScriptedDice) Roll() int {
	if len(d.faces) == 0 {
		return 1
	}
	if d.next >= len(d.faces) {
		return d.faces[len(d.faces)-1]
	}
	v := d.faces[d.next]
	d.next++
	return v
}
