package engine

import (
	"math/rand/v2"

	"github.com/nedbat/stilted/lang/object"
)

// randState is the engine's per-instance pseudo-random source: rand returns
// a non-negative 31-bit integer, srand reseeds it, rrand reports the seed
// currently in effect. Rather than reproduce a Mersenne Twister bit for
// bit, Stilted uses math/rand/v2's PCG generator, so a given seed always
// yields the same sequence, but not a Mersenne Twister's.
type randState struct {
	seed int64
	r    *rand.Rand
}

func newRandState(seed int64) *randState {
	return &randState{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

func (s *randState) reseed(seed int64) {
	s.seed = seed
	s.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

func (s *randState) next() int32 {
	return int32(s.r.Uint32() & 0x7fffffff)
}

func opRand(e *Engine) error {
	e.Push(object.Int(e.rng.next()))
	return nil
}

func opSrand(e *Engine) error {
	n, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagInt), n); err != nil {
		return err
	}
	e.rng.reseed(int64(n.Int))
	return nil
}

func opRrand(e *Engine) error {
	e.Push(object.Int(int32(e.rng.seed)))
	return nil
}
