package picker

import "math/rand"

// Shuffler abstracts the randomness behind the daily pick so tests can
// inject a deterministic order. Shuffle must be a uniform permutation.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// randShuffler is the default, a uniform Fisher-Yates shuffle. Runs are
// intentionally non-reproducible; the goal is decorrelation across days.
type randShuffler struct{}

func (randShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}
