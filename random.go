package strategybench

import (
	"math/rand"

	randomdata "github.com/Pallinder/go-randomdata"
)

// BoolSource supplies the unbiased, independent coin flips the random
// factories draw from.
type BoolSource interface {
	Bool() bool
}

// source is a deterministic BoolSource over a seeded generator.
// Not safe for concurrent use; give each goroutine its own.
type source struct {
	r *rand.Rand
}

// NewSource returns a BoolSource with a fixed seed, for reproducible
// populations in tests and benchmarks.
func NewSource(seed int64) BoolSource {
	return &source{r: rand.New(rand.NewSource(seed))}
}

func (s *source) Bool() bool {
	return s.r.Int63()&1 == 1
}

type systemSource struct{}

// SystemSource returns the process-wide unseeded source.
func SystemSource() BoolSource {
	return systemSource{}
}

func (systemSource) Bool() bool {
	return randomdata.Boolean()
}
