package password

import (
	"math/rand/v2"
	"strings"

	tutorerrors "github.com/conneroisu/pass-tutor/internal/errors"
)

// Rand is the random source used for sampling. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// ErrEmptyPool is returned when a spec enables no character class.
var ErrEmptyPool = tutorerrors.NewValidationError(
	tutorerrors.ErrCodeEmptyPool,
	"no character class enabled",
)

// NewRand returns a PCG-backed generator seeded from the runtime's entropy
// source. It is not suitable for cryptographic use.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Generate builds a password of spec.Length characters, each drawn
// independently and uniformly (with replacement) from BuildPool(spec).
func Generate(spec Spec, rng Rand) (string, error) {
	pool := BuildPool(spec)
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}

	var sb strings.Builder
	sb.Grow(spec.Length)

	for i := 0; i < spec.Length; i++ {
		sb.WriteByte(pool[rng.IntN(len(pool))])
	}

	return sb.String(), nil
}
