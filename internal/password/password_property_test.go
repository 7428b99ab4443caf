//go:build property
// +build property

package password

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genSpec() gopter.Gen {
	return gopter.CombineGens(
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.IntRange(0, 256),
	).Map(func(values []interface{}) Spec {
		return NewSpec(
			values[0].(bool),
			values[1].(bool),
			values[2].(bool),
			values[3].(bool),
			values[4].(int),
		)
	})
}

// TestPasswordProperties validates generation invariants across random specs
func TestPasswordProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("generated length equals spec length", prop.ForAll(
		func(spec Spec, seed uint64) bool {
			pass, err := Generate(spec, rand.New(rand.NewPCG(seed, seed)))
			return err == nil && len(pass) == spec.Length
		},
		genSpec(),
		gen.UInt64(),
	))

	properties.Property("every character belongs to the pool", prop.ForAll(
		func(spec Spec, seed uint64) bool {
			pool := BuildPool(spec)
			pass, err := Generate(spec, rand.New(rand.NewPCG(seed, ^seed)))
			if err != nil {
				return false
			}
			for i := 0; i < len(pass); i++ {
				if !pool.Contains(pass[i]) {
					return false
				}
			}
			return true
		},
		genSpec(),
		gen.UInt64(),
	))

	properties.Property("pool depends only on class flags", prop.ForAll(
		func(spec Spec, otherLength int) bool {
			other := spec
			other.Length = otherLength
			return bytes.Equal(BuildPool(spec), BuildPool(other))
		},
		genSpec(),
		gen.IntRange(0, 1024),
	))

	properties.Property("normalized specs always have a class", prop.ForAll(
		func(spec Spec) bool {
			return spec.HasClass() && len(BuildPool(spec)) > 0
		},
		genSpec(),
	))

	properties.TestingRun(t)
}
