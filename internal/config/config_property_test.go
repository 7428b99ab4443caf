//go:build property
// +build property

package config

import (
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/conneroisu/pass-tutor/internal/password"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestLengthParsingProperties validates the lenient --length handling
func TestLengthParsingProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("decimal lengths round-trip", prop.ForAll(
		func(n uint32) bool {
			return ParseLength(strconv.FormatUint(uint64(n), 10)) == int(n)
		},
		gen.UInt32(),
	))

	properties.Property("text containing a non-digit falls back to the default", prop.ForAll(
		func(s string) bool {
			if !strings.ContainsFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) {
				return true
			}
			return ParseLength(s) == password.DefaultLength
		},
		gen.AnyString(),
	))

	properties.Property("class flags never produce an empty spec", prop.ForAll(
		func(symbols, numbers, upper, lower bool) bool {
			cfg := &Config{Symbols: symbols, Numbers: numbers, Upper: upper, Lower: lower, Length: "12"}
			return cfg.PasswordSpec().HasClass()
		},
		gen.Bool(), gen.Bool(), gen.Bool(), gen.Bool(),
	))

	properties.TestingRun(t)
}
