// Package tutor runs the two interactive phases of a session: choosing a
// password and drilling it until the process is interrupted.
package tutor

import (
	"context"

	"github.com/conneroisu/pass-tutor/internal/logging"
	"github.com/conneroisu/pass-tutor/internal/password"
)

// AcceptPrompt is asked after every generated candidate.
const AcceptPrompt = "Use password? [y/N]"

// Console is the line-oriented interaction surface the tutor needs.
// *console.Console satisfies it.
type Console interface {
	Println(a ...interface{})
	Clear()
	ReadLine(ctx context.Context) (string, error)
	ReadSecret(ctx context.Context) (string, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ChoosePassword generates candidates from spec until the user accepts one
// and returns it. There is no retry limit.
func ChoosePassword(ctx context.Context, c Console, spec password.Spec, rng password.Rand, logger logging.Logger) (string, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.WithComponent("generator")

	for attempt := 1; ; attempt++ {
		candidate, err := password.Generate(spec, rng)
		if err != nil {
			return "", err
		}
		logger.Debug(ctx, "Generated candidate", "attempt", attempt, "length", len(candidate))

		c.Println("Generated password:", candidate)

		ok, err := c.Confirm(ctx, AcceptPrompt)
		if err != nil {
			return "", err
		}
		if ok {
			logger.Debug(ctx, "Candidate accepted", "attempt", attempt)
			return candidate, nil
		}
	}
}
