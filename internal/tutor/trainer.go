package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/conneroisu/pass-tutor/internal/logging"
)

// DefaultPracticeRounds is the number of viewings before each recall test.
const DefaultPracticeRounds = 3

// RecallPrompt is shown on the cleared screen before a recall test.
const RecallPrompt = "Now try and remember your password!"

// Stats counts completed recall tests.
type Stats struct {
	Cycles    int
	Successes int
}

// Trainer drills a single accepted password.
type Trainer struct {
	console   Console
	password  string
	rounds    int
	hideInput bool
	logger    logging.Logger
	stats     Stats
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithPracticeRounds sets the viewings per cycle. Values below one keep the
// default.
func WithPracticeRounds(n int) Option {
	return func(t *Trainer) {
		if n >= 1 {
			t.rounds = n
		}
	}
}

// WithHiddenInput reads recall attempts without echo when possible.
func WithHiddenInput(hide bool) Option {
	return func(t *Trainer) {
		t.hideInput = hide
	}
}

// WithLogger attaches a logger.
func WithLogger(logger logging.Logger) Option {
	return func(t *Trainer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTrainer returns a Trainer for pass.
func NewTrainer(c Console, pass string, opts ...Option) *Trainer {
	t := &Trainer{
		console:  c,
		password: pass,
		rounds:   DefaultPracticeRounds,
		logger:   logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.WithComponent("trainer")

	return t
}

// Run repeats practice-then-test cycles until ctx is done or the console
// fails. The outcome of a test never ends the loop.
func (t *Trainer) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		t.logger.Debug(ctx, "Starting drill cycle", "cycle", t.stats.Cycles+1)

		if err := t.Practice(ctx); err != nil {
			return err
		}
		if _, err := t.Test(ctx); err != nil {
			return err
		}
	}
}

// Practice shows the password once per round, waiting for a line after each
// viewing. The lines read are ignored.
func (t *Trainer) Practice(ctx context.Context) error {
	t.console.Println(fmt.Sprintf("Let's practice your password %d times", t.rounds))

	for i := 1; i <= t.rounds; i++ {
		t.console.Println()
		t.console.Println(fmt.Sprintf("Practice %d/%d", i, t.rounds))
		t.console.Println("Password:", t.password)

		if _, err := t.console.ReadLine(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Test clears the screen, reads one attempt and prints the outcome.
func (t *Trainer) Test(ctx context.Context) (Outcome, error) {
	t.console.Clear()
	t.console.Println(RecallPrompt)

	read := t.console.ReadLine
	if t.hideInput {
		read = t.console.ReadSecret
	}

	attempt, err := read(ctx)
	if err != nil {
		return OutcomeMismatch, err
	}

	outcome := Compare(t.password, strings.TrimSpace(attempt))
	t.console.Println(outcome.Message())

	t.stats.Cycles++
	if outcome == OutcomeMatch {
		t.stats.Successes++
	}
	t.logger.Debug(ctx, "Recall tested",
		"outcome", outcome.String(),
		"cycle", t.stats.Cycles,
		"successes", t.stats.Successes)

	return outcome, nil
}

// Stats returns the counts so far.
func (t *Trainer) Stats() Stats {
	return t.stats
}
