// Package console provides the line-oriented prompt/read loop the tutor runs
// on: prompts go to an io.Writer, answers are read one line at a time from an
// io.Reader.
//
// Reads honour context cancellation. Each read runs on a helper goroutine so
// an interrupt can end a blocked prompt; at most one read is ever in flight,
// and a read abandoned by cancellation is picked up by the next call instead
// of racing with it.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tutorerrors "github.com/conneroisu/pass-tutor/internal/errors"
	"golang.org/x/term"
	"golang.org/x/text/cases"
)

// ClearScreen is the ANSI sequence that erases the visible terminal.
const ClearScreen = "\x1b[2J"

// Answers accepted as "yes" by Confirm, compared after case folding.
const (
	YesShort = "y"
	YesLong  = "yes"
)

type readResult struct {
	line string
	err  error
}

// Console reads answers from in and writes prompts to out.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	fd      int
	pending chan readResult
	werr    error
}

// New returns a Console over in and out. When in is a terminal, hidden
// reads are available through ReadSecret.
func New(in io.Reader, out io.Writer) *Console {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}

	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
	}
}

// IsTerminal reports whether input comes from an interactive terminal.
func (c *Console) IsTerminal() bool {
	return c.fd >= 0 && term.IsTerminal(c.fd)
}

// Println writes a line. Write failures are sticky and surface on the next
// read.
func (c *Console) Println(a ...interface{}) {
	if c.werr != nil {
		return
	}
	if _, err := fmt.Fprintln(c.out, a...); err != nil {
		c.werr = tutorerrors.ErrConsoleWrite(err)
	}
}

// Printf writes formatted output without a trailing newline.
func (c *Console) Printf(format string, a ...interface{}) {
	if c.werr != nil {
		return
	}
	if _, err := fmt.Fprintf(c.out, format, a...); err != nil {
		c.werr = tutorerrors.ErrConsoleWrite(err)
	}
}

// Clear erases the visible screen.
func (c *Console) Clear() {
	c.Printf("%s", ClearScreen)
}

// ReadLine blocks until a full line is read and returns it without the line
// terminator. End of input before any character is an error.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if c.werr != nil {
		return "", c.werr
	}

	if c.pending == nil {
		ch := make(chan readResult, 1)
		c.pending = ch
		go func() {
			line, err := c.in.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
	}

	return c.await(ctx)
}

// ReadSecret reads a line without echoing it when input is a terminal, and
// falls back to ReadLine otherwise. The terminal state is put back even when
// ctx ends while the read is still blocked.
func (c *Console) ReadSecret(ctx context.Context) (string, error) {
	if c.pending != nil || !c.IsTerminal() || c.in.Buffered() > 0 {
		return c.ReadLine(ctx)
	}
	if c.werr != nil {
		return "", c.werr
	}

	state, err := term.GetState(c.fd)
	if err != nil {
		return "", tutorerrors.ErrConsoleRead(err)
	}

	ch := make(chan readResult, 1)
	c.pending = ch
	go func() {
		b, err := term.ReadPassword(c.fd)
		ch <- readResult{line: string(b) + "\n", err: err}
	}()

	line, err := c.awaitSecret(ctx, func() error {
		return term.Restore(c.fd, state)
	})
	if err == nil {
		// The terminal swallowed the user's newline.
		c.Println()
	}
	return line, err
}

// awaitSecret waits for a hidden read. ReadPassword only restores echo once
// it returns, so when ctx ends first restore is called here instead.
func (c *Console) awaitSecret(ctx context.Context, restore func() error) (string, error) {
	line, err := c.await(ctx)
	if err == nil || ctx.Err() == nil || !errors.Is(err, ctx.Err()) {
		return line, err
	}

	if rerr := restore(); rerr != nil {
		return "", tutorerrors.NewIOError(tutorerrors.ErrCodeConsoleRead, "failed to restore terminal", rerr)
	}
	return "", err
}

func (c *Console) await(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-c.pending:
		c.pending = nil

		line := strings.TrimRight(res.line, "\r\n")
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && res.line != "" {
				return line, nil
			}
			return "", tutorerrors.ErrConsoleRead(res.err)
		}
		return line, nil
	}
}

// Confirm prints prompt on its own line and reports whether the answer is
// affirmative. Anything other than y/yes, including an empty line, is "no".
func (c *Console) Confirm(ctx context.Context, prompt string) (bool, error) {
	c.Println(prompt)

	answer, err := c.ReadLine(ctx)
	if err != nil {
		return false, err
	}

	return IsAffirmative(answer), nil
}

// IsAffirmative reports whether answer is a case-insensitive y or yes.
func IsAffirmative(answer string) bool {
	folded := cases.Fold().String(strings.TrimSpace(answer))
	return folded == YesShort || folded == YesLong
}
