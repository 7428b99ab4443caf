package errors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTutorErrorError(t *testing.T) {
	t.Run("code and message", func(t *testing.T) {
		err := NewValidationError(ErrCodeEmptyPool, "no character class enabled")
		assert.Equal(t, "[ERR_EMPTY_POOL] no character class enabled", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		err := ErrConsoleRead(io.EOF)
		assert.Equal(t, "[ERR_CONSOLE_READ] failed to read line: EOF", err.Error())
	})
}

func TestTutorErrorUnwrap(t *testing.T) {
	err := ErrConsoleRead(io.EOF)

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, io.EOF, errors.Unwrap(err))
}

func TestTutorErrorIs(t *testing.T) {
	a := NewIOError(ErrCodeConsoleRead, "first", io.EOF)
	b := NewIOError(ErrCodeConsoleRead, "second", nil)
	c := NewIOError(ErrCodeConsoleWrite, "third", nil)

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))

	wrapped := fmt.Errorf("drill: %w", a)
	assert.True(t, errors.Is(wrapped, b))
}

func TestWithContext(t *testing.T) {
	err := NewConfigError(ErrCodeConfigInvalid, "bad config", nil).
		WithContext("file", "tutor.yml")

	require.NotNil(t, err.Context)
	assert.Equal(t, "tutor.yml", err.Context["file"])
}

func TestClassification(t *testing.T) {
	assert.True(t, IsRecoverable(NewValidationError(ErrCodeEmptyPool, "x")))
	assert.False(t, IsRecoverable(ErrConsoleRead(io.EOF)))
	assert.False(t, IsRecoverable(errors.New("plain")))

	assert.True(t, IsIOError(fmt.Errorf("wrapped: %w", ErrConsoleWrite(io.ErrClosedPipe))))
	assert.False(t, IsIOError(NewConfigError(ErrCodeConfigInvalid, "x", nil)))
}

type recordingLogger struct {
	errors []string
	warns  []string
}

func (r *recordingLogger) Error(_ context.Context, _ error, msg string, _ ...interface{}) {
	r.errors = append(r.errors, msg)
}

func (r *recordingLogger) Warn(_ context.Context, _ error, msg string, _ ...interface{}) {
	r.warns = append(r.warns, msg)
}

func TestErrorHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("recoverable errors are warnings", func(t *testing.T) {
		logger := &recordingLogger{}
		NewErrorHandler(logger).Handle(ctx, NewValidationError(ErrCodeEmptyPool, "x"))

		assert.Equal(t, []string{"Recoverable error occurred"}, logger.warns)
		assert.Empty(t, logger.errors)
	})

	t.Run("unrecoverable validation errors are errors", func(t *testing.T) {
		logger := &recordingLogger{}
		err := NewValidationError(ErrCodeEmptyPool, "x")
		err.Recoverable = false
		NewErrorHandler(logger).Handle(ctx, fmt.Errorf("session: %w", err))

		assert.Equal(t, []string{"Error occurred"}, logger.errors)
		assert.Empty(t, logger.warns)
	})

	t.Run("io errors are errors", func(t *testing.T) {
		logger := &recordingLogger{}
		NewErrorHandler(logger).Handle(ctx, ErrConsoleRead(io.EOF))

		assert.Equal(t, []string{"Error occurred"}, logger.errors)
		assert.Empty(t, logger.warns)
	})

	t.Run("generic errors are errors", func(t *testing.T) {
		logger := &recordingLogger{}
		NewErrorHandler(logger).Handle(ctx, errors.New("boom"))

		assert.Equal(t, []string{"Unhandled error occurred"}, logger.errors)
	})

	t.Run("cancellation and nil are ignored", func(t *testing.T) {
		logger := &recordingLogger{}
		h := NewErrorHandler(logger)
		h.Handle(ctx, nil)
		h.Handle(ctx, context.Canceled)

		assert.Empty(t, logger.errors)
		assert.Empty(t, logger.warns)
	})
}
