// Package internal contains the implementation packages for pass-tutor.
//
// # Package Organization
//
//   - password: character pools and uniform sampling
//   - tutor: accept/regenerate loop and the drill trainer
//   - console: line-oriented prompts with cancellable reads
//   - config: flag and config-file binding through viper
//   - errors: structured error taxonomy
//   - logging: slog-backed structured diagnostics on stderr
//   - version: build information
//
// # Control Flow
//
// Flags are decoded into a password.Spec, tutor.ChoosePassword samples
// candidates until one is accepted, and tutor.Trainer drills it until the
// context is cancelled.
package internal
