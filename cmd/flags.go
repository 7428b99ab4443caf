package cmd

import (
	"strconv"

	"github.com/conneroisu/pass-tutor/internal/config"
	"github.com/conneroisu/pass-tutor/internal/password"
	"github.com/conneroisu/pass-tutor/internal/tutor"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// lengthValue is a pflag.Value that accepts any text. Interpretation is left
// to config.ParseLength so that a non-numeric length falls back to the
// default instead of failing the parse. A missing value is still rejected by
// pflag.
type lengthValue struct {
	raw string
}

var _ pflag.Value = (*lengthValue)(nil)

func newLengthValue() *lengthValue {
	return &lengthValue{raw: strconv.Itoa(password.DefaultLength)}
}

func (l *lengthValue) String() string {
	return l.raw
}

func (l *lengthValue) Set(s string) error {
	l.raw = s
	return nil
}

// Type must not be "int": viper casts int-typed flags and would turn "abc"
// into 0.
func (l *lengthValue) Type() string {
	return "length"
}

// addClassFlags registers the character class switches and the length.
func addClassFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP(config.KeySymbols, "s", false, "Allow symbols in generated passwords")
	cmd.Flags().BoolP(config.KeyNumbers, "n", false, "Allow numbers in generated passwords")
	cmd.Flags().BoolP(config.KeyUpper, "U", false, "Allow upper-case letters in generated passwords")
	cmd.Flags().BoolP(config.KeyLower, "L", false, "Allow lower-case letters in generated passwords")
	cmd.Flags().VarP(newLengthValue(), config.KeyLength, "l", "Length of the password in `N` characters")
}

// addTrainingFlags registers the drill and diagnostics options.
func addTrainingFlags(cmd *cobra.Command) {
	cmd.Flags().Int(config.KeyPracticeRounds, tutor.DefaultPracticeRounds, "Viewings before each recall test")
	cmd.Flags().Bool(config.KeyHideInput, false, "Do not echo recall attempts when reading from a terminal")
	cmd.Flags().String(config.KeyLogLevel, "warn", "Diagnostics level on stderr (debug, info, warn, error)")
	cmd.Flags().String(config.KeyLogFormat, "text", "Diagnostics format (text, json)")
}
