package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/conneroisu/pass-tutor/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the pass-tutor command tree.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "pass-tutor",
		Short: "Helps you generate and learn passwords",
		Long: `pass-tutor generates a random password from the character classes you pick
and then drills you until you know it by heart.

Each drill cycle shows the password a few times, clears the screen and asks
you to type it from memory. Cycles repeat until you press Ctrl-C.

Character classes (all are used when none is given):
  -s, --symbols   punctuation
  -n, --numbers   digits
  -U, --upper     upper-case letters
  -L, --lower     lower-case letters`,
		Version: version.GetShortVersion(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTutor(cmd, cfgFile)
		},
	}

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Optional YAML file with the same keys as the flags")
	addClassFlags(rootCmd)
	addTrainingFlags(rootCmd)

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command until it finishes or the process receives
// SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand().ExecuteContext(ctx)
}
