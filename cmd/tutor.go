package cmd

import (
	"context"
	"errors"

	"github.com/conneroisu/pass-tutor/internal/config"
	"github.com/conneroisu/pass-tutor/internal/console"
	tutorerrors "github.com/conneroisu/pass-tutor/internal/errors"
	"github.com/conneroisu/pass-tutor/internal/logging"
	"github.com/conneroisu/pass-tutor/internal/password"
	"github.com/conneroisu/pass-tutor/internal/tutor"
	"github.com/spf13/cobra"
)

func runTutor(cmd *cobra.Command, cfgFile string) error {
	// Past flag parsing, failures are not usage errors.
	cmd.SilenceUsage = true

	v, err := config.NewViper(cmd.Flags(), cfgFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	loggerConfig := cfg.LoggerConfig()
	loggerConfig.Output = cmd.ErrOrStderr()
	logger := logging.NewLogger(loggerConfig)

	// From here on the error handler reports failures on stderr.
	cmd.SilenceErrors = true

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout())

	err = runSession(ctx, cfg, con, password.NewRand(), logger)
	if errors.Is(err, context.Canceled) {
		con.Println()
		return nil
	}

	tutorerrors.NewErrorHandler(logger).Handle(ctx, err)
	return err
}

// runSession chooses a password and drills it. It only returns on
// cancellation or a console failure.
func runSession(ctx context.Context, cfg *config.Config, con *console.Console, rng password.Rand, logger logging.Logger) error {
	spec := cfg.PasswordSpec()
	logger.Info(ctx, "Starting session",
		"symbols", spec.Symbols,
		"numbers", spec.Numbers,
		"upper", spec.Upper,
		"lower", spec.Lower,
		"length", spec.Length,
		"pool_size", len(password.BuildPool(spec)))

	pass, err := tutor.ChoosePassword(ctx, con, spec, rng, logger)
	if err != nil {
		return err
	}

	trainer := tutor.NewTrainer(con, pass,
		tutor.WithPracticeRounds(cfg.PracticeRounds),
		tutor.WithHiddenInput(cfg.HideInput),
		tutor.WithLogger(logger),
	)

	return trainer.Run(ctx)
}
