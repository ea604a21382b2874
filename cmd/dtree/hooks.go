package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"runtime/debug"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dtree/config"
	"dtree/misc"
	"dtree/state"
)

// beforeCommand loads configuration, prepares debug report and logging.
// Nothing is done when there is no command to run.
func beforeCommand(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.NArg() == 0 {
		return ctx, nil
	}

	var (
		env  = state.EnvFromContext(ctx)
		file = cmd.String("config")
		err  error
	)

	if env.Cfg, err = config.LoadConfiguration(file); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}

	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		if len(file) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(path.Join("config", filepath.Base(file)), data)
			}
		}
	}

	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started",
		zap.Strings("args", os.Args),
		zap.String("ver", misc.GetVersion()),
		zap.String("hash", misc.GetGitHash()),
		zap.String("runtime", runtime.Version()))
	switch {
	case env.Rpt != nil:
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	case len(file) == 0:
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

// afterCommand flushes logs and closes debug report. Errors from here on are
// reported to stderr only.
func afterCommand(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}
	env.RestoreStdLog()

	if er := env.Rpt.Close(); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
	}

	if env.Cfg == nil || len(env.Cfg.Logging.FileLogger.Destination) == 0 {
		return err
	}
	// empty crash output is of no interest
	debug.SetCrashOutput(nil, debug.CrashOptions{})
	name := env.Cfg.Logging.PanicLogName()
	if fi, er := os.Stat(name); er == nil && fi.Size() == 0 {
		if er := os.Remove(name); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log '%s': %w", name, er))
		}
	}
	return err
}

// errLogged is set when final error went to the log, so main does not repeat
// it on stderr.
var errLogged bool

// onExitError runs before afterCommand while log is still open. Commands
// return plain errors, cli.Exit is not used.
func onExitError(ctx context.Context, _ *cli.Command, err error) {
	if log := state.EnvFromContext(ctx).Log; log != nil {
		log.Error("Program ended with error", zap.Error(err))
		errLogged = true
	}
}

func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func onCommandNotFound(ctx context.Context, _ *cli.Command, name string) {
	if log := state.EnvFromContext(ctx).Log; log != nil {
		log.Warn("Unknown command, nothing to do", zap.String("command", name))
	}
}
