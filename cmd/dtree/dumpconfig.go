package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"dtree/config"
	"dtree/state"
)

func dumpConfig(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("dumpconfig")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		kind = "active"
		data []byte
		err  error
	)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get %s configuration: %w", kind, err)
	}

	dst := cmd.Args().First()
	if len(dst) == 0 {
		log.Debug("Writing configuration", zap.String("kind", kind), zap.String("to", "STDOUT"))
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("unable to write configuration: %w", err)
		}
		return nil
	}

	log.Info("Writing configuration", zap.String("kind", kind), zap.String("to", dst))
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write configuration to '%s': %w", dst, err)
	}
	return nil
}
