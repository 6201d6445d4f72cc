package main

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	keccak "github.com/Giulio2002/keccakf"
	"github.com/Giulio2002/keccakf/internal/vectors"
)

var (
	traceCommand = &cli.Command{
		Name:      "trace",
		Usage:     "Steps the sequencer through one permutation and prints every step",
		ArgsUsage: "[state]",
		Action:    trace,
		Flags:     []cli.Flag{maxStepsFlag},
	}

	maxStepsFlag = &cli.IntFlag{
		Name:  "max-steps",
		Usage: "step budget before the run is treated as hung (overrides Trace.MaxSteps)",
	}
)

func trace(ctx *cli.Context) error {
	cfg := loadConfig(ctx)
	if ctx.IsSet(maxStepsFlag.Name) {
		cfg.Trace.MaxSteps = ctx.Int(maxStepsFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s, err := stateArg(ctx)
	if err != nil {
		return err
	}

	var seq keccak.Sequencer
	res, err := vectors.Trace(&seq, s, cfg.Trace.MaxSteps, func(r vectors.Record) {
		logrus.WithFields(logrus.Fields{
			"step":  r.Step,
			"phase": r.Phase,
			"round": r.Round,
			"rc":    r.RC,
			"ready": r.Ready,
		}).Debug("sequencer step")
	})
	if err != nil {
		logrus.WithField("maxSteps", cfg.Trace.MaxSteps).Warn("trace failed")
		return err
	}
	logrus.WithField("steps", res.Steps).Info("sequencer ready")

	enc := json.NewEncoder(ctx.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
