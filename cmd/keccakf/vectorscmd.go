package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/Giulio2002/keccakf/internal/vectors"
)

var (
	vectorsCommand = &cli.Command{
		Name:  "vectors",
		Usage: "Generates or checks golden input/output vectors",
		Subcommands: []*cli.Command{
			vectorsGenerateCommand,
			vectorsCheckCommand,
		},
	}
	vectorsGenerateCommand = &cli.Command{
		Name:   "generate",
		Usage:  "Writes the zero vector and seeded random vectors",
		Action: generateVectors,
		Flags:  []cli.Flag{seedFlag, countFlag, workersFlag, formatFlag, outFlag},
	}
	vectorsCheckCommand = &cli.Command{
		Name:      "check",
		Usage:     "Verifies a vector file against the permutation",
		ArgsUsage: "file",
		Action:    checkVectors,
		Flags:     []cli.Flag{formatFlag},
	}
)

var (
	seedFlag = &cli.StringFlag{
		Name:  "seed",
		Usage: "SHAKE128 seed for random states (overrides Vectors.Seed)",
	}
	countFlag = &cli.IntFlag{
		Name:  "count",
		Usage: "number of random vectors (overrides Vectors.Count)",
	}
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "parallel permutations (overrides Vectors.Workers)",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "json or toml (overrides Vectors.Format)",
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "output file, standard output if empty",
	}
)

func generateVectors(ctx *cli.Context) error {
	cfg := loadConfig(ctx)
	if ctx.IsSet(seedFlag.Name) {
		cfg.Vectors.Seed = ctx.String(seedFlag.Name)
	}
	if ctx.IsSet(countFlag.Name) {
		cfg.Vectors.Count = ctx.Int(countFlag.Name)
	}
	if ctx.IsSet(workersFlag.Name) {
		cfg.Vectors.Workers = ctx.Int(workersFlag.Name)
	}
	if ctx.IsSet(formatFlag.Name) {
		cfg.Vectors.Format = ctx.String(formatFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	vs, err := vectors.Generate(ctx.Context, cfg.Vectors)
	if err != nil {
		return err
	}

	if err := writeVectors(ctx.App.Writer, ctx.String(outFlag.Name), cfg.Vectors.Format, vs); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"count":  len(vs),
		"seed":   cfg.Vectors.Seed,
		"format": cfg.Vectors.Format,
	}).Info("generated vectors")
	return nil
}

// writeVectors encodes vs to the file at path, or to stdout if path is empty.
func writeVectors(stdout io.Writer, path, format string, vs []vectors.Vector) error {
	if path == "" {
		return errors.Wrap(vectors.Encode(stdout, format, vs), "writing vectors")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating vector file")
	}
	if err := vectors.Encode(f, format, vs); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "writing vectors")
	}
	return errors.Wrap(f.Close(), "closing vector file")
}

func checkVectors(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("need vector file as argument")
	}
	format := loadConfig(ctx).Vectors.Format
	if ctx.IsSet(formatFlag.Name) {
		format = ctx.String(formatFlag.Name)
	}

	f, err := os.Open(ctx.Args().First())
	if err != nil {
		return errors.Wrap(err, "opening vector file")
	}
	defer f.Close()

	vs, err := vectors.Decode(f, format)
	if err != nil {
		return err
	}
	if err := vectors.Check(vs); err != nil {
		return err
	}
	logrus.WithField("count", len(vs)).Info("vectors verified")
	return nil
}
