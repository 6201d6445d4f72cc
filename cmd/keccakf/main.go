// Command keccakf runs the Keccak-f[1600] permutation, traces the stepped sequencer and
// generates golden vectors for hardware testbenches.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	keccak "github.com/Giulio2002/keccakf"
	"github.com/Giulio2002/keccakf/internal/config"
)

const configKey = "config"

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log.level",
		Usage: "log level (trace, debug, info, warn, error)",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "keccakf",
		Usage: "Keccak-f[1600] permutation and sequencer co-simulation tool",
		Flags: []cli.Flag{configFlag, logLevelFlag},
		Commands: []*cli.Command{
			permuteCommand,
			traceCommand,
			vectorsCommand,
			constantsCommand,
		},
		Before: setup,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration, applies global flag overrides and configures logging.
func setup(ctx *cli.Context) error {
	cfg := config.Default()
	if path := ctx.String(configFlag.Name); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	if ctx.IsSet(logLevelFlag.Name) {
		cfg.Log.Level = ctx.String(logLevelFlag.Name)
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	var w io.Writer = os.Stderr
	if ctx.App.ErrWriter != nil {
		w = ctx.App.ErrWriter
	}
	logrus.SetLevel(level)
	logrus.SetOutput(w)
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]interface{})
	}
	ctx.App.Metadata[configKey] = cfg
	return nil
}

func loadConfig(ctx *cli.Context) config.Config {
	if cfg, ok := ctx.App.Metadata[configKey].(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// stateArg parses the optional hex-encoded 200-byte state argument. No argument is the zero state.
func stateArg(ctx *cli.Context) (keccak.State, error) {
	switch ctx.NArg() {
	case 0:
		return keccak.State{}, nil
	case 1:
	default:
		return keccak.State{}, errors.New("expected at most one state argument")
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(ctx.Args().First(), "0x"))
	if err != nil {
		return keccak.State{}, errors.Wrap(err, "decoding state")
	}
	return keccak.ParseState(raw)
}
