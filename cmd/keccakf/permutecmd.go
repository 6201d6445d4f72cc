package main

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	keccak "github.com/Giulio2002/keccakf"
)

var (
	permuteCommand = &cli.Command{
		Name:      "permute",
		Usage:     "Applies the permutation to a hex-encoded 200-byte state",
		ArgsUsage: "[state]",
		Action:    permute,
		Flags:     []cli.Flag{roundsFlag, matrixFlag},
	}

	roundsFlag = &cli.IntFlag{
		Name:  "rounds",
		Usage: "number of final rounds to apply (Keccak-p[1600, n])",
		Value: keccak.Rounds,
	}
	matrixFlag = &cli.BoolFlag{
		Name:  "matrix",
		Usage: "print lanes as a 5x5 matrix indexed [x][y] instead of bytes",
	}
)

func permute(ctx *cli.Context) error {
	s, err := stateArg(ctx)
	if err != nil {
		return err
	}
	rounds := ctx.Int(roundsFlag.Name)
	if rounds < 0 || rounds > keccak.Rounds {
		return errors.Errorf("rounds must be in [0, %d], got %d", keccak.Rounds, rounds)
	}

	out := keccak.PermuteRounds(s, rounds)
	logrus.WithField("rounds", rounds).Info("permuted state")

	if ctx.Bool(matrixFlag.Name) {
		m := out.Matrix()
		for x := range m {
			for y := range m[x] {
				fmt.Fprintf(ctx.App.Writer, "[%d][%d] 0x%016x\n", x, y, m[x][y])
			}
		}
		return nil
	}
	b := out.Bytes()
	fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(b[:]))
	return nil
}
