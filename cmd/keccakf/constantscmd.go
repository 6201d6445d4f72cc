package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	keccak "github.com/Giulio2002/keccakf"
)

var constantsCommand = &cli.Command{
	Name:   "constants",
	Usage:  "Prints the round constants and rotation offsets",
	Action: constants,
}

func constants(ctx *cli.Context) error {
	w := ctx.App.Writer
	for i, rc := range keccak.RoundConstants() {
		fmt.Fprintf(w, "rc[%02d] = 0x%016X\n", i, rc)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			fmt.Fprintf(w, "rho[%d][%d] = %d\n", x, y, keccak.RotationOffset(x, y))
		}
	}
	return nil
}
