// Command keccaksum prints SHA-3, SHAKE and Keccak digests computed with the
// bit level sponge, and runs its known answer tests.
package main

import (
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
)

var log = logging.Logger("keccaksum")

var logLevelFlag = &cli.StringFlag{
	Name:    "loglevel",
	Usage:   "log level: debug, info, warn or error",
	Value:   "error",
	EnvVars: []string{"KECCAKSUM_LOGLEVEL"},
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "keccaksum",
		Usage: "compute and check Keccak sponge digests",
		Flags: []cli.Flag{logLevelFlag},
		Before: func(ctx *cli.Context) error {
			if err := logging.SetLogLevel("*", ctx.String(logLevelFlag.Name)); err != nil {
				return fmt.Errorf("invalid --%s: %w", logLevelFlag.Name, err)
			}
			return nil
		},
		Commands: []*cli.Command{
			hashCommand,
			selftestCommand,
			listCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
