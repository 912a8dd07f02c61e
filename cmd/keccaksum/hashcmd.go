package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	keccak "github.com/Giulio2002/keccakp"
	"github.com/multiformats/go-multihash"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var (
	hashCommand = &cli.Command{
		Name:      "hash",
		Usage:     "Prints the digest of each file, or of stdin",
		ArgsUsage: "[FILE...]",
		Action:    hashFiles,
		Flags:     []cli.Flag{algoFlag, bitsFlag, multihashFlag, jobsFlag},
	}

	algoFlag = &cli.StringFlag{
		Name:    "algo",
		Aliases: []string{"a"},
		Usage:   "variant to use, see the list command",
		Value:   keccak.SHA3_256.String(),
		EnvVars: []string{"KECCAKSUM_ALGO"},
	}
	bitsFlag = &cli.IntFlag{
		Name:    "bits",
		Usage:   "output length in bits for shake and rawshake (0 means the variant's default)",
		EnvVars: []string{"KECCAKSUM_BITS"},
	}
	multihashFlag = &cli.BoolFlag{
		Name:  "multihash",
		Usage: "print base58 multihashes instead of hex",
	}
	jobsFlag = &cli.IntFlag{
		Name:    "jobs",
		Aliases: []string{"j"},
		Usage:   "number of files hashed concurrently",
		Value:   runtime.NumCPU(),
		EnvVars: []string{"KECCAKSUM_JOBS"},
	}
)

type hashConfig struct {
	variant   keccak.Variant
	bits      int
	multihash bool
}

func hashFiles(ctx *cli.Context) error {
	variant, err := keccak.ParseVariant(ctx.String(algoFlag.Name))
	if err != nil {
		return err
	}
	cfg := hashConfig{
		variant:   variant,
		bits:      ctx.Int(bitsFlag.Name),
		multihash: ctx.Bool(multihashFlag.Name),
	}
	if cfg.bits < 0 {
		return fmt.Errorf("invalid --%s %d", bitsFlag.Name, cfg.bits)
	}
	if cfg.bits > 0 && !variant.XOF() && cfg.bits != variant.OutputBits() {
		return fmt.Errorf("--%s: %w: %s produces %d bits", bitsFlag.Name, keccak.ErrFixedOutput, variant, variant.OutputBits())
	}
	if _, ok := variant.MultihashCode(); cfg.multihash && !ok {
		return fmt.Errorf("%s has no multihash code", variant)
	}

	files := ctx.Args().Slice()
	if len(files) == 0 {
		files = []string{"-"}
	}
	stdinUsed := 0
	for _, name := range files {
		if name == "-" {
			stdinUsed++
		}
	}
	if stdinUsed > 1 {
		return errors.New("stdin can only be read once")
	}

	lines := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx.Context)
	g.SetLimit(max(ctx.Int(jobsFlag.Name), 1))
	for i, name := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := cfg.sumFile(name, ctx.App.Reader)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			lines[i] = sum + "  " + name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(ctx.App.Writer, line)
	}
	return nil
}

func (cfg hashConfig) sumFile(name string, stdin io.Reader) (string, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	return cfg.sum(r)
}

// sum hashes r with a hasher of its own, so concurrent calls share nothing
// but the round constant table.
func (cfg hashConfig) sum(r io.Reader) (string, error) {
	h, err := keccak.NewXOF(cfg.variant, cfg.bits)
	if err != nil {
		return "", err
	}
	n, err := io.Copy(h, r)
	if err != nil {
		return "", err
	}
	digest := h.Finalize()
	log.Debugw("hashed", "variant", cfg.variant, "bytes", n)
	if !cfg.multihash {
		return hex.EncodeToString(digest), nil
	}
	code, _ := cfg.variant.MultihashCode()
	mh, err := multihash.Encode(digest, code)
	if err != nil {
		return "", err
	}
	return multihash.Multihash(mh).B58String(), nil
}
