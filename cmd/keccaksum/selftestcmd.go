package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	keccak "github.com/Giulio2002/keccakp"
	"github.com/Giulio2002/keccakp/kat"
	"github.com/urfave/cli/v2"
)

var (
	selftestCommand = &cli.Command{
		Name:   "selftest",
		Usage:  "Runs the known answer tests",
		Action: selftest,
		Flags:  []cli.Flag{vectorsFlag},
	}
	listCommand = &cli.Command{
		Name:   "list",
		Usage:  "Lists the supported variants",
		Action: listVariants,
	}

	vectorsFlag = &cli.StringFlag{
		Name:  "vectors",
		Usage: "YAML file of vectors to run instead of the built-in ones",
	}
)

func selftest(ctx *cli.Context) error {
	vectors := kat.Default()
	if path := ctx.String(vectorsFlag.Name); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if vectors, err = kat.Load(f); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := kat.Run(vectors); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "%d vectors passed\n", len(vectors))
	return nil
}

func listVariants(ctx *cli.Context) error {
	w := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRATE\tCAPACITY\tSUFFIX\tOUTPUT\tMULTIHASH")
	for _, v := range keccak.Variants() {
		code := "-"
		if c, ok := v.MultihashCode(); ok {
			code = fmt.Sprintf("0x%x", c)
		}
		suffix := v.Suffix().BinString(0)
		if suffix == "" {
			suffix = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\t%s\n", v, v.Rate(), v.Capacity(), suffix, v.OutputBits(), code)
	}
	return w.Flush()
}
