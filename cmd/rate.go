package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"schwabkest"
	"schwabkest/date"

	"github.com/google/subcommands"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "resolve exchange rates for given dates" }
func (*rateCmd) Usage() string {
	return `kest rate <date> [<date>...]

  Shows the USD/EUR rate the calculator would apply on each date, and whether
  it is an exact observation, the nearest one, or the default rate.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one date is expected.")
		return subcommands.ExitUsageError
	}

	rates := schwabkest.ECBRates2025()
	for _, arg := range f.Args() {
		on, err := date.Parse(arg)
		if err != nil {
			fmt.Printf("%s: %s (default rate, unparseable date)\n", arg, schwabkest.DefaultRate)
			continue
		}
		chosen, rate := rates.Resolve(on)
		switch {
		case chosen == on:
			fmt.Printf("%s: %s\n", on, rate)
		default:
			fmt.Printf("%s: %s (nearest observation %s)\n", on, rate, chosen)
		}
	}
	return subcommands.ExitSuccess
}
