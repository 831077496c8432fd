package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"schwabkest"
	"schwabkest/renderer"

	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	grammarFlags
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "full KESt report from a year-end statement" }
func (*reportCmd) Usage() string {
	return `kest report [-o <file.xlsx>] <statement.pdf>

  Extracts every stock sale from the statement, converts it to EUR with the
  bundled ECB rates, computes the Austrian KESt (27,5%), prints the summary,
  and writes a spreadsheet plus a sibling .json artifact.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.grammarFlags.SetFlags(f)
	f.StringVar(&c.output, "o", "schwab_kest.xlsx", "Spreadsheet file to write.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one statement file is expected.")
		return subcommands.ExitUsageError
	}

	report, err := schwabkest.Process(f.Arg(0), c.Grammar(), schwabkest.ECBRates2025())
	if errors.Is(err, schwabkest.ErrNoTransactions) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing statement: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(report))

	if err := schwabkest.WriteXLSX(c.output, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	jsonFile := strings.TrimSuffix(c.output, ".xlsx") + ".json"
	if err := schwabkest.WriteJSON(jsonFile, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %s and %s\n", c.output, jsonFile)
	return subcommands.ExitSuccess
}
