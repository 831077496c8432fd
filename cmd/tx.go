package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"schwabkest"
	"schwabkest/renderer"

	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	grammarFlags
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions extracted from a statement" }
func (*txCmd) Usage() string {
	return `kest tx [-head <n> | -tail <n>] <statement.pdf>

  Extracts the stock-sale records from the statement and lists them without
  any tax computation, with options for limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.grammarFlags.SetFlags(f)
	f.IntVar(&c.head, "head", 0, "Show only the first N records.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N records.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one statement file is expected.")
		return subcommands.ExitUsageError
	}

	txs, stats, err := schwabkest.ExtractFile(f.Arg(0), c.Grammar())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statement: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(txs) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v (%d candidate lines, %d malformed)\n",
			schwabkest.ErrNoTransactions, stats.Candidates, stats.Malformed)
		return subcommands.ExitFailure
	}

	if c.head > 0 && c.head < len(txs) {
		txs = txs[:c.head]
	}
	if c.tail > 0 && c.tail < len(txs) {
		txs = txs[len(txs)-c.tail:]
	}

	printMarkdown(renderer.RawTransactionsMarkdown(txs))
	return subcommands.ExitSuccess
}
