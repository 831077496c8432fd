// Package cmd implements the CLI application to process Schwab year-end statements.
package cmd

import (
	"flag"

	"schwabkest"

	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "statement")
	c.Register(&txCmd{}, "statement")

	c.Register(&rateCmd{}, "rates")

	c.Register(&topicCmd{}, "documentation")
}

// grammarFlags holds the statement-layout overrides shared by the statement
// commands. Defaults are the Schwab year-end layout for SNAP INC.
type grammarFlags struct {
	issuer string
	cusip  string
}

func (g *grammarFlags) SetFlags(f *flag.FlagSet) {
	def := schwabkest.DefaultGrammar()
	f.StringVar(&g.issuer, "issuer", def.Issuer, "Issuer name anchoring candidate lines.")
	f.StringVar(&g.cusip, "cusip", def.CUSIP, "Security identifier anchoring statement rows.")
}

func (g *grammarFlags) Grammar() schwabkest.Grammar {
	def := schwabkest.DefaultGrammar()
	if g.issuer == def.Issuer && g.cusip == def.CUSIP {
		return def
	}
	return schwabkest.NewGrammar(def.Version, g.issuer, g.cusip)
}
