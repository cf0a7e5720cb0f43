package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/finvest/mymoney"
	"github.com/finvest/mymoney/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	profile string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the recorded monthly balances as a report" }
func (*reportCmd) Usage() string {
	return `mym report [-profile <file>] <input-file>

  Executes the command file, then renders the recorded per-month balances
  as a table in the profile currency. Balance output lines are suppressed;
  only the report is printed.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.profile, "profile", "", "Investor profile YAML file. Defaults to the built-in profile.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one input file")
		return subcommands.ExitUsageError
	}

	ledger, profile, err := newLedger(c.profile, io.Discard)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	lines, err := mymoney.ReadCommandFile(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	commands := mymoney.ParseCommands(lines, profile.AssetOrder())
	if err := ledger.Execute(profile.Investor, commands); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.History(ledger, profile.Investor, profile.Currency, profile.AssetOrder()))
	return subcommands.ExitSuccess
}
