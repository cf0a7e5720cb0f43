package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/finvest/mymoney"
)

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	profile string
	verbose bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "execute a portfolio command file" }
func (*runCmd) Usage() string {
	return `mym run [-profile <file>] [-v] <input-file>

  Executes the commands in the input file against the investor portfolio,
  printing one line of balances for each balance command and each permitted
  rebalance, and CANNOT_REBALANCE for a rejected one.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.profile, "profile", "", "Investor profile YAML file. Defaults to the built-in profile.")
	f.BoolVar(&c.verbose, "v", false, "Trace command dispatch on stderr.")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one input file")
		return subcommands.ExitUsageError
	}
	if c.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ledger, profile, err := newLedger(c.profile, os.Stdout)
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
	return subcommands.ExitSuccess
}
