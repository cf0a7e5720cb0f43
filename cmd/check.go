package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/finvest/mymoney"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	profile string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a command file without executing it" }
func (*checkCmd) Usage() string {
	return `mym check [-profile <file>] <input-file>

  Parses the command file and prints each command in canonical form, one
  per line, without mutating any portfolio. Fails on the first token that
  is neither a number nor a trailing month name.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.profile, "profile", "", "Investor profile YAML file. Defaults to the built-in profile.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one input file")
		return subcommands.ExitUsageError
	}

	profile, err := loadProfile(c.profile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	lines, err := mymoney.ReadCommandFile(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	order := profile.AssetOrder()
	for cmd, err := range mymoney.ParseCommands(lines, order) {
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Println(canonical(cmd, order))
	}
	return subcommands.ExitSuccess
}

// canonical formats a parsed command with its values bound to asset names,
// in portfolio order.
func canonical(cmd mymoney.Command, order []string) string {
	var b strings.Builder
	b.WriteString(cmd.Name)
	for _, name := range order {
		if v, ok := cmd.Values[name]; ok {
			fmt.Fprintf(&b, " %s=%s", name, v)
		}
	}
	if cmd.Month != 0 {
		fmt.Fprintf(&b, " @%s", cmd.Month)
	}
	return b.String()
}
