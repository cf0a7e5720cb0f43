package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/finvest/mymoney/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	completion()

	// The historical surface is a single positional argument, the command
	// file. Rewrite that form to the run subcommand.
	if len(os.Args) > 1 && !isSubcommand(os.Args[1]) {
		os.Args = append([]string{os.Args[0], "run"}, os.Args[1:]...)
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func isSubcommand(arg string) bool {
	switch arg {
	case "help", "flags", "commands":
		return true
	}
	for _, name := range cmd.CommandNames() {
		if arg == name {
			return true
		}
	}
	return false
}

// completion wires shell completion; it is a no-op outside a completion
// request.
func completion() {
	sub := func() *complete.Command {
		return &complete.Command{
			Flags: map[string]complete.Predictor{
				"profile": predict.Files("*.yaml"),
				"v":       predict.Nothing,
			},
			Args: predict.Files("*.txt"),
		}
	}
	cli := &complete.Command{
		Sub: map[string]*complete.Command{
			"run":    sub(),
			"check":  sub(),
			"report": sub(),
		},
	}
	cli.Complete("mym")
}
