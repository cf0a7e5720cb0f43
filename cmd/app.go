// Package cmd implements the CLI application to run portfolio simulations.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/finvest/mymoney"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "simulation")
	c.Register(&checkCmd{}, "simulation")
	c.Register(&reportCmd{}, "reports")
}

// CommandNames lists the registered subcommand names, for argv rewriting
// and shell completion in the main package.
func CommandNames() []string { return []string{"run", "check", "report"} }

// as a CLI application, it has a very short lived lifecycle, so a shared logger is ok.
var logger = logrus.New()

func init() {
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
}

// loadProfile returns the profile at path, or the built-in default profile
// when path is empty.
func loadProfile(path string) (mymoney.Profile, error) {
	if path == "" {
		return mymoney.DefaultProfile(), nil
	}
	return mymoney.LoadProfile(path)
}

// newLedger builds the profile's portfolio and a ledger writing balance
// lines to out.
func newLedger(profilePath string, out io.Writer) (*mymoney.Ledger, mymoney.Profile, error) {
	profile, err := loadProfile(profilePath)
	if err != nil {
		return nil, mymoney.Profile{}, err
	}
	portfolio, err := profile.Build()
	if err != nil {
		return nil, mymoney.Profile{}, err
	}
	return mymoney.NewLedger(out, logger, portfolio), profile, nil
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
