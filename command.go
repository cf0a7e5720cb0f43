package mymoney

import (
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Command is one parsed input line: a lower-cased verb, the numeric values
// zipped against the portfolio's asset order, and an optional month.
// Commands are produced once per line and consumed once by the ledger.
type Command struct {
	Name   string
	Values map[string]decimal.Decimal
	Month  time.Month // 0 when the line carries no month
}

// parseValue parses a numeric token. A percent sign makes the value a
// fraction: "4%" is 0.04, "-10.00%" is -0.1.
func parseValue(token string) (decimal.Decimal, error) {
	s := token
	percent := strings.Contains(s, "%")
	if percent {
		s = strings.ReplaceAll(s, "%", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &ParseError{Token: token, Reason: "not a number"}
	}
	if percent {
		d = d.Div(hundred)
	}
	return d, nil
}

// ParseCommands lazily turns tokenized lines into Commands, one per line,
// in input order. Empty lines are skipped; a line with a single token
// yields a name-only command (e.g. a bare rebalance trigger).
//
// If the last token of a line is a full month name it is consumed as the
// command's month; every other token after the verb must be numeric.
// Values are zipped positionally with assetOrder: surplus values are
// dropped and missing ones left unmapped. That positional convention is
// inherited from the input format and deliberately not tightened.
//
// The sequence stops at the first token that is neither a number nor a
// trailing month name, yielding the ParseError.
func ParseCommands(lines [][]string, assetOrder []string) iter.Seq2[Command, error] {
	return func(yield func(Command, error) bool) {
		for _, tokens := range lines {
			if len(tokens) == 0 {
				continue
			}
			cmd := Command{
				Name:   strings.ToLower(tokens[0]),
				Values: make(map[string]decimal.Decimal),
			}
			rest := tokens[1:]
			if len(rest) == 0 {
				if !yield(cmd, nil) {
					return
				}
				continue
			}

			if IsMonthName(rest[len(rest)-1]) {
				cmd.Month, _ = ParseMonth(rest[len(rest)-1])
				rest = rest[:len(rest)-1]
			}

			// All value tokens are parsed before zipping, so a malformed
			// surplus token still fails the line.
			values := make([]decimal.Decimal, 0, len(rest))
			for _, token := range rest {
				v, err := parseValue(token)
				if err != nil {
					yield(Command{}, err)
					return
				}
				values = append(values, v)
			}
			for i, name := range assetOrder {
				if i >= len(values) {
					break
				}
				cmd.Values[name] = values[i]
			}

			if !yield(cmd, nil) {
				return
			}
		}
	}
}
