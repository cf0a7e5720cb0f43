package mymoney

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	// initialMonth is the cursor position before any change command has
	// been seen.
	initialMonth = time.January
	// sipStartMonth is the first month from which the recurring
	// contribution applies.
	sipStartMonth = time.February
	// CannotRebalance is the literal printed when a rebalance is requested
	// outside the permitted months. It is a business condition, not an
	// error: processing continues.
	CannotRebalance = "CANNOT_REBALANCE"
)

// rebalanceMonths are the checkpoint months in which rebalancing is
// permitted.
var rebalanceMonths = map[time.Month]bool{
	time.June:     true,
	time.December: true,
}

// Ledger owns the investor portfolios, the simulated month cursor and the
// per-month balance history. It dispatches parsed commands strictly in
// input order; the cursor only moves on change commands and never resets.
type Ledger struct {
	out       io.Writer
	log       *logrus.Logger
	investors map[string]*Portfolio
	month     time.Month
	history   map[time.Month]map[string][]Amount // append-only, keyed by month then investor
}

// NewLedger creates a ledger over the given portfolios. Balance lines are
// written to out; dispatch tracing goes to log at debug level.
func NewLedger(out io.Writer, log *logrus.Logger, investors ...*Portfolio) *Ledger {
	l := &Ledger{
		out:       out,
		log:       log,
		investors: make(map[string]*Portfolio, len(investors)),
		month:     initialMonth,
		history:   make(map[time.Month]map[string][]Amount),
	}
	for _, p := range investors {
		l.investors[p.Name()] = p
	}
	return l
}

// Month returns the current simulated month.
func (l *Ledger) Month() time.Month { return l.month }

func (l *Ledger) investor(name string) (*Portfolio, error) {
	p, ok := l.investors[name]
	if !ok {
		return nil, &LookupError{Kind: "investor", Key: name}
	}
	return p, nil
}

// Allocate adds the given amounts to the named investor's assets.
func (l *Ledger) Allocate(investor string, values map[string]decimal.Decimal) error {
	p, err := l.investor(investor)
	if err != nil {
		return err
	}
	return p.Allocate(values)
}

// SetRecurringContribution replaces the investor's recurring contribution.
func (l *Ledger) SetRecurringContribution(investor string, values map[string]decimal.Decimal) error {
	p, err := l.investor(investor)
	if err != nil {
		return err
	}
	return p.SetRecurringContribution(values)
}

// Change advances the month cursor to month and applies that month's rate
// change. From February onward the recurring contribution is applied first,
// so contributions compound with the same month's rates. The resulting
// balances are recorded as the month's snapshot.
func (l *Ledger) Change(investor string, rates map[string]decimal.Decimal, month time.Month) error {
	if month < time.January || month > time.December {
		return &ParseError{Token: "change", Reason: "missing month name"}
	}
	p, err := l.investor(investor)
	if err != nil {
		return err
	}
	l.month = month
	if l.month >= sipStartMonth {
		if err := p.ApplyRecurringContribution(); err != nil {
			return err
		}
	}
	if err := p.ApplyRateChange(rates); err != nil {
		return err
	}
	l.record(month, p)
	return nil
}

// Balance returns the snapshot recorded for (month, investor). Months that
// were never recorded are a lookup failure; missing months are not computed
// implicitly.
func (l *Ledger) Balance(investor string, month time.Month) ([]Amount, error) {
	balances, ok := l.history[month][investor]
	if !ok {
		return nil, &LookupError{Kind: "snapshot", Key: fmt.Sprintf("%s/%s", monthName(month), investor)}
	}
	return balances, nil
}

// Rebalance redistributes the investor's balances across assets by weight.
// It is permitted only when the cursor is at a checkpoint month (June or
// December); outside those it reports false and mutates nothing. A
// permitted rebalance overwrites the month's snapshot.
func (l *Ledger) Rebalance(investor string) (bool, error) {
	p, err := l.investor(investor)
	if err != nil {
		return false, err
	}
	if !rebalanceMonths[l.month] {
		return false, nil
	}
	p.Rebalance()
	l.record(l.month, p)
	return true, nil
}

func (l *Ledger) record(month time.Month, p *Portfolio) {
	if l.history[month] == nil {
		l.history[month] = make(map[string][]Amount)
	}
	l.history[month][p.Name()] = p.Balances()
}

// History yields the investor's recorded months in calendar order with
// their balances.
func (l *Ledger) History(investor string) iter.Seq2[time.Month, []Amount] {
	return func(yield func(time.Month, []Amount) bool) {
		for m := time.January; m <= time.December; m++ {
			balances, ok := l.history[m][investor]
			if !ok {
				continue
			}
			if !yield(m, balances) {
				return
			}
		}
	}
}

// Execute consumes the command stream for one investor, dispatching each
// command in input order. It stops at the first fatal error; the rebalance
// rejection is the only soft failure and does not halt processing.
func (l *Ledger) Execute(investor string, commands iter.Seq2[Command, error]) error {
	for cmd, err := range commands {
		if err != nil {
			return err
		}
		if err := l.dispatch(investor, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (l *Ledger) dispatch(investor string, cmd Command) error {
	l.log.WithFields(logrus.Fields{
		"command": cmd.Name,
		"month":   monthName(cmd.Month),
	}).Debug("dispatch")

	switch cmd.Name {
	case "allocate":
		return l.Allocate(investor, cmd.Values)
	case "sip":
		return l.SetRecurringContribution(investor, cmd.Values)
	case "change":
		return l.Change(investor, cmd.Values, cmd.Month)
	case "balance":
		balances, err := l.Balance(investor, cmd.Month)
		if err != nil {
			return err
		}
		l.println(balances)
	case "rebalance":
		done, err := l.Rebalance(investor)
		if err != nil {
			return err
		}
		if !done {
			fmt.Fprintln(l.out, CannotRebalance)
			return nil
		}
		balances, err := l.Balance(investor, l.month)
		if err != nil {
			return err
		}
		l.println(balances)
	default:
		// Unknown command names are skipped, not failed.
		l.log.WithField("command", cmd.Name).Debug("ignoring unknown command")
	}
	return nil
}

func (l *Ledger) println(balances []Amount) {
	parts := make([]string, len(balances))
	for i, b := range balances {
		parts[i] = b.String()
	}
	fmt.Fprintln(l.out, strings.Join(parts, " "))
}
