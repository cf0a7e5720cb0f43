package mymoney

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Asset is a single holding: a balance and a fixed target weight within its
// portfolio. The weight never changes after construction; the balance is
// mutated by allocations, contributions and rate changes, and is always a
// whole number of currency units.
type Asset struct {
	name       string
	allocation Amount
	weight     int
}

// NewAsset creates an asset with a zero balance. The weight is an integer
// percent and must be within [0, 100].
func NewAsset(name string, weight int) (*Asset, error) {
	if weight < 0 || weight > 100 {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("weight %d of asset %q must be in the range 0 to 100", weight, name),
		}
	}
	return &Asset{name: name, weight: weight}, nil
}

func (a *Asset) Name() string       { return a.name }
func (a *Asset) Weight() int        { return a.weight }
func (a *Asset) Allocation() Amount { return a.allocation }

// SetAllocation replaces the balance, truncating toward zero.
func (a *Asset) SetAllocation(amount decimal.Decimal) {
	a.allocation = A(amount)
}

// Allocate adds amount to the balance. Additive, not replacing.
func (a *Asset) Allocate(amount decimal.Decimal) {
	a.allocation = a.allocation.Add(amount)
}

// ApplyRateOfChange grows the balance by a fractional monthly rate
// (0.13 for 13%).
func (a *Asset) ApplyRateOfChange(rate decimal.Decimal) {
	a.allocation = a.allocation.ApplyRate(rate)
}

func (a *Asset) String() string {
	return fmt.Sprintf("%s %s %d%%", a.name, a.allocation, a.weight)
}
