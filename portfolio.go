package mymoney

import (
	"fmt"
	"maps"

	"github.com/shopspring/decimal"
)

// Portfolio is one investor's collection of weighted assets.
//
// Asset order is the insertion order at construction; balances are always
// reported in that order, and bare numeric command values are zipped
// against it.
type Portfolio struct {
	name   string
	order  []*Asset
	assets map[string]*Asset // index assets by name
	sip    map[string]decimal.Decimal
}

// NewPortfolio creates a portfolio holding the given assets. Asset weights
// must sum to exactly 100; the recurring contribution starts at zero for
// every asset.
func NewPortfolio(name string, assets ...*Asset) (*Portfolio, error) {
	p := &Portfolio{
		name:   name,
		assets: make(map[string]*Asset, len(assets)),
		sip:    make(map[string]decimal.Decimal, len(assets)),
	}
	total := 0
	for _, a := range assets {
		if _, dup := p.assets[a.Name()]; dup {
			return nil, &ValidationError{Reason: fmt.Sprintf("duplicate asset %q", a.Name())}
		}
		p.order = append(p.order, a)
		p.assets[a.Name()] = a
		p.sip[a.Name()] = decimal.Zero
		total += a.Weight()
	}
	if total != 100 {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("asset weights of portfolio %q sum to %d, want 100", name, total),
		}
	}
	return p, nil
}

func (p *Portfolio) Name() string { return p.name }

// AssetNames returns the asset names in portfolio order.
func (p *Portfolio) AssetNames() []string {
	names := make([]string, 0, len(p.order))
	for _, a := range p.order {
		names = append(names, a.Name())
	}
	return names
}

// Allocate adds each amount to the named asset's balance.
func (p *Portfolio) Allocate(values map[string]decimal.Decimal) error {
	for name, value := range values {
		a, ok := p.assets[name]
		if !ok {
			return &LookupError{Kind: "asset", Key: name}
		}
		a.Allocate(value)
	}
	return nil
}

// SetRecurringContribution replaces the stored per-asset contribution
// wholesale; the last sip command wins.
func (p *Portfolio) SetRecurringContribution(values map[string]decimal.Decimal) error {
	for name := range values {
		if _, ok := p.assets[name]; !ok {
			return &LookupError{Kind: "asset", Key: name}
		}
	}
	p.sip = maps.Clone(values)
	return nil
}

// ApplyRecurringContribution adds the stored contribution to each asset.
// The ledger invokes it on every change command from February onward.
func (p *Portfolio) ApplyRecurringContribution() error {
	return p.Allocate(p.sip)
}

// ApplyRateChange applies a fractional monthly rate to each named asset.
func (p *Portfolio) ApplyRateChange(rates map[string]decimal.Decimal) error {
	for name, rate := range rates {
		a, ok := p.assets[name]
		if !ok {
			return &LookupError{Kind: "asset", Key: name}
		}
		a.ApplyRateOfChange(rate)
	}
	return nil
}

// Rebalance redistributes the total balance across assets by weight. The
// total is captured before any asset is mutated, so iteration order cannot
// affect the result.
func (p *Portfolio) Rebalance() {
	total := decimal.Zero
	for _, a := range p.order {
		total = total.Add(a.Allocation().Decimal())
	}
	for _, a := range p.order {
		share := total.Mul(newDecimal(a.Weight())).Div(hundred)
		a.SetAllocation(share)
	}
}

// Balances returns the asset balances in portfolio order.
func (p *Portfolio) Balances() []Amount {
	balances := make([]Amount, 0, len(p.order))
	for _, a := range p.order {
		balances = append(balances, a.Allocation())
	}
	return balances
}
