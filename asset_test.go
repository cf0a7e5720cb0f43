package mymoney

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewAssetWeightBounds(t *testing.T) {
	testCases := []struct {
		weight  int
		wantErr bool
	}{
		{weight: 0},
		{weight: 100},
		{weight: 60},
		{weight: -1, wantErr: true},
		{weight: 101, wantErr: true},
	}

	for _, tc := range testCases {
		a, err := NewAsset("Equity", tc.weight)
		if tc.wantErr {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("NewAsset(weight=%d) error = %v, want *ValidationError", tc.weight, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewAsset(weight=%d) returned unexpected error: %v", tc.weight, err)
		}
		if a.Weight() != tc.weight {
			t.Errorf("Weight() = %d, want %d", a.Weight(), tc.weight)
		}
		if !a.Allocation().IsZero() {
			t.Errorf("new asset allocation = %s, want 0", a.Allocation())
		}
	}
}

func TestAssetAllocateIsAdditive(t *testing.T) {
	a, err := NewAsset("Debt", 40)
	if err != nil {
		t.Fatal(err)
	}
	a.Allocate(decimal.NewFromInt(3000))
	a.Allocate(decimal.NewFromFloat(100.7))
	if got := a.Allocation().String(); got != "3100" {
		t.Errorf("allocation after 3000 + 100.7 = %s, want 3100", got)
	}
}

func TestAssetApplyRateOfChange(t *testing.T) {
	a, err := NewAsset("Equity", 60)
	if err != nil {
		t.Fatal(err)
	}
	a.SetAllocation(decimal.NewFromInt(6000))
	a.ApplyRateOfChange(decimal.NewFromFloat(0.1))
	if got := a.Allocation().String(); got != "6600" {
		t.Errorf("6000 at +10%% = %s, want 6600", got)
	}
}
