package mymoney

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultProfileBuilds(t *testing.T) {
	profile := DefaultProfile()
	p, err := profile.Build()
	if err != nil {
		t.Fatalf("DefaultProfile().Build() failed: %v", err)
	}
	want := []string{"Equity", "Debt", "Gold"}
	got := p.AssetNames()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("asset %d = %q, want %q", i, got[i], want[i])
		}
	}
	if profile.Currency != "INR" {
		t.Errorf("currency = %q, want INR", profile.Currency)
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := `investor: Jane Doe
currency: EUR
assets:
  - name: Stocks
    weight: 70
  - name: Bonds
    weight: 30
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	if profile.Investor != "Jane Doe" {
		t.Errorf("investor = %q, want Jane Doe", profile.Investor)
	}
	if profile.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", profile.Currency)
	}
	order := profile.AssetOrder()
	if len(order) != 2 || order[0] != "Stocks" || order[1] != "Bonds" {
		t.Errorf("asset order = %v, want [Stocks Bonds]", order)
	}
	if _, err := profile.Build(); err != nil {
		t.Errorf("Build() failed: %v", err)
	}
}

func TestLoadProfileDefaultsCurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := `investor: Jane Doe
assets:
  - name: Stocks
    weight: 100
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	if profile.Currency != "INR" {
		t.Errorf("currency = %q, want the INR default", profile.Currency)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadProfile(missing) succeeded, want error")
	}
}

func TestProfileBuildValidation(t *testing.T) {
	testCases := []struct {
		name    string
		profile Profile
	}{
		{
			name:    "no investor",
			profile: Profile{Assets: []AssetProfile{{Name: "A", Weight: 100}}},
		},
		{
			name:    "no assets",
			profile: Profile{Investor: "Jane"},
		},
		{
			name: "weights do not sum to 100",
			profile: Profile{Investor: "Jane", Assets: []AssetProfile{
				{Name: "A", Weight: 60}, {Name: "B", Weight: 30}, {Name: "C", Weight: 20},
			}},
		},
		{
			name: "weight out of range",
			profile: Profile{Investor: "Jane", Assets: []AssetProfile{
				{Name: "A", Weight: 150}, {Name: "B", Weight: -50},
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.profile.Build()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Build() error = %v, want *ValidationError", err)
			}
		})
	}
}
