package mymoney

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile describes the investor and portfolio to simulate: the investor
// name, the reporting currency and the assets with their target weights.
// The asset order in the profile is the column order for bare numeric
// command values.
type Profile struct {
	Investor string         `yaml:"investor"`
	Currency string         `yaml:"currency"`
	Assets   []AssetProfile `yaml:"assets"`
}

// AssetProfile is one asset entry of a profile.
type AssetProfile struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// DefaultProfile is the built-in investor: Equity, Debt and Gold weighted
// 60/30/10, reported in INR.
func DefaultProfile() Profile {
	return Profile{
		Investor: "John Doe",
		Currency: "INR",
		Assets: []AssetProfile{
			{Name: "Equity", Weight: 60},
			{Name: "Debt", Weight: 30},
			{Name: "Gold", Weight: 10},
		},
	}
}

// LoadProfile reads a profile from a YAML file. The currency defaults to
// INR when the file does not declare one.
func LoadProfile(path string) (Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("could not open profile: %w", err)
	}
	defer file.Close()

	var p Profile
	if err := yaml.NewDecoder(file).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("could not decode profile %q: %w", path, err)
	}
	if p.Currency == "" {
		p.Currency = "INR"
	}
	return p, nil
}

// AssetOrder returns the asset names in profile order.
func (p Profile) AssetOrder() []string {
	order := make([]string, 0, len(p.Assets))
	for _, a := range p.Assets {
		order = append(order, a.Name)
	}
	return order
}

// Build constructs the investor's portfolio. Weight and duplicate checks
// happen here, before any command is processed.
func (p Profile) Build() (*Portfolio, error) {
	if p.Investor == "" {
		return nil, &ValidationError{Reason: "profile has no investor name"}
	}
	if len(p.Assets) == 0 {
		return nil, &ValidationError{Reason: "profile has no assets"}
	}
	assets := make([]*Asset, 0, len(p.Assets))
	for _, ap := range p.Assets {
		a, err := NewAsset(ap.Name, ap.Weight)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return NewPortfolio(p.Investor, assets...)
}
