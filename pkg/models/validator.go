// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidatorRecord is one entry of a per-date validators.json or
// validators-ext.json snapshot. Weights are in nAVAX.
type ValidatorRecord struct {
	IDs             []string
	RewardAddresses []string
	Weight          uint64
	DelegatedWeight uint64
	TotalWeight     uint64

	// Extended data only.
	IP      string
	Version string
	Geo     Geo
}

type Geo struct {
	Country GeoCountry `json:"country"`
	ASNum   GeoASNum   `json:"asnum"`
	City    GeoCity    `json:"city"`
}

type GeoCountry struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

type GeoASNum struct {
	Name string `json:"name"`
}

type GeoCity struct {
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// rawValidator matches the snapshot wire format. The id field has been both
// a scalar and an array across data versions, and the delegated weight has
// been exported as delegatorWeight (current) and delegatedWeight (legacy).
type rawValidator struct {
	ID              json.RawMessage `json:"id"`
	RewardAddresses []string        `json:"rewardAddresses"`
	Weight          uint64          `json:"weight"`
	DelegatorWeight *uint64         `json:"delegatorWeight"`
	DelegatedWeight *uint64         `json:"delegatedWeight"`
	TotalWeight     uint64          `json:"totalWeight"`
	IP              string          `json:"ip"`
	Version         string          `json:"version"`
	Geo             Geo             `json:"geo"`
}

func (v *ValidatorRecord) UnmarshalJSON(data []byte) error {
	var raw rawValidator
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ids, err := normalizeIDs(raw.ID)
	if err != nil {
		return err
	}
	v.IDs = ids
	v.RewardAddresses = raw.RewardAddresses
	v.Weight = raw.Weight
	v.TotalWeight = raw.TotalWeight
	v.IP = raw.IP
	v.Version = raw.Version
	v.Geo = raw.Geo

	// Prefer the current field name, fall back to the legacy one,
	// default to zero when neither is present.
	switch {
	case raw.DelegatorWeight != nil:
		v.DelegatedWeight = *raw.DelegatorWeight
	case raw.DelegatedWeight != nil:
		v.DelegatedWeight = *raw.DelegatedWeight
	default:
		v.DelegatedWeight = 0
	}
	return nil
}

func normalizeIDs(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}, nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("validator id must be a string or an array of strings: %w", err)
	}
	return many, nil
}

// BareIP strips the port suffix, if any.
func (v *ValidatorRecord) BareIP() string {
	host, _, found := strings.Cut(v.IP, ":")
	if !found {
		return v.IP
	}
	return host
}

// CityLabel formats the city for display, e.g. "Frankfurt, HE".
func (v *ValidatorRecord) CityLabel() string {
	if v.Geo.City.Name == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s", v.Geo.City.Name, v.Geo.City.Region)
}
