// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"time"
)

// SetEntity is one member of a minimal covering set, with the geo metadata
// accumulated from its validators.
type SetEntity struct {
	Address     string // truncated for display
	FullAddress string
	StakeShare  float64 // fraction of the snapshot's total stake
	Validators  int
	Countries   map[string]int
	ASNs        map[string]int
}

// NakamotoSetResult describes the minimal set of entities whose combined
// stake reaches the threshold share for one snapshot date.
type NakamotoSetResult struct {
	Date            string
	Threshold       float64
	TotalEntities   int
	TotalValidators int
	TotalStake      uint64

	SetStake      uint64
	SetValidators int
	Entities      []SetEntity

	// Validator counts across the whole set, by country code and ASN.
	Countries map[string]int
	ASNs      map[string]int
}

// Size is the Nakamoto coefficient at the result's threshold.
func (r NakamotoSetResult) Size() int {
	return len(r.Entities)
}

// StakeSharePct is the stake share actually covered by the set, in percent.
func (r NakamotoSetResult) StakeSharePct() float64 {
	if r.TotalStake == 0 {
		return 0
	}
	return float64(r.SetStake) / float64(r.TotalStake) * 100
}

func (r NakamotoSetResult) CountryCount() int { return len(r.Countries) }

func (r NakamotoSetResult) ASNCount() int { return len(r.ASNs) }

// HHI is the Herfindahl-Hirschman index of the set's validator distribution
// across ASNs, scaled to 0..10000. Above 2500 counts as concentrated.
func (r NakamotoSetResult) HHI() float64 {
	total := 0
	for _, n := range r.ASNs {
		total += n
	}
	if total == 0 {
		return 0
	}
	hhi := 0.0
	for _, n := range r.ASNs {
		share := float64(n) / float64(total)
		hhi += share * share
	}
	return hhi * 10000
}

// TopASNShare is the validator share of the largest hosting provider in the
// set, in percent.
func (r NakamotoSetResult) TopASNShare() float64 {
	total, top := 0, 0
	for _, n := range r.ASNs {
		total += n
		if n > top {
			top = n
		}
	}
	if total == 0 {
		return 0
	}
	return float64(top) / float64(total) * 100
}

// TopCountry returns the country code with the most validators in the set.
func (r NakamotoSetResult) TopCountry() string { return maxKey(r.Countries) }

// TopASN returns the ASN with the most validators in the set.
func (r NakamotoSetResult) TopASN() string { return maxKey(r.ASNs) }

func maxKey(counts map[string]int) string {
	best, bestN := "", -1
	for k, n := range counts {
		if n > bestN || (n == bestN && k < best) {
			best, bestN = k, n
		}
	}
	if bestN < 0 {
		return ""
	}
	return best
}

// Quarter formats the snapshot date as e.g. 2024Q1.
func (r NakamotoSetResult) Quarter() string {
	t, err := time.Parse(snapshotDateLayout, r.Date)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%dQ%d", t.Year(), (int(t.Month())-1)/3+1)
}

// Time parses the snapshot date; the zero time on malformed input.
func (r NakamotoSetResult) Time() time.Time {
	t, _ := time.Parse(snapshotDateLayout, r.Date)
	return t
}
