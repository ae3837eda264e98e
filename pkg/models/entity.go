// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"strings"

	"github.com/ava-labs/avalanchego/utils/set"
	"golang.org/x/exp/slices"
)

// Entity aggregates the validators sharing one exact reward-address set,
// treated as a single economic owner. Two validators merge only if their
// address sets are identical; overlapping but unequal sets stay separate.
type Entity struct {
	IDs             set.Set[string]
	RewardAddresses set.Set[string]
	Weight          uint64
	DelegatedWeight uint64
	TotalWeight     uint64

	// Populated by extended grouping only.
	Members   []ValidatorRecord
	Countries map[string]int
	ASNs      map[string]int
	Cities    map[string]int
	Versions  map[string]int
	IPs       set.Set[string]
}

// EntityKey is the canonical, order-independent form of a reward-address
// set: the sorted unique addresses joined with a comma. An empty address
// set maps to the empty key.
func EntityKey(addresses []string) string {
	s := set.Of(addresses...)
	sorted := s.List()
	slices.Sort(sorted)
	return strings.Join(sorted, ",")
}

// Key returns the canonical grouping key of the entity.
func (e *Entity) Key() string {
	return EntityKey(e.RewardAddresses.List())
}

// PrimaryAddress returns the lexicographically first reward address.
func (e *Entity) PrimaryAddress() string {
	addrs := e.RewardAddresses.List()
	if len(addrs) == 0 {
		return ""
	}
	slices.Sort(addrs)
	return addrs[0]
}

// ShortAddress truncates the primary address for display,
// e.g. P-avax1abcdefg...wxyz.
func (e *Entity) ShortAddress() string {
	addr := e.PrimaryAddress()
	if len(addr) <= 20 {
		return addr
	}
	return addr[:12] + "..." + addr[len(addr)-4:]
}

// StakeShare is the entity's fraction of the given total stake.
func (e *Entity) StakeShare(totalStake uint64) float64 {
	if totalStake == 0 {
		return 0
	}
	return float64(e.TotalWeight) / float64(totalStake)
}
