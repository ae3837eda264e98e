// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package stake

import (
	"sort"

	"github.com/ava-labs/avalanche-stakes/pkg/models"
	"github.com/ava-labs/avalanchego/utils/set"
)

// Group merges validators sharing an identical reward-address set into one
// entity per set. Records with an empty address set all share the empty key
// and collapse into a single degenerate entity; GroupExtended drops them
// instead. The returned slice is freshly built on every call and ordered by
// SortEntities.
func Group(validators []models.ValidatorRecord) []models.Entity {
	groups := make(map[string]*models.Entity, len(validators))
	for i := range validators {
		v := &validators[i]
		e := groupFor(groups, v)
		e.IDs.Add(v.IDs...)
		e.RewardAddresses.Add(v.RewardAddresses...)
		e.Weight += v.Weight
		e.DelegatedWeight += v.DelegatedWeight
		e.TotalWeight += v.TotalWeight
	}
	return collect(groups)
}

// GroupExtended groups like Group but skips records with no reward
// addresses and retains the member records plus their geo metadata
// (country, ASN, city, client version, bare IP) on each entity.
func GroupExtended(validators []models.ValidatorRecord) []models.Entity {
	groups := make(map[string]*models.Entity, len(validators))
	for i := range validators {
		v := &validators[i]
		if len(v.RewardAddresses) == 0 {
			continue
		}
		e := groupFor(groups, v)
		e.IDs.Add(v.IDs...)
		e.RewardAddresses.Add(v.RewardAddresses...)
		e.Weight += v.Weight
		e.DelegatedWeight += v.DelegatedWeight
		e.TotalWeight += v.TotalWeight

		e.Members = append(e.Members, *v)
		if code := v.Geo.Country.Code; code != "" {
			e.Countries[code]++
		}
		if asn := v.Geo.ASNum.Name; asn != "" {
			e.ASNs[asn]++
		}
		if city := v.CityLabel(); city != "" {
			e.Cities[city]++
		}
		if v.Version != "" {
			e.Versions[v.Version]++
		}
		if ip := v.BareIP(); ip != "" {
			e.IPs.Add(ip)
		}
	}
	return collect(groups)
}

func groupFor(groups map[string]*models.Entity, v *models.ValidatorRecord) *models.Entity {
	key := models.EntityKey(v.RewardAddresses)
	e, ok := groups[key]
	if !ok {
		e = &models.Entity{
			IDs:             set.NewSet[string](1),
			RewardAddresses: set.NewSet[string](len(v.RewardAddresses)),
			Countries:       map[string]int{},
			ASNs:            map[string]int{},
			Cities:          map[string]int{},
			Versions:        map[string]int{},
			IPs:             set.NewSet[string](1),
		}
		groups[key] = e
	}
	return e
}

func collect(groups map[string]*models.Entity) []models.Entity {
	entities := make([]models.Entity, 0, len(groups))
	for _, e := range groups {
		entities = append(entities, *e)
	}
	SortEntities(entities)
	return entities
}

// SortEntities orders entities by total weight descending, breaking ties on
// the canonical address key, so that reported set memberships are stable
// across runs.
func SortEntities(entities []models.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		if entities[i].TotalWeight != entities[j].TotalWeight {
			return entities[i].TotalWeight > entities[j].TotalWeight
		}
		return entities[i].Key() < entities[j].Key()
	})
}

// TotalWeights extracts the per-entity total weights (delegations included).
func TotalWeights(entities []models.Entity) []float64 {
	weights := make([]float64, len(entities))
	for i := range entities {
		weights[i] = float64(entities[i].TotalWeight)
	}
	return weights
}

// OwnWeights extracts the per-entity own weights (delegations excluded).
func OwnWeights(entities []models.Entity) []float64 {
	weights := make([]float64, len(entities))
	for i := range entities {
		weights[i] = float64(entities[i].Weight)
	}
	return weights
}

// SumWeights returns the summed total weight over all entities.
func SumWeights(entities []models.Entity) uint64 {
	total := uint64(0)
	for i := range entities {
		total += entities[i].TotalWeight
	}
	return total
}
