// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package history

import (
	"sort"
	"strings"

	"github.com/ava-labs/avalanche-stakes/pkg/models"
	"github.com/ava-labs/avalanche-stakes/pkg/stake"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// The covering set treats reward addresses as owner identities, which makes
// its size an upper bound: distinct addresses may still be one operator, or
// share infrastructure and jurisdiction. ConcentrationReport cross-checks
// the set against hosting providers (ASNs), IP subnets and countries, and
// estimates effective coefficients under those coarser groupings.
type ConcentrationReport struct {
	Date      string
	Threshold float64
	SetSize   int

	Entities []ConcentrationEntity

	// ASNs and /24 subnets shared by more than one covering-set entity.
	SharedASNs         []SharedGroup
	SharedSubnets      []SharedGroup
	EntitiesSharingASN int

	// Stake at risk per hosting provider and per country, across the
	// covering set's validators.
	ASNStakes     []GroupStake
	CountryStakes []GroupStake

	// Effective coefficients when every provider or country is assumed to
	// control all validators it hosts.
	EffectiveByASN     int
	EffectiveByCountry int
}

type ConcentrationEntity struct {
	Rank          int
	Address       string
	StakeSharePct float64
	Validators    int
	Countries     []string
	ASNs          []string
	Versions      []string
}

// SharedGroup names an ASN or subnet together with the 1-based ranks of the
// covering-set entities it spans.
type SharedGroup struct {
	Name  string
	Ranks []int
}

type GroupStake struct {
	Name       string
	Validators int
	StakePct   float64
}

// Concentration builds the cross-check report for one extended snapshot.
func (a *Analyzer) Concentration(date string, threshold float64) (ConcentrationReport, error) {
	validators, err := a.store.LoadExtended(date)
	if err != nil {
		return ConcentrationReport{}, err
	}

	entities := stake.GroupExtended(validators)
	totalStake := stake.SumWeights(entities)
	covering := stake.NakamotoSet(entities, threshold)

	report := ConcentrationReport{
		Date:      date,
		Threshold: threshold,
		SetSize:   len(covering),
	}

	asnRanks := map[string][]int{}
	subnetRanks := map[string]map[int]bool{}
	asnStake := map[string]float64{}
	asnValidators := map[string]int{}
	countryStake := map[string]float64{}
	countryValidators := map[string]int{}

	for i := range covering {
		e := &covering[i]
		rank := i + 1

		report.Entities = append(report.Entities, ConcentrationEntity{
			Rank:          rank,
			Address:       e.ShortAddress(),
			StakeSharePct: e.StakeShare(totalStake) * 100,
			Validators:    len(e.Members),
			Countries:     sortedKeys(e.Countries),
			ASNs:          sortedKeys(e.ASNs),
			Versions:      sortedKeys(e.Versions),
		})

		for asn := range e.ASNs {
			asnRanks[asn] = append(asnRanks[asn], rank)
		}
		for _, ip := range e.IPs.List() {
			subnet := subnet24(ip)
			if subnet == "" {
				continue
			}
			if subnetRanks[subnet] == nil {
				subnetRanks[subnet] = map[int]bool{}
			}
			subnetRanks[subnet][rank] = true
		}

		// Stake at risk is apportioned evenly over the entity's members.
		if len(e.Members) == 0 {
			continue
		}
		perValidator := float64(e.TotalWeight) / float64(len(e.Members))
		for _, m := range e.Members {
			asn := m.Geo.ASNum.Name
			if asn == "" {
				asn = "Unknown"
			}
			asnStake[asn] += perValidator
			asnValidators[asn]++

			country := m.Geo.Country.Code
			if country == "" {
				country = "Unknown"
			}
			countryStake[country] += perValidator
			countryValidators[country]++
		}
	}

	sharing := map[int]bool{}
	for asn, ranks := range asnRanks {
		if len(ranks) < 2 {
			continue
		}
		report.SharedASNs = append(report.SharedASNs, SharedGroup{Name: asn, Ranks: ranks})
		for _, rank := range ranks {
			sharing[rank] = true
		}
	}
	sortSharedGroups(report.SharedASNs)
	report.EntitiesSharingASN = len(sharing)

	for subnet, ranks := range subnetRanks {
		if len(ranks) < 2 {
			continue
		}
		sorted := maps.Keys(ranks)
		slices.Sort(sorted)
		report.SharedSubnets = append(report.SharedSubnets, SharedGroup{Name: subnet, Ranks: sorted})
	}
	sortSharedGroups(report.SharedSubnets)

	report.ASNStakes = groupStakes(asnStake, asnValidators, totalStake)
	report.CountryStakes = groupStakes(countryStake, countryValidators, totalStake)
	report.EffectiveByASN = effectiveByASN(entities, totalStake, threshold)
	report.EffectiveByCountry = effectiveByCountry(entities, totalStake, threshold)
	return report, nil
}

// effectiveByASN assigns each entity's whole stake to its most common
// hosting provider and counts providers until the threshold share.
func effectiveByASN(entities []models.Entity, totalStake uint64, threshold float64) int {
	weights := map[string]float64{}
	for i := range entities {
		e := &entities[i]
		asn := "Unknown"
		best := 0
		for name, n := range e.ASNs {
			if n > best || (n == best && name < asn) {
				asn, best = name, n
			}
		}
		if best == 0 {
			asn = "Unknown"
		}
		weights[asn] += float64(e.TotalWeight)
	}
	return countToThreshold(maps.Values(weights), float64(totalStake)*threshold)
}

// effectiveByCountry spreads each entity's stake evenly over its members'
// countries and counts countries until the threshold share.
func effectiveByCountry(entities []models.Entity, totalStake uint64, threshold float64) int {
	weights := map[string]float64{}
	for i := range entities {
		e := &entities[i]
		if len(e.Members) == 0 {
			weights["Unknown"] += float64(e.TotalWeight)
			continue
		}
		perValidator := float64(e.TotalWeight) / float64(len(e.Members))
		for _, m := range e.Members {
			country := m.Geo.Country.Code
			if country == "" {
				country = "Unknown"
			}
			weights[country] += perValidator
		}
	}
	return countToThreshold(maps.Values(weights), float64(totalStake)*threshold)
}

func countToThreshold(weights []float64, target float64) int {
	sort.Sort(sort.Reverse(sort.Float64Slice(weights)))
	cum := 0.0
	for i, w := range weights {
		cum += w
		if cum >= target {
			return i + 1
		}
	}
	return len(weights)
}

func groupStakes(stakes map[string]float64, counts map[string]int, totalStake uint64) []GroupStake {
	out := make([]GroupStake, 0, len(stakes))
	for name, s := range stakes {
		pct := 0.0
		if totalStake > 0 {
			pct = s / float64(totalStake) * 100
		}
		out = append(out, GroupStake{
			Name:       name,
			Validators: counts[name],
			StakePct:   pct,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StakePct != out[j].StakePct {
			return out[i].StakePct > out[j].StakePct
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortSharedGroups(groups []SharedGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i].Ranks) != len(groups[j].Ranks) {
			return len(groups[i].Ranks) > len(groups[j].Ranks)
		}
		return groups[i].Name < groups[j].Name
	})
}

func sortedKeys(counts map[string]int) []string {
	keys := maps.Keys(counts)
	slices.Sort(keys)
	return keys
}

func subnet24(ip string) string {
	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		return ""
	}
	return strings.Join(parts[:3], ".") + ".0/24"
}
