// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package history

import (
	"sort"

	"github.com/ava-labs/avalanche-stakes/pkg/models"
)

// EntityPersistence records how often one reward address appeared in the
// covering set across the analyzed quarters.
type EntityPersistence struct {
	Address     string // truncated for display
	Appearances int
	SharePct    float64
}

// PersistenceReport classifies covering-set members by how long they stay
// in the set: persistent (>50% of quarters), occasional (25-50%), and
// transient (<25%).
type PersistenceReport struct {
	Quarters    int
	TotalUnique int
	Persistent  []EntityPersistence
	Occasional  []EntityPersistence
	Transient   []EntityPersistence
}

// TrackPersistence tallies covering-set membership per full reward address
// over the given chronological series.
func TrackPersistence(results []models.NakamotoSetResult) PersistenceReport {
	appearances := map[string]int{}
	short := map[string]string{}
	for _, r := range results {
		for _, e := range r.Entities {
			appearances[e.FullAddress]++
			short[e.FullAddress] = e.Address
		}
	}

	report := PersistenceReport{
		Quarters:    len(results),
		TotalUnique: len(appearances),
	}
	for addr, n := range appearances {
		entry := EntityPersistence{
			Address:     short[addr],
			Appearances: n,
			SharePct:    float64(n) / float64(len(results)) * 100,
		}
		switch {
		case entry.SharePct > 50:
			report.Persistent = append(report.Persistent, entry)
		case entry.SharePct > 25:
			report.Occasional = append(report.Occasional, entry)
		default:
			report.Transient = append(report.Transient, entry)
		}
	}
	sortByShare(report.Persistent)
	sortByShare(report.Occasional)
	sortByShare(report.Transient)
	return report
}

func sortByShare(entries []EntityPersistence) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].SharePct != entries[j].SharePct {
			return entries[i].SharePct > entries[j].SharePct
		}
		return entries[i].Address < entries[j].Address
	})
}
