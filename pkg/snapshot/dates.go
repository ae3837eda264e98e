// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package snapshot

import (
	"time"

	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"golang.org/x/exp/slices"
)

type yearQuarter struct {
	year    int
	quarter int
}

// QuarterlyDates selects one representative date per calendar quarter: the
// last available date within it. Input order does not matter; the output is
// chronological. Dates not parsing as YYYY-MM-DD are ignored.
func QuarterlyDates(dates []string) []string {
	latest := map[yearQuarter]string{}
	for _, date := range dates {
		t, err := time.Parse(constants.SnapshotDateLayout, date)
		if err != nil {
			continue
		}
		key := yearQuarter{
			year:    t.Year(),
			quarter: (int(t.Month())-1)/3 + 1,
		}
		// Zero-padded ISO dates compare lexicographically in
		// chronological order.
		if date > latest[key] {
			latest[key] = date
		}
	}

	quarterly := make([]string, 0, len(latest))
	for _, date := range latest {
		quarterly = append(quarterly, date)
	}
	slices.Sort(quarterly)
	return quarterly
}
