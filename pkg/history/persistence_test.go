// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-stakes/pkg/models"
)

func setResult(date string, addresses ...string) models.NakamotoSetResult {
	r := models.NakamotoSetResult{Date: date}
	for _, addr := range addresses {
		r.Entities = append(r.Entities, models.SetEntity{
			Address:     addr,
			FullAddress: addr,
		})
	}
	return r
}

func TestTrackPersistence(t *testing.T) {
	require := require.New(t)

	// four quarters: "always" appears in all, "half" in two, "once" in one
	results := []models.NakamotoSetResult{
		setResult("2024-03-31", "always", "half"),
		setResult("2024-06-30", "always"),
		setResult("2024-09-30", "always", "half"),
		setResult("2024-12-31", "always", "once"),
	}

	report := TrackPersistence(results)
	require.Equal(4, report.Quarters)
	require.Equal(3, report.TotalUnique)

	require.Len(report.Persistent, 1)
	require.Equal("always", report.Persistent[0].Address)
	require.Equal(4, report.Persistent[0].Appearances)
	require.InDelta(100.0, report.Persistent[0].SharePct, 1e-9)

	require.Len(report.Occasional, 1)
	require.Equal("half", report.Occasional[0].Address)

	require.Len(report.Transient, 1)
	require.Equal("once", report.Transient[0].Address)
}

func TestTrackPersistenceBoundaries(t *testing.T) {
	require := require.New(t)

	// 2 of 4 quarters = 50% is occasional, not persistent
	results := []models.NakamotoSetResult{
		setResult("2024-03-31", "edge"),
		setResult("2024-06-30", "edge"),
		setResult("2024-09-30"),
		setResult("2024-12-31"),
	}
	report := TrackPersistence(results)
	require.Empty(report.Persistent)
	require.Len(report.Occasional, 1)

	// 1 of 4 quarters = 25% is transient
	results = []models.NakamotoSetResult{
		setResult("2024-03-31", "edge"),
		setResult("2024-06-30"),
		setResult("2024-09-30"),
		setResult("2024-12-31"),
	}
	report = TrackPersistence(results)
	require.Empty(report.Occasional)
	require.Len(report.Transient, 1)
}

func TestTrackPersistenceEmpty(t *testing.T) {
	require := require.New(t)

	report := TrackPersistence(nil)
	require.Zero(report.Quarters)
	require.Zero(report.TotalUnique)
	require.Empty(report.Persistent)
}
