// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/ava-labs/avalanche-stakes/internal/testutils"
	"github.com/ava-labs/avalanche-stakes/pkg/history"
	"github.com/ava-labs/avalanche-stakes/pkg/models"
)

func sampleResults() []models.MetricResult {
	return []models.MetricResult{
		{
			Date:       "2024-03-31",
			Validators: 1200,
			Entities:   900,
			TotalStake: 250_000_000_000_000_000,
			GiniTotal:  0.82,
			GiniOwn:    0.78,
			Nakamoto30: 20,
			Nakamoto33: 23,
			Nakamoto50: 48,
		},
		{
			Date:       "2024-06-30",
			Validators: 1300,
			Entities:   950,
			TotalStake: 260_000_000_000_000_000,
			GiniTotal:  0.80,
			GiniOwn:    0.77,
			Nakamoto30: 22,
			Nakamoto33: 25,
			Nakamoto50: 51,
		},
	}
}

func sampleNakamotoResults() []models.NakamotoSetResult {
	return []models.NakamotoSetResult{
		{
			Date:            "2024-03-31",
			Threshold:       0.30,
			TotalEntities:   900,
			TotalValidators: 1200,
			TotalStake:      100,
			SetStake:        31,
			SetValidators:   210,
			Entities: []models.SetEntity{
				{Address: "P-avax1whale...abcd", FullAddress: "P-avax1whale", StakeShare: 0.18, Validators: 140},
				{Address: "P-avax1orca...efgh", FullAddress: "P-avax1orca", StakeShare: 0.13, Validators: 70},
			},
			Countries: map[string]int{"US": 150, "DE": 60},
			ASNs:      map[string]int{"AS16509 Amazon.com, Inc.": 180, "AS24940 Hetzner Online GmbH": 30},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	require := testutils.SetupTest(t)

	var buf bytes.Buffer
	require.NoError(WriteCSV(&buf, sampleResults()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(lines, 3)
	require.Equal(
		"date,num_validators,num_entities,total_stake_avax,gini_total,gini_own,nakamoto_30,nakamoto_33,nakamoto_50",
		lines[0],
	)
	require.Contains(lines[1], "2024-03-31,1200,900,250000000.0,82.0000,78.0000,20,23,48")
}

func TestWriteNakamotoCSV(t *testing.T) {
	require := testutils.SetupTest(t)

	var buf bytes.Buffer
	require.NoError(WriteNakamotoCSV(&buf, sampleNakamotoResults()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(lines, 2)
	require.Contains(lines[1], "2024-03-31,2,210,31.00,2,2,US,")
}

func TestWriteSummaryMarkdown(t *testing.T) {
	require := testutils.SetupTest(t)

	var buf bytes.Buffer
	require.NoError(WriteSummaryMarkdown(&buf, sampleResults()))

	out := buf.String()
	require.Contains(out, "**Data Period**: 2024-03-31 to 2024-06-30")
	require.Contains(out, "| Total Validators | 1300 |")
	require.Contains(out, "| 2024Q1 | 2024-03-31 |")
	require.Contains(out, "| 2024Q2 | 2024-06-30 |")
	require.Contains(out, "Nakamoto @ 30% | 22 entities")
}

func TestWriteSummaryMarkdownEmpty(t *testing.T) {
	require := testutils.SetupTest(t)
	require.Error(WriteSummaryMarkdown(&bytes.Buffer{}, nil))
}

func TestWriteNakamotoMarkdown(t *testing.T) {
	require := testutils.SetupTest(t)

	results := sampleNakamotoResults()
	persistence := history.TrackPersistence(results)

	var buf bytes.Buffer
	require.NoError(WriteNakamotoMarkdown(&buf, results, persistence))

	out := buf.String()
	require.Contains(out, "# Nakamoto-30 Set Analysis")
	require.Contains(out, "| Entities in Set | 2 |")
	require.Contains(out, "| 1 | `P-avax1whale...abcd` | 18.00% | 140 |")
	require.Contains(out, "**Total unique entities ever in the set**: 2")
}

func TestPrintHistoryTable(t *testing.T) {
	require := testutils.SetupTest(t)

	var buf bytes.Buffer
	PrintHistoryTable(&buf, sampleResults())

	out := buf.String()
	require.Contains(out, "2024Q1")
	require.Contains(out, "2024-06-30")
	require.Contains(out, "82.0")
}

func TestSnapshotTable(t *testing.T) {
	require := testutils.SetupTest(t)

	out := SnapshotTable(sampleResults()[0]).Render()
	require.Contains(out, "2024-03-31")
	require.Contains(out, "1,200")
	require.Contains(out, "250.0M AVAX")
}

func TestNakamotoSetTable(t *testing.T) {
	require := testutils.SetupTest(t)

	out := NakamotoSetTable(sampleNakamotoResults()[0]).Render()
	require.Contains(out, "P-avax1whale...abcd")
	require.Contains(out, "18.00")
}

func TestRenderChart(t *testing.T) {
	require := testutils.SetupTest(t)

	fs := afero.NewMemMapFs()
	require.NoError(RenderChart(fs, GiniHistoryChart(sampleResults()), "/out/gini_history"))

	for _, path := range []string{"/out/gini_history.svg", "/out/gini_history.png"} {
		info, err := fs.Stat(path)
		require.NoError(err)
		require.NotZero(info.Size())
	}
}

func TestQuorumSplitIndex(t *testing.T) {
	require := testutils.SetupTest(t)

	// ascending cumulative of [10, 10, 10, 70]
	cum := []float64{10, 20, 30, 100}
	// the last entry alone controls 70%, so the split sits before it
	require.Equal(3, QuorumSplitIndex(cum, 0.70))
	require.Equal(0, QuorumSplitIndex(nil, 0.70))
}
