// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package report renders the analysis results as tables, CSV files,
// markdown summaries and charts. It only consumes result values; the
// statistical core stays free of output concerns.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ava-labs/avalanche-stakes/pkg/models"
	"github.com/ava-labs/avalanche-stakes/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/exp/slices"
)

func sortStrings(items []string) []string {
	slices.Sort(items)
	return items
}

// PrintHistoryTable writes the quarterly metric series as a plain table.
func PrintHistoryTable(w io.Writer, results []models.MetricResult) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{
		"Quarter", "Date", "Validators", "Entities",
		"Stake (M AVAX)", "GINI incl. (%)", "GINI excl. (%)",
		"N@30%", "N@33%", "N@50%",
	})
	t.SetRowLine(true)
	for _, r := range results {
		t.Append([]string{
			r.Quarter(),
			r.Date,
			strconv.Itoa(r.Validators),
			strconv.Itoa(r.Entities),
			fmt.Sprintf("%.1f", r.StakeMillions()),
			fmt.Sprintf("%.1f", r.GiniTotalPct()),
			fmt.Sprintf("%.1f", r.GiniOwnPct()),
			strconv.Itoa(r.Nakamoto30),
			strconv.Itoa(r.Nakamoto33),
			strconv.Itoa(r.Nakamoto50),
		})
	}
	t.Render()
}

// SnapshotTable builds the single-date metric summary.
func SnapshotTable(r models.MetricResult) table.Writer {
	t := ux.DefaultTable(
		fmt.Sprintf("Stake Distribution Metrics [%s]", r.Date),
		table.Row{"Metric", "Value"},
	)
	t.AppendRow(table.Row{"Validators", ux.ThousandsSeparated(uint64(r.Validators))})
	t.AppendRow(table.Row{"Entities (by reward address)", ux.ThousandsSeparated(uint64(r.Entities))})
	t.AppendRow(table.Row{"Total Stake", fmt.Sprintf("%.1fM AVAX", r.StakeMillions())})
	t.AppendRow(table.Row{"GINI (incl. delegations)", fmt.Sprintf("%.1f%%", r.GiniTotalPct())})
	t.AppendRow(table.Row{"GINI (excl. delegations)", fmt.Sprintf("%.1f%%", r.GiniOwnPct())})
	t.AppendRow(table.Row{"Nakamoto @ 30%", fmt.Sprintf("%d entities", r.Nakamoto30)})
	t.AppendRow(table.Row{"Nakamoto @ 33%", fmt.Sprintf("%d entities", r.Nakamoto33)})
	t.AppendRow(table.Row{"Nakamoto @ 50%", fmt.Sprintf("%d entities", r.Nakamoto50)})
	return t
}

// NakamotoSetTable builds the covering-set membership table of one date.
func NakamotoSetTable(r models.NakamotoSetResult) table.Writer {
	t := ux.DefaultTable(
		fmt.Sprintf("Nakamoto-%.0f Set [%s]", r.Threshold*100, r.Date),
		table.Row{"Rank", "Address", "Stake %", "Validators", "Countries"},
	)
	for i, e := range r.Entities {
		countries := make([]string, 0, len(e.Countries))
		for country := range e.Countries {
			countries = append(countries, country)
		}
		t.AppendRow(table.Row{
			i + 1,
			e.Address,
			fmt.Sprintf("%.2f", e.StakeShare*100),
			e.Validators,
			ux.JoinOrUnknown(sortStrings(countries)),
		})
	}
	return t
}

// PrintNakamotoHistoryTable writes the quarterly covering-set overview.
func PrintNakamotoHistoryTable(w io.Writer, results []models.NakamotoSetResult) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{
		"Quarter", "Date", "Entities", "Validators",
		"Countries", "ASNs", "Stake %",
	})
	for _, r := range results {
		t.Append([]string{
			r.Quarter(),
			r.Date,
			strconv.Itoa(r.Size()),
			strconv.Itoa(r.SetValidators),
			strconv.Itoa(r.CountryCount()),
			strconv.Itoa(r.ASNCount()),
			fmt.Sprintf("%.1f", r.StakeSharePct()),
		})
	}
	t.Render()
}
