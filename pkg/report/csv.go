// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ava-labs/avalanche-stakes/pkg/models"
)

// WriteCSV writes one row per snapshot date with the computed metrics.
func WriteCSV(w io.Writer, results []models.MetricResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"date", "num_validators", "num_entities", "total_stake_avax",
		"gini_total", "gini_own", "nakamoto_30", "nakamoto_33", "nakamoto_50",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Date,
			strconv.Itoa(r.Validators),
			strconv.Itoa(r.Entities),
			fmt.Sprintf("%.1f", r.StakeAvax()),
			fmt.Sprintf("%.4f", r.GiniTotalPct()),
			fmt.Sprintf("%.4f", r.GiniOwnPct()),
			strconv.Itoa(r.Nakamoto30),
			strconv.Itoa(r.Nakamoto33),
			strconv.Itoa(r.Nakamoto50),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteNakamotoCSV writes one row per snapshot date with the covering-set
// geography.
func WriteNakamotoCSV(w io.Writer, results []models.NakamotoSetResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"date", "n_entities", "n_validators", "stake_pct",
		"n_countries", "n_asns", "top_country", "top_asn",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Date,
			strconv.Itoa(r.Size()),
			strconv.Itoa(r.SetValidators),
			fmt.Sprintf("%.2f", r.StakeSharePct()),
			strconv.Itoa(r.CountryCount()),
			strconv.Itoa(r.ASNCount()),
			r.TopCountry(),
			r.TopASN(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
