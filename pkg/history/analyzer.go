// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package history drives the longitudinal analysis: it walks the available
// snapshot dates, applies the entity grouper and the metrics per date, and
// assembles ordered result series for the reporting layer. Processing is
// sequential and single-pass; a date with no data is skipped, anything else
// that fails halts the run.
package history

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"github.com/ava-labs/avalanche-stakes/pkg/models"
	"github.com/ava-labs/avalanche-stakes/pkg/snapshot"
	"github.com/ava-labs/avalanche-stakes/pkg/stake"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

type Analyzer struct {
	store *snapshot.Store
	log   logging.Logger
}

func NewAnalyzer(store *snapshot.Store, log logging.Logger) *Analyzer {
	return &Analyzer{
		store: store,
		log:   log,
	}
}

// AnalyzeDate computes the metrics of a single snapshot date.
func (a *Analyzer) AnalyzeDate(date string) (models.MetricResult, error) {
	validators, err := a.store.Load(date)
	if err != nil {
		return models.MetricResult{}, err
	}

	entities := stake.Group(validators)
	totals := stake.TotalWeights(entities)
	owns := stake.OwnWeights(entities)

	result := models.MetricResult{
		Date:       date,
		Validators: len(validators),
		Entities:   len(entities),
		TotalStake: stake.SumWeights(entities),
		GiniTotal:  stake.Gini(totals),
		GiniOwn:    stake.Gini(owns),
		Nakamoto30: stake.Nakamoto(totals, constants.NakamotoThreshold30),
		Nakamoto33: stake.Nakamoto(totals, constants.NakamotoThreshold33),
		Nakamoto50: stake.Nakamoto(totals, constants.NakamotoThreshold50),
	}
	a.log.Info("analyzed snapshot",
		zap.String("date", date),
		zap.Int("validators", result.Validators),
		zap.Int("entities", result.Entities),
		zap.Float64("giniTotal", result.GiniTotal),
		zap.Int("nakamoto30", result.Nakamoto30),
	)
	return result, nil
}

// QuarterlySeries analyzes the last available date of every quarter and
// returns the results in chronological order. Dates without loadable data
// are skipped. The progress callback, if set, fires once per attempted
// date.
func (a *Analyzer) QuarterlySeries(progress func(date string)) ([]models.MetricResult, error) {
	dates, err := a.store.Dates()
	if err != nil {
		return nil, err
	}
	results := []models.MetricResult{}
	for _, date := range snapshot.QuarterlyDates(dates) {
		if progress != nil {
			progress(date)
		}
		result, err := a.AnalyzeDate(date)
		if errors.Is(err, snapshot.ErrNoSnapshotData) {
			a.log.Info("skipping date without data", zap.String("date", date))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed analyzing %s: %w", date, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// NakamotoSetForDate resolves the minimal covering set of the extended
// snapshot at the given threshold, with geo metadata.
func (a *Analyzer) NakamotoSetForDate(date string, threshold float64) (models.NakamotoSetResult, error) {
	validators, err := a.store.LoadExtended(date)
	if err != nil {
		return models.NakamotoSetResult{}, err
	}

	entities := stake.GroupExtended(validators)
	totalStake := stake.SumWeights(entities)
	covering := stake.NakamotoSet(entities, threshold)

	result := models.NakamotoSetResult{
		Date:            date,
		Threshold:       threshold,
		TotalEntities:   len(entities),
		TotalValidators: len(validators),
		TotalStake:      totalStake,
		Countries:       map[string]int{},
		ASNs:            map[string]int{},
	}
	for i := range covering {
		e := &covering[i]
		result.SetStake += e.TotalWeight
		result.SetValidators += len(e.Members)
		for country, n := range e.Countries {
			result.Countries[country] += n
		}
		for asn, n := range e.ASNs {
			result.ASNs[asn] += n
		}
		result.Entities = append(result.Entities, models.SetEntity{
			Address:     e.ShortAddress(),
			FullAddress: e.PrimaryAddress(),
			StakeShare:  e.StakeShare(totalStake),
			Validators:  len(e.Members),
			Countries:   e.Countries,
			ASNs:        e.ASNs,
		})
	}
	return result, nil
}

// NakamotoSeries resolves the covering set for the last extended snapshot
// of every quarter, in chronological order.
func (a *Analyzer) NakamotoSeries(threshold float64, progress func(date string)) ([]models.NakamotoSetResult, error) {
	dates, err := a.store.DatesWithExtended()
	if err != nil {
		return nil, err
	}
	results := []models.NakamotoSetResult{}
	for _, date := range snapshot.QuarterlyDates(dates) {
		if progress != nil {
			progress(date)
		}
		result, err := a.NakamotoSetForDate(date, threshold)
		if errors.Is(err, snapshot.ErrNoSnapshotData) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed resolving covering set for %s: %w", date, err)
		}
		results = append(results, result)
	}
	return results, nil
}
