// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package report

import (
	"errors"
	"io"
	"text/template"

	"github.com/ava-labs/avalanche-stakes/pkg/history"
	"github.com/ava-labs/avalanche-stakes/pkg/models"
)

var errNoResults = errors.New("no results to report")

const summaryTemplate = `# Avalanche Validator Stake Distribution Analysis

## Summary

Analysis of GINI and Nakamoto coefficients for Avalanche validators,
**grouped by reward address** (i.e., ownership entities).

- **Data Period**: {{.Earliest.Date}} to {{.Latest.Date}}
- **Data Points**: {{len .Results}} quarterly snapshots

## Latest Metrics ({{.Latest.Date}})

| Metric | Value |
|--------|-------|
| Total Validators | {{.Latest.Validators}} |
| Unique Entities | {{.Latest.Entities}} |
| Total Stake | {{printf "%.1f" .Latest.StakeMillions}}M AVAX |
| GINI (incl. delegations) | {{printf "%.1f" .Latest.GiniTotalPct}}% |
| GINI (excl. delegations) | {{printf "%.1f" .Latest.GiniOwnPct}}% |
| Nakamoto @ 30% | {{.Latest.Nakamoto30}} entities |
| Nakamoto @ 33% | {{.Latest.Nakamoto33}} entities |
| Nakamoto @ 50% | {{.Latest.Nakamoto50}} entities |

## Key Definitions

- **GINI Coefficient**: Measures stake inequality (0% = perfect equality, 100% = one entity holds all)
- **Nakamoto Coefficient @ X%**: Minimum number of entities that together control at least X% of total stake
- **Entity**: A group of validators sharing the same reward address(es)

## Quarterly Data

| Quarter | Date | Validators | Entities | Stake (M AVAX) | GINI (%) | Nakamoto (30%) |
|---------|------|------------|----------|----------------|----------|----------------|
{{range .Results -}}
| {{.Quarter}} | {{.Date}} | {{.Validators}} | {{.Entities}} | {{printf "%.1f" .StakeMillions}} | {{printf "%.1f" .GiniTotalPct}} | {{.Nakamoto30}} |
{{end}}
## Plots

- [GINI History](gini_history.svg)
- [Nakamoto History](nakamoto_history.svg)
- [Combined Metrics](combined_history.svg)
- [Validators vs Entities](entities_history.svg)

## Interpretation

- **Higher GINI** = more concentrated stake distribution (less decentralized)
- **Lower Nakamoto** = fewer entities needed to control significant stake (less decentralized)
`

type summaryData struct {
	Results  []models.MetricResult
	Earliest models.MetricResult
	Latest   models.MetricResult
}

// WriteSummaryMarkdown renders the quarterly metric series as a markdown
// report with a latest-metrics table and the full history.
func WriteSummaryMarkdown(w io.Writer, results []models.MetricResult) error {
	if len(results) == 0 {
		return errNoResults
	}
	tmpl := template.Must(template.New("summary").Parse(summaryTemplate))
	return tmpl.Execute(w, summaryData{
		Results:  results,
		Earliest: results[0],
		Latest:   results[len(results)-1],
	})
}

const nakamotoTemplate = `# Nakamoto-{{printf "%.0f" .ThresholdPct}} Set Analysis

## Overview

Analysis of the entities that together control at least {{printf "%.0f" .ThresholdPct}}% of the total
stake, using extended validator data with GeoIP metadata.

- **Data Period**: {{.Earliest.Date}} to {{.Latest.Date}}
- **Quarterly Snapshots**: {{len .Results}}

## Current State ({{.Latest.Date}})

| Metric | Value |
|--------|-------|
| Entities in Set | {{.Latest.Size}} |
| Validators Operated | {{.Latest.SetValidators}} |
| Stake Controlled | {{printf "%.1f" .Latest.StakeSharePct}}% |
| Unique Countries | {{.Latest.CountryCount}} |
| Unique ASNs | {{.Latest.ASNCount}} |
| ASN Concentration (HHI) | {{printf "%.0f" .Latest.HHI}} |

## Current Top Entities

| Rank | Address | Stake % | Validators |
|------|---------|---------|------------|
{{range $i, $e := .Latest.Entities -}}
| {{inc $i}} | ` + "`{{$e.Address}}`" + ` | {{printf "%.2f" (pct $e.StakeShare)}}% | {{$e.Validators}} |
{{end}}
## Entity Persistence

How long do entities stay in the covering set?

- **Total unique entities ever in the set**: {{.Persistence.TotalUnique}}
- **Persistent** (>50% of quarters): {{len .Persistence.Persistent}}
- **Occasional** (25-50% of quarters): {{len .Persistence.Occasional}}
- **Transient** (<25% of quarters): {{len .Persistence.Transient}}
{{if .Persistence.Persistent}}
### Persistent Entities
{{range .Persistence.Persistent}}
- ` + "`{{.Address}}`" + `: {{.Appearances}}/{{$.Persistence.Quarters}} quarters ({{printf "%.0f" .SharePct}}%)
{{- end}}
{{end}}
## Plots

- [Geographic Diversity](nakamoto_geography.svg)
`

type nakamotoData struct {
	Results      []models.NakamotoSetResult
	Earliest     models.NakamotoSetResult
	Latest       models.NakamotoSetResult
	ThresholdPct float64
	Persistence  history.PersistenceReport
}

// WriteNakamotoMarkdown renders the covering-set series and the entity
// persistence classification as a markdown report.
func WriteNakamotoMarkdown(w io.Writer, results []models.NakamotoSetResult, persistence history.PersistenceReport) error {
	if len(results) == 0 {
		return errNoResults
	}
	tmpl := template.Must(template.New("nakamoto").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
		"pct": func(f float64) float64 { return f * 100 },
	}).Parse(nakamotoTemplate))
	latest := results[len(results)-1]
	return tmpl.Execute(w, nakamotoData{
		Results:      results,
		Earliest:     results[0],
		Latest:       latest,
		ThresholdPct: latest.Threshold * 100,
		Persistence:  persistence,
	})
}
