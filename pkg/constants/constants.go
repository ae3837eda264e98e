// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

const (
	BaseDirName = ".avalanche-stakes"

	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	ConfigFileName = "config.json"
	LogDir         = "logs"
	LogName        = "avalanche-stakes"

	// Snapshot directories are named after their capture date.
	SnapshotDateLayout = "2006-01-02"

	// Per-date validator data files. Numbered spillover files
	// (validators.1.json, ...) are loaded alongside the plain one.
	ValidatorsFileName    = "validators.json"
	ValidatorsExtFileName = "validators-ext.json"

	DefaultDataDirName   = "json"
	DefaultOutputDirName = "hist"

	// Stake share thresholds the Nakamoto coefficient is reported at.
	NakamotoThreshold30 = 0.30
	NakamotoThreshold33 = 0.33
	NakamotoThreshold50 = 0.50

	// Shape parameter of the log-logistic reference density.
	LogLogisticShape = 5

	// Quorum fraction of the Avalanche sampling protocol (14 of 20 peers),
	// marked on the distribution plot.
	QuorumFraction = 0.70

	DefaultReferenceSeed = 1

	MetricsCSVName        = "quarterly_data.csv"
	NakamotoCSVName       = "nakamoto_quarterly.csv"
	SummaryMarkdownName   = "SUMMARY.md"
	NakamotoMarkdownName  = "NAKAMOTO_ANALYSIS.md"
	GiniChartName         = "gini_history"
	NakamotoChartName     = "nakamoto_history"
	CombinedChartName     = "combined_history"
	EntitiesChartName     = "entities_history"
	DistributionChartName = "distribution"
	GeographyChartName    = "nakamoto_geography"

	ConfigDataDirKey   = "data-dir"
	ConfigOutputDirKey = "output-dir"
	ConfigSeedKey      = "reference-seed"

	MaxLogFileSize   = 4 * 1024 * 1024
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files
)
