// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package snapshot discovers and loads per-date validator data from a flat
// directory tree: one YYYY-MM-DD directory per capture date, each holding
// validators.json (and validators-ext.json for the extended variant).
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"github.com/ava-labs/avalanche-stakes/pkg/models"
	"github.com/spf13/afero"
	"golang.org/x/exp/slices"
)

// ErrNoSnapshotData marks a date directory with no loadable validator file.
// The time-series driver skips such dates instead of failing.
var ErrNoSnapshotData = errors.New("no snapshot data for date")

var (
	dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// Numbered spillover files are accepted alongside the plain names.
	validatorsRE    = regexp.MustCompile(`^validators(\.[0-9]+)?\.json$`)
	validatorsExtRE = regexp.MustCompile(`^validators-ext(\.[0-9]+)?\.json$`)
)

type Store struct {
	fs      afero.Fs
	dataDir string
}

func New(fs afero.Fs, dataDir string) *Store {
	return &Store{
		fs:      fs,
		dataDir: dataDir,
	}
}

// Dates lists the available snapshot dates in ascending order. Only
// directories with strict YYYY-MM-DD names qualify.
func (s *Store) Dates() ([]string, error) {
	infos, err := afero.ReadDir(s.fs, s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed reading data dir %s: %w", s.dataDir, err)
	}
	dates := []string{}
	for _, info := range infos {
		if info.IsDir() && dateRE.MatchString(info.Name()) {
			dates = append(dates, info.Name())
		}
	}
	slices.Sort(dates)
	return dates, nil
}

// DatesWithExtended lists the snapshot dates that carry extended validator
// data, in ascending order.
func (s *Store) DatesWithExtended() ([]string, error) {
	dates, err := s.Dates()
	if err != nil {
		return nil, err
	}
	extended := []string{}
	for _, date := range dates {
		ok, err := afero.Exists(s.fs, filepath.Join(s.dataDir, date, constants.ValidatorsExtFileName))
		if err != nil {
			return nil, err
		}
		if ok {
			extended = append(extended, date)
		}
	}
	return extended, nil
}

// LatestDate returns the most recent available snapshot date.
func (s *Store) LatestDate() (string, error) {
	dates, err := s.Dates()
	if err != nil {
		return "", err
	}
	if len(dates) == 0 {
		return "", fmt.Errorf("%w: no snapshot directories under %s", ErrNoSnapshotData, s.dataDir)
	}
	return dates[len(dates)-1], nil
}

// Load reads the basic validator data for a date. A missing file maps to
// ErrNoSnapshotData; malformed JSON is fatal and propagates.
func (s *Store) Load(date string) ([]models.ValidatorRecord, error) {
	return s.load(date, validatorsRE)
}

// LoadExtended reads the extended (geo-annotated) validator data for a date.
func (s *Store) LoadExtended(date string) ([]models.ValidatorRecord, error) {
	return s.load(date, validatorsExtRE)
}

func (s *Store) load(date string, pattern *regexp.Regexp) ([]models.ValidatorRecord, error) {
	dir := filepath.Join(s.dataDir, date)
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSnapshotData, date)
	}

	names := []string{}
	for _, info := range infos {
		if !info.IsDir() && pattern.MatchString(info.Name()) {
			names = append(names, info.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSnapshotData, date)
	}
	slices.Sort(names)

	validators := []models.ValidatorRecord{}
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := afero.ReadFile(s.fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed reading %s: %w", path, err)
		}
		var batch []models.ValidatorRecord
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("failed parsing %s: %w", path, err)
		}
		validators = append(validators, batch...)
	}
	return validators, nil
}
