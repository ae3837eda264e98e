// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/afero"

	"github.com/ava-labs/avalanche-stakes/pkg/config"
	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"github.com/ava-labs/avalanche-stakes/pkg/snapshot"
)

// Stakes carries the shared dependencies of all commands. Commands receive
// it by injection so tests can swap the filesystem and logger.
type Stakes struct {
	Log  logging.Logger
	Conf *config.Config
	Fs   afero.Fs

	baseDir   string
	dataDir   string
	outputDir string
}

func New() *Stakes {
	return &Stakes{}
}

func (app *Stakes) Setup(baseDir string, log logging.Logger, conf *config.Config, fs afero.Fs) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Fs = fs
	app.dataDir = filepath.Join(baseDir, constants.DefaultDataDirName)
	app.outputDir = filepath.Join(baseDir, constants.DefaultOutputDirName)
}

func (app *Stakes) GetBaseDir() string {
	return app.baseDir
}

// SetDataDir overrides the snapshot directory, e.g. from a flag or config.
func (app *Stakes) SetDataDir(dir string) {
	if dir != "" {
		app.dataDir = dir
	}
}

func (app *Stakes) SetOutputDir(dir string) {
	if dir != "" {
		app.outputDir = dir
	}
}

func (app *Stakes) GetDataDir() string {
	return app.dataDir
}

func (app *Stakes) GetOutputDir() string {
	return app.outputDir
}

func (app *Stakes) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Stakes) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.ConfigFileName)
}

func (app *Stakes) GetMetricsCSVPath() string {
	return filepath.Join(app.outputDir, constants.MetricsCSVName)
}

func (app *Stakes) GetNakamotoCSVPath() string {
	return filepath.Join(app.outputDir, constants.NakamotoCSVName)
}

func (app *Stakes) GetSummaryMarkdownPath() string {
	return filepath.Join(app.outputDir, constants.SummaryMarkdownName)
}

func (app *Stakes) GetNakamotoMarkdownPath() string {
	return filepath.Join(app.outputDir, constants.NakamotoMarkdownName)
}

// GetChartBasePath returns the extensionless path a chart is rendered to.
func (app *Stakes) GetChartBasePath(name string) string {
	return filepath.Join(app.outputDir, name)
}

func (app *Stakes) SnapshotStore() *snapshot.Store {
	return snapshot.New(app.Fs, app.dataDir)
}

func (app *Stakes) EnsureOutputDir() error {
	return app.Fs.MkdirAll(app.outputDir, constants.DefaultPerms755)
}

func (app *Stakes) WriteOutputFile(path string, data []byte) error {
	if err := app.EnsureOutputDir(); err != nil {
		return err
	}
	return afero.WriteFile(app.Fs, path, data, constants.WriteReadReadPerms)
}
