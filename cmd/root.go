// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-stakes/cmd/distributioncmd"
	"github.com/ava-labs/avalanche-stakes/cmd/metricscmd"
	"github.com/ava-labs/avalanche-stakes/cmd/nakamotocmd"
	"github.com/ava-labs/avalanche-stakes/pkg/application"
	"github.com/ava-labs/avalanche-stakes/pkg/cobrautils"
	"github.com/ava-labs/avalanche-stakes/pkg/config"
	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"github.com/ava-labs/avalanche-stakes/pkg/ux"
)

var (
	app *application.Stakes

	logLevel  string
	baseDir   string
	dataDir   string
	outputDir string
	cfgFile   string

	Version = ""
)

// NewRootCmd assembles the command tree. The shared app is populated in
// PersistentPreRunE so flags are parsed before logging is configured.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "avalanche-stakes",
		Long: `Avalanche Stakes computes decentralization metrics for the Avalanche
validator set from dated JSON snapshots: GINI coefficients of the stake
distribution and Nakamoto coefficients at several thresholds, with
validators grouped into ownership entities by their reward addresses.

To get started, point --data-dir at a directory of YYYY-MM-DD snapshot
folders and run avalanche-stakes metrics history.`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "base directory (defaults to ~/"+constants.BaseDirName+")")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the dated snapshot folders")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "directory the reports are written to")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")

	app = application.New()

	// avalanche-stakes metrics
	rootCmd.AddCommand(metricscmd.NewCmd(app))
	// avalanche-stakes distribution
	rootCmd.AddCommand(distributioncmd.NewCmd(app))
	// avalanche-stakes nakamoto
	rootCmd.AddCommand(nakamotocmd.NewCmd(app))

	cobrautils.ConfigureRootCmd(rootCmd)
	return rootCmd
}

func createApp(_ *cobra.Command, _ []string) error {
	if baseDir == "" {
		usr, err := user.Current()
		if err != nil {
			return fmt.Errorf("unable to get system user: %w", err)
		}
		baseDir = filepath.Join(usr.HomeDir, constants.BaseDirName)
	}
	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed creating the basedir %s: %w", baseDir, err)
	}

	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	conf := config.New()
	configPath := cfgFile
	if configPath == "" {
		configPath = filepath.Join(baseDir, constants.ConfigFileName)
	}
	conf.SetConfig(log, configPath)

	app.Setup(baseDir, log, conf, afero.NewOsFs())

	// config values apply first, flags win
	if conf.ConfigValueIsSet(constants.ConfigDataDirKey) {
		app.SetDataDir(conf.GetConfigStringValue(constants.ConfigDataDirKey))
	}
	if conf.ConfigValueIsSet(constants.ConfigOutputDirKey) {
		app.SetOutputDir(conf.GetConfigStringValue(constants.ConfigOutputDirKey))
	}
	app.SetDataDir(dataDir)
	app.SetOutputDir(outputDir)
	return nil
}

func setupLogging(baseDir string) (logging.Logger, error) {
	var err error

	logConfig := logging.Config{}
	logConfig.LogLevel = logging.Info
	logConfig.DisplayLevel, err = logging.ToLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	logConfig.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logConfig.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	logConfig.LogFormat = logging.Colors
	logConfig.MaxSize = constants.MaxLogFileSize
	logConfig.MaxFiles = constants.MaxNumOfLogFiles
	logConfig.MaxAge = constants.RetainOldFiles

	factory := logging.NewFactory(logConfig)
	log, err := factory.Make(constants.LogName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	cobrautils.HandleErrors(err)
}
