// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"path/filepath"
	"testing"

	"github.com/ava-labs/avalanche-stakes/pkg/constants"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// WriteSnapshot places raw validator JSON under dataDir/date/validators.json
// on the given filesystem.
func WriteSnapshot(t *testing.T, fs afero.Fs, dataDir string, date string, data string) {
	writeSnapshotFile(t, fs, dataDir, date, constants.ValidatorsFileName, data)
}

// WriteExtendedSnapshot places raw extended validator JSON under
// dataDir/date/validators-ext.json.
func WriteExtendedSnapshot(t *testing.T, fs afero.Fs, dataDir string, date string, data string) {
	writeSnapshotFile(t, fs, dataDir, date, constants.ValidatorsExtFileName, data)
}

// WriteSnapshotFile places raw JSON under an arbitrary file name, for the
// numbered spillover variants.
func WriteSnapshotFile(t *testing.T, fs afero.Fs, dataDir string, date string, name string, data string) {
	writeSnapshotFile(t, fs, dataDir, date, name, data)
}

func writeSnapshotFile(t *testing.T, fs afero.Fs, dataDir string, date string, name string, data string) {
	dir := filepath.Join(dataDir, date)
	require.NoError(t, fs.MkdirAll(dir, constants.DefaultPerms755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(data), constants.WriteReadReadPerms))
}
