// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"io"
	"testing"

	"github.com/ava-labs/avalanche-stakes/pkg/application"
	"github.com/ava-labs/avalanche-stakes/pkg/config"
	"github.com/ava-labs/avalanche-stakes/pkg/ux"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(logging.NoLog{}, io.Discard)
	return require.New(t)
}

// SetupTestApp builds an app over an in-memory filesystem.
func SetupTestApp(t *testing.T) *application.Stakes {
	app := application.New()
	app.Setup(t.TempDir(), logging.NoLog{}, &config.Config{}, afero.NewMemMapFs())
	return app
}
