// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package distributioncmd

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/ava-labs/avalanche-stakes/internal/testutils"
	"github.com/ava-labs/avalanche-stakes/pkg/config"
	"github.com/ava-labs/avalanche-stakes/pkg/constants"
)

func TestResolveSeed(t *testing.T) {
	require := testutils.SetupTest(t)
	viper.Reset()
	t.Cleanup(viper.Reset)

	conf := config.New()
	cmd := newPlotCmd()

	// nothing configured, flag untouched: the flag default wins
	require.Equal(uint64(constants.DefaultReferenceSeed), resolveSeed(cmd, conf))

	// configured value applies when the flag was not set explicitly
	viper.Set(constants.ConfigSeedKey, 7)
	require.Equal(uint64(7), resolveSeed(cmd, conf))

	// an explicit flag wins over the configured value
	require.NoError(cmd.Flags().Set("seed", "11"))
	require.Equal(uint64(11), resolveSeed(cmd, conf))
}
