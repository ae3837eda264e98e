// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nakamotocmd

import (
	"testing"

	"github.com/ava-labs/avalanche-stakes/internal/testutils"
	"github.com/ava-labs/avalanche-stakes/pkg/cobrautils"
)

func TestValidateThreshold(t *testing.T) {
	require := testutils.SetupTest(t)

	cmd := newSetCmd()
	for _, threshold := range []float64{0.000001, 0.30, 0.3333, 0.50, 1} {
		require.NoError(validateThreshold(cmd, threshold))
	}
	for _, threshold := range []float64{-0.5, 0, 1.000001, 30} {
		err := validateThreshold(cmd, threshold)
		require.Error(err)
		var usageErr cobrautils.UsageError
		require.ErrorAs(err, &usageErr)
	}
}
