// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package main

import (
	"github.com/ava-labs/avalanche-stakes/cmd"
)

func main() {
	cmd.Execute()
}
