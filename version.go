package turing

import _ "embed"

// Version is the release version of the turing binary.
//
//go:embed VERSION
var Version string
