//go:build tools

// Package tools pins the lint and test runners used by the development workflow.
package tools

import (
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "gotest.tools/gotestsum"
)
