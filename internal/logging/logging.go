// Package logging builds the hclog logger shared by the launcher components.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/conn-castle/shell-tool-mcp/internal/messages"
)

// Name is the logger name prefixed to every line.
const Name = "shell-tool-mcp"

// DefaultLevel keeps stderr quiet unless diagnostics are requested.
const DefaultLevel = "off"

// Levels lists the accepted level names.
var Levels = []string{"trace", "debug", "info", "warn", "error", "off"}

// ParseLevel maps a level name to an hclog.Level. An empty name means DefaultLevel.
func ParseLevel(name string) (hclog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultLevel
	}
	if name == "off" {
		return hclog.Off, nil
	}
	level := hclog.LevelFromString(name)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf(messages.LoggingUnknownLevelFmt, name)
	}
	return level, nil
}

// ValidLevel reports whether name is accepted by ParseLevel.
func ValidLevel(name string) bool {
	_, err := ParseLevel(name)
	return err == nil
}

// New returns a named logger writing to w (stderr when nil) at level.
// Unknown level names fall back to DefaultLevel.
func New(level string, w io.Writer) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	parsed, err := ParseLevel(level)
	if err != nil {
		parsed = hclog.Off
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Level:  parsed,
		Output: w,
	})
}
