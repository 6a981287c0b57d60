// Package doctor diagnoses whether this host can launch the exec MCP server.
package doctor

// Status is the outcome of a single check.
type Status int

// Check outcomes.
const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is one line of doctor output.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
