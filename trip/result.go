package trip

import "github.com/tripforge/tripforge/engine"

// Status is the terminal state of a planning call.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Step records one executed tool invocation of a planning call.
type Step struct {
	// Op the operation's wire name.
	Op string `json:"op"`
	// Input the raw structured request.
	Input string `json:"input,omitempty"`
	// Output the tool's result content.
	Output string `json:"output,omitempty"`
	// IsError marks a typed tool failure.
	IsError bool `json:"is_error,omitempty"`
}

// PlanResult is the terminal value of one planning call. Not mutated after
// construction.
type PlanResult struct {
	// ID unique result identifier.
	ID string `json:"id"`
	// Status success or error.
	Status Status `json:"status"`
	// Provider which reasoning-engine source (or demo) produced the plan.
	Provider engine.Provider `json:"provider"`
	// Report the rendered itinerary text; empty on error.
	Report string `json:"report,omitempty"`
	// Itinerary the structured plan; populated by deterministic synthesis only.
	Itinerary *Itinerary `json:"itinerary,omitempty"`
	// Message human-readable error; empty on success.
	Message string `json:"message,omitempty"`
	// Steps the executed tool invocations, in order.
	Steps []Step `json:"steps,omitempty"`
}

// HasSteps reports whether reasoning steps are available for display.
func (r PlanResult) HasSteps() bool {
	return len(r.Steps) > 0
}
