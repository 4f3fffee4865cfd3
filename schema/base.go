package schema

// Base is a base schema for embedding in tool inputs and outputs.
type Base struct{}

// String implements Schema interface
func (r Base) String() string {
	return ""
}
