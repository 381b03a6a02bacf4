package tools

// ValidationError reports a missing required argument or a disallowed value.
// It is raised before any upstream request is attempted.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// UnknownToolError reports a tool name the dispatcher could not resolve.
// Unlike every other failure it is not wrapped into a response envelope:
// an unknown name is a malformed call, not a data-fetch failure.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return "Unknown tool: " + e.Name
}
