package domain

// OperationResult reports the outcome of a mutating configuration operation.
// Conflicts is populated only when the operation failed due to a collision.
type OperationResult struct {
	Success   bool
	Message   string
	Conflicts []Binding
}

// OK returns a successful result with an optional message
func OK(message string) OperationResult {
	return OperationResult{Success: true, Message: message}
}

// Failed returns an unsuccessful result with a message
func Failed(message string) OperationResult {
	return OperationResult{Success: false, Message: message}
}

// Conflicted returns an unsuccessful result carrying the colliding bindings
func Conflicted(message string, conflicts ...Binding) OperationResult {
	return OperationResult{Success: false, Message: message, Conflicts: conflicts}
}
