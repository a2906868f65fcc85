package solid

import "fmt"

// InvalidParameterError reports an assembly parameter outside its domain.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("solid: invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

// EmptyResultError reports an operation that yielded no volume where
// one was required. It is signaled eagerly so downstream boolean
// composition never sees a null operand.
type EmptyResultError struct {
	Op     string
	Reason string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("solid: empty result from %s: %s", e.Op, e.Reason)
}
