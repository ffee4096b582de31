package imaging

import "fmt"

// ValidationError reports operation parameters that were rejected before any
// pixel was touched. The source image is always left unchanged.
type ValidationError struct {
	// Op is the operation that rejected its parameters (e.g. "crop").
	Op string

	// Param names the offending parameter, or is empty when the parameters
	// are only invalid in combination.
	Param string

	// Reason is a human-readable description of the violated constraint.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: invalid %s: %s", e.Op, e.Param, e.Reason)
}

func invalidParam(op, param, format string, args ...interface{}) error {
	return &ValidationError{Op: op, Param: param, Reason: fmt.Sprintf(format, args...)}
}
