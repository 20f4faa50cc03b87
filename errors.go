package bezier

import "errors"

// ErrInvalidOperation is matched, via [errors.Is], by every error this
// package returns. All of them describe calls the API disallows, such as
// lowering the order of a single point. Numerical difficulties (slow
// convergence, parameters overshooting [0, 1], stationary points) are never
// reported as errors; the affected operation returns its best estimate.
var ErrInvalidOperation = errors.New("bezier: invalid operation")

var (
	// ErrMinimumOrder is returned when lowering the order of a curve
	// consisting of a single point.
	ErrMinimumOrder = invalidOperation("cannot lower the order of a single point")
	// ErrUnsupportedOrder is returned by [Curve.ManipulateCurvature] for
	// curves that are neither quadratic nor cubic.
	ErrUnsupportedOrder = invalidOperation("only quadratic and cubic curves can be manipulated")
	// ErrZeroDerivative is returned when the zeroth derivative is requested.
	ErrZeroDerivative = invalidOperation("derivative order must be at least 1")
	// ErrContinuityOrder is returned by [Curve.ApplyContinuity] when the
	// curve has too few control points for the requested continuity.
	ErrContinuityOrder = invalidOperation("not enough control points for the requested continuity")
	// ErrIndexOutOfRange is returned when a control point or curve index
	// is out of range.
	ErrIndexOutOfRange = invalidOperation("index out of range")
)

type invalidOperationError struct {
	msg string
}

func invalidOperation(msg string) error {
	return &invalidOperationError{msg: msg}
}

func (e *invalidOperationError) Error() string {
	return "bezier: " + e.msg
}

func (e *invalidOperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}
