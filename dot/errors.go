package dot

import "errors"

// ErrInvalidArgument matches every *ShapeError via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	msgArg1NotVector = "Argument 1 is not a 1D-array."
	msgArg2NotVector = "Argument 2 is not a 1D-array."
	msgLengthDiffers = "The arguments do not have the same length."
)

// ShapeError reports a rank or length precondition failure. Arg is the
// 1-based argument at fault, or 0 when the arguments disagree in length.
type ShapeError struct {
	Arg int
	Msg string
}

func (e *ShapeError) Error() string {
	return e.Msg
}

// Is reports true for ErrInvalidArgument.
func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidArgument
}
