package errutil

import "errors"

// A fixable error is one the user can fix by changing what they provided
// (a flag, a vocabulary file) and trying again. Use ErrIsFixable to check.
func ErrIsFixable(err error) bool {
	var fixableErr FixableError
	return errors.As(err, &fixableErr)
}

// Fixable wraps err as a FixableError. A nil err stays nil.
func Fixable(err error) error {
	if err == nil {
		return nil
	}
	return FixableError{Err: err}
}

type FixableError struct {
	Err error
}

func (f FixableError) Error() string {
	return f.Err.Error()
}

func (f FixableError) Unwrap() error {
	return f.Err
}
