package errutils

import "emperror.dev/errors"

// As is a generic errors.As: it returns the first error in the chain of err
// that has type T.
func As[T error](err error) (T, bool) {
	var target T
	if err == nil {
		return target, false
	}
	ok := errors.As(err, &target)
	return target, ok
}
