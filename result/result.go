/*
Package result provides a type for the outcome of an operation that may fail.

Replacing a rendered subtree may fail for reasons which are usage errors rather
than exceptional conditions. Such operations hand back a Result, which is
either Ok with a value or Err with an error. Clients match on it the same way
they match on a maybe.Maybe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

// Result is the result of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	Unwrap() (T, error)
	IsOk() bool
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. err should not be nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// Unwrap returns the value and error in Go's customary order.
func (r result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

// --- Matching --------------------------------------------------------------

// Matcher destructures a Result in a switch statement.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
