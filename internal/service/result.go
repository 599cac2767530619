package service

import "github.com/deppfellow/lightbnb/internal/sqlerr"

// Result is the outcome of a QueryService operation.
//
// On failure Value is the zero value (nil pointer or nil slice), so a
// caller that only inspects Value sees "no usable data". Err keeps the
// underlying error and Reason classifies it.
type Result[T any] struct {
	Value  T
	Err    error
	Reason sqlerr.Reason
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

func succeeded[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func failed[T any](err error) Result[T] {
	return Result[T]{Err: err, Reason: sqlerr.Classify(err)}
}
