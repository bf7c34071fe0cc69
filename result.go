package xorerrors

// Result holds either a value of type T or an Error.
// The zero Result holds the zero value of T and no error.
type Result[T any] struct {
	value T
	err   Error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail returns a failed Result holding err.
// A nil err produces a successful Result holding the zero value of T.
func Fail[T any](err Error) Result[T] {
	return Result[T]{err: err}
}

// Wrap builds a Result from a conventional (value, error) pair, converting
// a non-nil err with From.
//
// Example:
//
//	res := xorerrors.Wrap(os.ReadFile(path))
func Wrap[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](From(err, nil))
	}
	return Ok(v)
}

// Get returns the value and error in the conventional Go shape.
// The error is an untyped nil when the Result is successful.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		return r.value, r.err
	}
	return r.value, nil
}

// IsOk reports whether the Result holds no error.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Err returns the held Error, or nil.
func (r Result[T]) Err() Error { return r.err }

// Value returns the held value, which is the zero value of T on failure.
func (r Result[T]) Value() T { return r.value }
