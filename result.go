// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"errors"
	"io"

	"code.hybscloud.com/kont"
)

var errNilHandle = errors.New("promise: nil handle")

// PromiseOrValue is the result of a call: either an immediate value or a
// pending handle whose resolution becomes the result.
// Left holds the value, Right the handle, so the zero value is
// Value of T's zero value.
type PromiseOrValue[T any] struct {
	e kont.Either[T, Handle]
}

// Value returns a result holding v.
func Value[T any](v T) PromiseOrValue[T] {
	return PromiseOrValue[T]{e: kont.Left[T, Handle](v)}
}

// FromPromise returns a result deferred to h.
func FromPromise[T any](h Handle) PromiseOrValue[T] {
	return PromiseOrValue[T]{e: kont.Right[T, Handle](h)}
}

// IsPromise reports whether r holds a handle.
func (r PromiseOrValue[T]) IsPromise() bool {
	return r.e.IsRight()
}

// Promise returns the held handle, if any.
func (r PromiseOrValue[T]) Promise() (Handle, bool) {
	return r.e.GetRight()
}

// Value returns the held value, if any.
func (r PromiseOrValue[T]) Value() (T, bool) {
	return r.e.GetLeft()
}

// Encode writes the result with c.
// A value is encoded exactly as c encodes it on its own. A handle, held
// either way, writes nothing and is marked as the call's result.
func (r PromiseOrValue[T]) Encode(w io.Writer, c Codec) error {
	if h, ok := r.handle(); ok {
		if !validHandle(h) {
			return errNilHandle
		}
		return h.Encode(w)
	}
	v, _ := r.e.GetLeft()
	b, err := c.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// handle returns the held handle, including a value that is itself one.
func (r PromiseOrValue[T]) handle() (Handle, bool) {
	if h, ok := r.e.GetRight(); ok {
		return h, true
	}
	v, _ := r.e.GetLeft()
	h, ok := any(v).(Handle)
	return h, ok
}
