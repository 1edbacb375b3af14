// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"bytes"
)

// Return hands the result of a call to the host.
//
// A pending handle, whether held as the promise variant or as the value
// itself, is encoded (zero bytes, marked as the result) and the host is
// told to redirect the call's result to it. A nil handle aborts the call.
// Any other value is encoded with c; encoding failure aborts the call.
// When a handle created during the call is marked, either with AsReturn
// or by being encoded inside the value, the result is redirected to the
// most recent one and the encoded value is dropped.
func Return[T any](env *Env, result PromiseOrValue[T], c Codec) {
	if h, ok := result.handle(); ok {
		if !validHandle(h) {
			env.Abort(msgNilHandle)
		}
		h.Encode(nil)
		env.perform(Redirect{Index: h.Index()})
		return
	}
	var buf bytes.Buffer
	if err := result.Encode(&buf, c); err != nil {
		env.Abort(msgSerialize)
	}
	if h := env.marked(); h != nil {
		env.perform(Redirect{Index: h.Index()})
		return
	}
	env.perform(ReturnValue{Payload: buf.Bytes()})
}

// Call runs body as one call against h and hands its result to h.
// An abort inside the call is returned as *AbortError; the host has
// already been told through Host.Abort. Other panics propagate.
func Call[T any](h Host, c Codec, body func(env *Env) PromiseOrValue[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*AbortError)
			if !ok {
				panic(r)
			}
			err = ae
		}
	}()
	env := NewEnv(h)
	Return(env, body(env), c)
	return nil
}
