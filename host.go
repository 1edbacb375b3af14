// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"code.hybscloud.com/kont"
)

// Host is the scheduler a call body describes work to.
// Every method is a synchronous request that completes immediately;
// the scheduled work itself runs later, outside this package.
type Host interface {
	// OpenBatch opens an empty batch of actions against account.
	OpenBatch(account AccountID) Index
	// Chain opens an empty batch against account that starts only
	// after the batch or join identified by after completes.
	Chain(after Index, account AccountID) Index
	// Join creates a node that completes when all indices complete.
	Join(indices []Index) Index
	// Append adds action to the open batch identified by index.
	Append(index Index, action Action)
	// Redirect makes the resolution of index the result of the call.
	Redirect(index Index)
	// ReturnValue sets the encoded result of the call.
	ReturnValue(payload []byte)
	// Abort records that the call aborted with message.
	// Implementations may return; callers panic afterwards.
	Abort(message string)
}

// Abort messages.
const (
	msgJointAction = "cannot add action to a joint promise"
	msgConsumed    = "promise already consumed by then/and"
	msgForeignEnv  = "cannot join promises from different calls"
	msgSerialize   = "failed to serialize the return value"
	msgNilHandle   = "cannot use a nil promise"
)

// AbortError is the panic value raised when a call aborts.
// Call recovers it and returns it as an error.
type AbortError struct {
	Message string
}

func (e *AbortError) Error() string {
	return "promise: call aborted: " + e.Message
}

// Abort reports message to h and aborts the running call.
func Abort(h Host, message string) {
	h.Abort(message)
	panic(&AbortError{Message: message})
}

// Env binds one call body to its host.
// It tracks the joint indices the call created, so appends to them abort
// before reaching the host, and the handles it created, so a handle marked
// with AsReturn can still redirect the result of the call.
//
// An Env belongs to a single call and must not be shared between goroutines.
type Env struct {
	host    Host
	joints  map[Index]struct{}
	handles []Handle
}

// NewEnv returns an Env issuing requests to h.
func NewEnv(h Host) *Env {
	return &Env{host: h}
}

// Host returns the host the Env issues requests to.
func (e *Env) Host() Host {
	return e.host
}

// Abort aborts the call with message.
func (e *Env) Abort(message string) {
	Abort(e.host, message)
}

func (e *Env) perform(op hostDispatcher) kont.Resumed {
	return op.DispatchHost(e)
}

func (e *Env) markJoint(i Index) {
	if e.joints == nil {
		e.joints = make(map[Index]struct{})
	}
	e.joints[i] = struct{}{}
}

func (e *Env) isJoint(i Index) bool {
	_, ok := e.joints[i]
	return ok
}

func (e *Env) track(h Handle) {
	e.handles = append(e.handles, h)
}

// marked returns the most recently created handle flagged as the
// return value, or nil.
func (e *Env) marked() Handle {
	for i := len(e.handles) - 1; i >= 0; i-- {
		if e.handles[i].IsReturn() {
			return e.handles[i]
		}
	}
	return nil
}
