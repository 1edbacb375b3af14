// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"code.hybscloud.com/kont"
)

// hostDispatcher is the structural interface for host requests.
// DispatchHost applies the request through the call's Env, which keeps
// the bookkeeping the host must not see (joint guard, handle tracking).
type hostDispatcher interface {
	DispatchHost(env *Env) kont.Resumed
}

// hostRequest applies a request to a Host directly.
// The link server uses it on the far side of the transport.
type hostRequest interface {
	apply(h Host) kont.Resumed
}

// OpenBatch is the effect operation for opening a batch against Account.
// Perform(OpenBatch{Account: a}) resumes with the new batch's Index.
type OpenBatch struct {
	kont.Phantom[Index]
	Account AccountID
}

// DispatchHost handles OpenBatch.
func (o OpenBatch) DispatchHost(env *Env) kont.Resumed {
	return o.apply(env.host)
}

func (o OpenBatch) apply(h Host) kont.Resumed {
	return h.OpenBatch(o.Account)
}

// Chain is the effect operation for opening a batch against Account
// that runs after After completes.
// Perform(Chain{After: i, Account: a}) resumes with the new batch's Index.
type Chain struct {
	kont.Phantom[Index]
	After   Index
	Account AccountID
}

// DispatchHost handles Chain.
func (o Chain) DispatchHost(env *Env) kont.Resumed {
	return o.apply(env.host)
}

func (o Chain) apply(h Host) kont.Resumed {
	return h.Chain(o.After, o.Account)
}

// Join is the effect operation for joining Indices.
// Perform(Join{Indices: is}) resumes with the joint Index.
// The Env remembers the result so later appends to it abort.
type Join struct {
	kont.Phantom[Index]
	Indices []Index
}

// DispatchHost handles Join.
func (o Join) DispatchHost(env *Env) kont.Resumed {
	i := env.host.Join(o.Indices)
	env.markJoint(i)
	return i
}

func (o Join) apply(h Host) kont.Resumed {
	return h.Join(o.Indices)
}

// Append is the effect operation for appending Action to the batch Index.
// Appending to a joint index aborts the call.
type Append struct {
	kont.Phantom[struct{}]
	Index  Index
	Action Action
}

// DispatchHost handles Append.
func (o Append) DispatchHost(env *Env) kont.Resumed {
	if env.isJoint(o.Index) {
		env.Abort(msgJointAction)
	}
	return o.apply(env.host)
}

func (o Append) apply(h Host) kont.Resumed {
	h.Append(o.Index, o.Action)
	return struct{}{}
}

// Redirect is the effect operation for making the resolution of Index
// the result of the call.
type Redirect struct {
	kont.Phantom[struct{}]
	Index Index
}

// DispatchHost handles Redirect.
func (o Redirect) DispatchHost(env *Env) kont.Resumed {
	return o.apply(env.host)
}

func (o Redirect) apply(h Host) kont.Resumed {
	h.Redirect(o.Index)
	return struct{}{}
}

// ReturnValue is the effect operation for setting the encoded result of the call.
type ReturnValue struct {
	kont.Phantom[struct{}]
	Payload []byte
}

// DispatchHost handles ReturnValue.
func (o ReturnValue) DispatchHost(env *Env) kont.Resumed {
	return o.apply(env.host)
}

func (o ReturnValue) apply(h Host) kont.Resumed {
	h.ReturnValue(o.Payload)
	return struct{}{}
}

// Panic is the effect operation for aborting the call with Message.
// Dispatching it never resumes.
type Panic struct {
	kont.Phantom[struct{}]
	Message string
}

// DispatchHost handles Panic.
func (o Panic) DispatchHost(env *Env) kont.Resumed {
	env.Abort(o.Message)
	return struct{}{}
}

func (o Panic) apply(h Host) kont.Resumed {
	h.Abort(o.Message)
	return struct{}{}
}
