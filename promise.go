// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"io"
)

// Kind distinguishes a single batch from a join node.
type Kind uint8

const (
	// KindSingle is a batch of actions against one receiver.
	KindSingle Kind = iota
	// KindJoint is the combined completion of several handles.
	KindJoint
)

func (k Kind) String() string {
	if k == KindJoint {
		return "joint"
	}
	return "single"
}

// Handle is a scheduled batch or join node.
// It is implemented by *Promise and *Joint only.
type Handle interface {
	// Index returns the host identifier of the handle.
	Index() Index
	// Kind reports whether the handle is a batch or a join node.
	Kind() Kind
	// Then schedules a new batch against account after the handle completes.
	Then(account AccountID) *Promise
	// And joins the handle with other.
	And(other Handle) *Joint
	// IsReturn reports whether the handle is marked as the call's result.
	IsReturn() bool
	// Encode writes nothing and marks the handle as the call's result.
	Encode(w io.Writer) error

	base() *handle
}

type handle struct {
	env          *Env
	index        Index
	consumed     bool
	shouldReturn bool
}

func (h *handle) base() *handle { return h }

// validHandle reports whether h is a non-nil *Promise or *Joint.
func validHandle(h Handle) bool {
	switch v := h.(type) {
	case *Promise:
		return v != nil
	case *Joint:
		return v != nil
	}
	return false
}

// Index returns the host identifier of the handle.
func (h *handle) Index() Index { return h.index }

// IsReturn reports whether the handle is marked as the call's result.
func (h *handle) IsReturn() bool { return h.shouldReturn }

// Encode marks the handle as the call's result and writes zero bytes.
// The host treats a call that returned a pending handle as returning
// whatever that handle resolves to.
func (h *handle) Encode(io.Writer) error {
	h.shouldReturn = true
	return nil
}

// MarshalJSON marks the handle as the call's result and encodes it as
// null, so a handle nested in a returned value still redirects the call.
func (h *handle) MarshalJSON() ([]byte, error) {
	h.shouldReturn = true
	return []byte("null"), nil
}

// use aborts the call if the handle was consumed by Then or And.
func (h *handle) use() {
	if h.consumed {
		h.env.Abort(msgConsumed)
	}
}

// Then schedules a new batch against account that runs after the handle
// completes. The handle is consumed.
func (h *handle) Then(account AccountID) *Promise {
	h.use()
	h.consumed = true
	i := h.env.perform(Chain{After: h.index, Account: account}).(Index)
	return h.env.newPromise(i)
}

// And joins the handle with other in one host request.
// Both handles are consumed; only the returned Joint stays usable.
func (h *handle) And(other Handle) *Joint {
	return join(h, []Handle{other})
}

// All joins every given handle with a single host request.
// Joining n handles pairwise with And costs n-1 requests.
func All(first Handle, more ...Handle) *Joint {
	return join(first.base(), more)
}

func join(h *handle, more []Handle) *Joint {
	h.use()
	h.consumed = true
	indices := make([]Index, 0, 1+len(more))
	indices = append(indices, h.index)
	for _, o := range more {
		if !validHandle(o) {
			h.env.Abort(msgNilHandle)
		}
		b := o.base()
		if b.env != h.env {
			h.env.Abort(msgForeignEnv)
		}
		b.use()
		b.consumed = true
		indices = append(indices, b.index)
	}
	i := h.env.perform(Join{Indices: indices}).(Index)
	j := &Joint{handle{env: h.env, index: i}}
	h.env.track(j)
	return j
}

// Promise is a batch of actions against one receiver.
//
// Actions are sent to the host as they are appended; only the choice of
// the call's result is deferred to the call boundary:
//
//	p := promise.New(env, "bob.near").
//		CreateAccount().
//		Transfer(promise.NewBalance(1000)).
//		AddFullAccessKey(pk)
type Promise struct {
	handle
}

// New opens a batch against account.
func New(env *Env, account AccountID) *Promise {
	i := env.perform(OpenBatch{Account: account}).(Index)
	return env.newPromise(i)
}

func (e *Env) newPromise(i Index) *Promise {
	p := &Promise{handle{env: e, index: i}}
	e.track(p)
	return p
}

// Kind returns KindSingle.
func (p *Promise) Kind() Kind { return KindSingle }

// AsReturn marks p as the call's result and returns p.
// It only matters when p is not returned from the call directly.
func (p *Promise) AsReturn() *Promise {
	p.shouldReturn = true
	return p
}

// Add appends a to the batch.
func (p *Promise) Add(a Action) *Promise {
	p.use()
	p.env.perform(Append{Index: p.index, Action: a})
	return p
}

// CreateAccount creates the receiver account.
func (p *Promise) CreateAccount() *Promise {
	return p.Add(CreateAccount{})
}

// DeployContract deploys code to the receiver account.
func (p *Promise) DeployContract(code []byte) *Promise {
	return p.Add(DeployContract{Code: code})
}

// FunctionCall calls method on the receiver.
func (p *Promise) FunctionCall(method string, args []byte, deposit Balance, gas Gas) *Promise {
	return p.Add(FunctionCall{Method: method, Args: args, Deposit: deposit, Gas: gas})
}

// Transfer sends amount to the receiver.
func (p *Promise) Transfer(amount Balance) *Promise {
	return p.Add(Transfer{Deposit: amount})
}

// Stake stakes amount under key.
func (p *Promise) Stake(amount Balance, key PublicKey) *Promise {
	return p.Add(Stake{Stake: amount, PublicKey: key})
}

// AddFullAccessKey adds a full access key with nonce 0.
func (p *Promise) AddFullAccessKey(key PublicKey) *Promise {
	return p.AddFullAccessKeyWithNonce(key, 0)
}

// AddFullAccessKeyWithNonce adds a full access key with the given nonce.
func (p *Promise) AddFullAccessKeyWithNonce(key PublicKey, nonce uint64) *Promise {
	return p.Add(AddFullAccessKey{PublicKey: key, Nonce: nonce})
}

// AddAccessKey adds a key restricted to calling methodNames on receiver,
// with nonce 0. methodNames is comma separated, e.g. "method_a,method_b".
func (p *Promise) AddAccessKey(key PublicKey, allowance Balance, receiver AccountID, methodNames string) *Promise {
	return p.AddAccessKeyWithNonce(key, allowance, receiver, methodNames, 0)
}

// AddAccessKeyWithNonce is AddAccessKey with an explicit nonce.
func (p *Promise) AddAccessKeyWithNonce(key PublicKey, allowance Balance, receiver AccountID, methodNames string, nonce uint64) *Promise {
	return p.Add(AddAccessKey{
		PublicKey:   key,
		Nonce:       nonce,
		Allowance:   allowance,
		Receiver:    receiver,
		MethodNames: methodNames,
	})
}

// DeleteKey deletes key from the receiver.
func (p *Promise) DeleteKey(key PublicKey) *Promise {
	return p.Add(DeleteKey{PublicKey: key})
}

// DeleteAccount deletes the receiver, sending its balance to beneficiary.
func (p *Promise) DeleteAccount(beneficiary AccountID) *Promise {
	return p.Add(DeleteAccount{Beneficiary: beneficiary})
}

// Joint is the combined completion of several handles.
// It has no batch of its own, so it offers no action methods.
type Joint struct {
	handle
}

// Kind returns KindJoint.
func (j *Joint) Kind() Kind { return KindJoint }

// AsReturn marks j as the call's result and returns j.
func (j *Joint) AsReturn() *Joint {
	j.shouldReturn = true
	return j
}
