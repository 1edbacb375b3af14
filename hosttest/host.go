// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hosttest provides an in-memory host scheduler for tests.
//
// The Host records every request in order, keeps the resulting receipts
// (batches with their actions, dependency edges, join nodes) and the
// outcome of the call. Nothing is executed.
package hosttest

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"code.hybscloud.com/promise"
)

// Op names a host request.
type Op string

const (
	OpOpenBatch   Op = "open_batch"
	OpChain       Op = "chain"
	OpJoin        Op = "join"
	OpAppend      Op = "append"
	OpRedirect    Op = "redirect"
	OpReturnValue Op = "return_value"
	OpAbort       Op = "abort"
)

// Call is one recorded request. Only the fields the request uses are set.
type Call struct {
	Op      Op
	Account promise.AccountID
	Index   promise.Index
	Indices []promise.Index
	Action  promise.Action
	Payload []byte
	Message string
	// Result is the index the host returned to OpenBatch, Chain or Join.
	Result promise.Index
}

// Receipt is the host's view of one index.
type Receipt struct {
	Index    promise.Index
	Receiver promise.AccountID
	Joint    bool
	// After lists the indices a chained batch waits for.
	After []promise.Index
	// Joined lists the members of a join node.
	Joined  []promise.Index
	Actions []promise.Action
}

// Outcome is how the call ended.
type Outcome struct {
	Redirected bool
	Redirect   promise.Index
	Returned   bool
	Value      []byte
	Aborted    bool
	Message    string
}

// Host is an in-memory promise.Host.
// Indices are allocated from 0 in request order, shared by batches
// and join nodes. Safe for use from a LinkServer goroutine while the
// test reads it.
type Host struct {
	mu       sync.Mutex
	calls    []Call
	receipts []*Receipt
	outcome  Outcome
	logger   *slog.Logger
}

// New returns an empty Host.
func New(opts ...Option) *Host {
	h := &Host{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// record appends c to the log. Callers hold mu.
func (h *Host) record(c Call) {
	h.calls = append(h.calls, c)
	h.logger.Debug("host request",
		"op", c.Op,
		"account", c.Account,
		"index", c.Index,
		"indices", c.Indices,
		"result", c.Result,
	)
}

// lookup returns the receipt for i, or nil. Callers hold mu.
func (h *Host) lookup(i promise.Index) *Receipt {
	if uint64(i) >= uint64(len(h.receipts)) {
		return nil
	}
	return h.receipts[i]
}

func (h *Host) allocate(r *Receipt) promise.Index {
	r.Index = promise.Index(len(h.receipts))
	h.receipts = append(h.receipts, r)
	return r.Index
}

// fail aborts the call. Callers must not hold mu.
func (h *Host) fail(format string, args ...any) {
	promise.Abort(h, fmt.Sprintf(format, args...))
}

// OpenBatch implements promise.Host.
func (h *Host) OpenBatch(account promise.AccountID) promise.Index {
	h.mu.Lock()
	defer h.mu.Unlock()
	i := h.allocate(&Receipt{Receiver: account})
	h.record(Call{Op: OpOpenBatch, Account: account, Result: i})
	return i
}

// Chain implements promise.Host.
func (h *Host) Chain(after promise.Index, account promise.AccountID) promise.Index {
	h.mu.Lock()
	if h.lookup(after) == nil {
		h.mu.Unlock()
		h.fail("invalid promise index %d", after)
	}
	defer h.mu.Unlock()
	i := h.allocate(&Receipt{Receiver: account, After: []promise.Index{after}})
	h.record(Call{Op: OpChain, Account: account, Index: after, Result: i})
	return i
}

// Join implements promise.Host.
func (h *Host) Join(indices []promise.Index) promise.Index {
	h.mu.Lock()
	for _, j := range indices {
		if h.lookup(j) == nil {
			h.mu.Unlock()
			h.fail("invalid promise index %d", j)
		}
	}
	defer h.mu.Unlock()
	joined := slices.Clone(indices)
	i := h.allocate(&Receipt{Joint: true, Joined: joined})
	h.record(Call{Op: OpJoin, Indices: joined, Result: i})
	return i
}

// Append implements promise.Host.
// Appending to an unknown or joint index aborts the call.
func (h *Host) Append(index promise.Index, action promise.Action) {
	h.mu.Lock()
	r := h.lookup(index)
	if r == nil {
		h.mu.Unlock()
		h.fail("invalid promise index %d", index)
	}
	if r.Joint {
		h.mu.Unlock()
		h.fail("actions can only be appended to non-joint promise %d", index)
	}
	defer h.mu.Unlock()
	r.Actions = append(r.Actions, action)
	h.record(Call{Op: OpAppend, Index: index, Action: action})
}

// Redirect implements promise.Host.
func (h *Host) Redirect(index promise.Index) {
	h.mu.Lock()
	if h.lookup(index) == nil {
		h.mu.Unlock()
		h.fail("invalid promise index %d", index)
	}
	defer h.mu.Unlock()
	h.outcome.Redirected = true
	h.outcome.Redirect = index
	h.record(Call{Op: OpRedirect, Index: index})
}

// ReturnValue implements promise.Host.
func (h *Host) ReturnValue(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := slices.Clone(payload)
	h.outcome.Returned = true
	h.outcome.Value = v
	h.record(Call{Op: OpReturnValue, Payload: v})
}

// Abort implements promise.Host. It records the message and returns.
func (h *Host) Abort(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.outcome.Aborted = true
	h.outcome.Message = message
	h.record(Call{Op: OpAbort, Message: message})
}

// Calls returns the recorded requests in order.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.calls)
}

// Receipts returns a snapshot of every receipt in index order.
func (h *Host) Receipts() []Receipt {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Receipt, len(h.receipts))
	for i, r := range h.receipts {
		out[i] = *r
		out[i].Actions = slices.Clone(r.Actions)
	}
	return out
}

// Receipt returns the receipt for index i.
func (h *Host) Receipt(i promise.Index) (Receipt, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r := h.lookup(i)
	if r == nil {
		return Receipt{}, false
	}
	out := *r
	out.Actions = slices.Clone(r.Actions)
	return out, true
}

// Outcome returns how the call ended so far.
func (h *Host) Outcome() Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.outcome
}
