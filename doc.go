// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package promise describes asynchronous cross-contract work to a host scheduler.
//
// A call body builds a graph of future actions (account creation, deployment,
// transfers, staking, key management, nested function calls) without running
// any of it. Every request goes to the [Host] immediately and returns an opaque
// [Index]; the host resolves ordering, execution and result propagation later.
//
// # Architecture
//
//   - Handles: [*Promise] is a batch of actions against one receiver; [*Joint] is the
//     combined completion of several handles and has no action methods.
//     [Handle.Then] adds a completion-before edge, [Handle.And] and [All] a join.
//   - Results: [PromiseOrValue] is either an immediate value or a pending handle.
//     [Return] and [Call] hand it to the host at the call boundary: a handle is
//     encoded as zero bytes and the call's result is redirected to it.
//   - Requests: host requests are algebraic effects on [code.hybscloud.com/kont]
//     ([OpenBatch], [Chain], [Join], [Append], [Redirect], [ReturnValue], [Panic]).
//     The fluent builder dispatches them directly; plans written as kont computations
//     run with [Exec], [ExecError], or one request at a time with [Step] and [Advance].
//   - Transport: [NewLink] connects a call body to a host on another goroutine through
//     lock-free bounded SPSC queues from [code.hybscloud.com/lfq].
//
// # Errors
//
// Appending an action to a joint index, or reusing a handle consumed by Then or And,
// aborts the call: [Host.Abort] is told, then the call panics with [*AbortError], which
// [Call] returns as an error. Failures of the scheduled actions themselves surface in
// the host later and are not visible here.
//
// # Example
//
//	err := promise.Call(host, promise.JSON, func(env *promise.Env) promise.PromiseOrValue[string] {
//		p := promise.New(env, "bob.near").CreateAccount().Transfer(promise.NewBalance(1000))
//		q := promise.New(env, "carol.near").CreateAccount()
//		return promise.FromPromise[string](p.Then("dave.near").And(q).Then("eva.near"))
//	})
package promise
