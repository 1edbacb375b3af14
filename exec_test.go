// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/promise"
	"code.hybscloud.com/promise/hosttest"
	"github.com/google/go-cmp/cmp"
)

// createThenCall opens a batch on a, creates the account, chains a call
// on b and redirects the result to it.
func createThenCall() kont.Eff[promise.Index] {
	return promise.OpenBind("a.near", func(a promise.Index) kont.Eff[promise.Index] {
		return promise.AppendThen(a, promise.CreateAccount{},
			promise.ChainBind(a, "b.near", func(b promise.Index) kont.Eff[promise.Index] {
				return promise.AppendThen(b, promise.FunctionCall{Method: "on_created", Gas: 10},
					promise.RedirectDone(b, b),
				)
			}),
		)
	})
}

var createThenCallRequests = []hosttest.Call{
	{Op: hosttest.OpOpenBatch, Account: "a.near", Result: 0},
	{Op: hosttest.OpAppend, Index: 0, Action: promise.CreateAccount{}},
	{Op: hosttest.OpChain, Index: 0, Account: "b.near", Result: 1},
	{Op: hosttest.OpAppend, Index: 1, Action: promise.FunctionCall{Method: "on_created", Gas: 10}},
	{Op: hosttest.OpRedirect, Index: 1},
}

func TestExecPlan(t *testing.T) {
	h := hosttest.New()
	env := promise.NewEnv(h)

	got := promise.Exec(env, createThenCall())
	if got != 1 {
		t.Fatalf("plan result got %d, want 1", got)
	}
	if diff := cmp.Diff(createThenCallRequests, h.Calls()); diff != "" {
		t.Fatalf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestExecExprPlan(t *testing.T) {
	h := hosttest.New()
	env := promise.NewEnv(h)

	got := promise.ExecExpr(env, promise.Reify(createThenCall()))
	if got != 1 {
		t.Fatalf("plan result got %d, want 1", got)
	}
	if diff := cmp.Diff(createThenCallRequests, h.Calls()); diff != "" {
		t.Fatalf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestReflectRoundTrip(t *testing.T) {
	h := hosttest.New()
	env := promise.NewEnv(h)

	promise.Exec(env, promise.Reflect(promise.Reify(createThenCall())))
	if diff := cmp.Diff(createThenCallRequests, h.Calls()); diff != "" {
		t.Fatalf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestStepInspectsRequests(t *testing.T) {
	h := hosttest.New()
	env := promise.NewEnv(h)

	_, susp := promise.Step(promise.Reify(createThenCall()))
	if susp == nil {
		t.Fatal("expected suspension for OpenBatch")
	}
	op, ok := susp.Op().(promise.OpenBatch)
	if !ok {
		t.Fatalf("expected OpenBatch, got %T", susp.Op())
	}
	if op.Account != "a.near" {
		t.Fatalf("OpenBatch account got %q", op.Account)
	}
	if n := len(h.Calls()); n != 0 {
		t.Fatalf("host saw %d requests before Advance", n)
	}

	var result promise.Index
	steps := 0
	for susp != nil {
		result, susp = promise.Advance(env, susp)
		steps++
		if n := len(h.Calls()); n != steps {
			t.Fatalf("after %d steps host saw %d requests", steps, n)
		}
	}
	if steps != len(createThenCallRequests) || result != 1 {
		t.Fatalf("steps %d result %d, want %d and 1", steps, result, len(createThenCallRequests))
	}
}

func TestExecErrorThrowStopsPlan(t *testing.T) {
	h := hosttest.New()
	env := promise.NewEnv(h)

	plan := promise.OpenBind("a.near", func(a promise.Index) kont.Eff[promise.Index] {
		return kont.Then(
			kont.ThrowError[string, struct{}]("insufficient deposit"),
			promise.ChainBind(a, "b.near", func(b promise.Index) kont.Eff[promise.Index] {
				return kont.Pure(b)
			}),
		)
	})

	result := promise.ExecError[string, promise.Index](env, plan)
	if !result.IsLeft() {
		t.Fatal("expected Left")
	}
	if e, _ := result.GetLeft(); e != "insufficient deposit" {
		t.Fatalf("error got %q", e)
	}
	if diff := cmp.Diff([]hosttest.Call{{Op: hosttest.OpOpenBatch, Account: "a.near", Result: 0}}, h.Calls()); diff != "" {
		t.Fatalf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestExecErrorSuccess(t *testing.T) {
	env := promise.NewEnv(hosttest.New())

	result := promise.ExecError[string, promise.Index](env, createThenCall())
	if v, ok := result.GetRight(); !ok || v != 1 {
		t.Fatalf("result got (%d, %v), want (1, true)", v, ok)
	}
}

func TestExecErrorExprSuccess(t *testing.T) {
	env := promise.NewEnv(hosttest.New())

	result := promise.ExecErrorExpr[string](env, promise.Reify(createThenCall()))
	if v, ok := result.GetRight(); !ok || v != 1 {
		t.Fatalf("result got (%d, %v), want (1, true)", v, ok)
	}
}

func TestExecErrorPanicStillAborts(t *testing.T) {
	h := hosttest.New()
	env := promise.NewEnv(h)

	msg := abortMessage(t, func() {
		promise.ExecError[string, struct{}](env, kont.Perform(promise.Panic{Message: "invariant broken"}))
	})
	if msg != "invariant broken" {
		t.Fatalf("abort message got %q", msg)
	}
	if out := h.Outcome(); !out.Aborted {
		t.Fatal("host not told about the abort")
	}
}

func TestJoinBindMarksJoint(t *testing.T) {
	h := hosttest.New()
	env := promise.NewEnv(h)

	plan := promise.OpenBind("a", func(a promise.Index) kont.Eff[promise.Index] {
		return promise.OpenBind("b", func(b promise.Index) kont.Eff[promise.Index] {
			return promise.JoinBind([]promise.Index{a, b}, func(j promise.Index) kont.Eff[promise.Index] {
				return promise.AppendThen(j, promise.CreateAccount{}, kont.Pure(j))
			})
		})
	})
	msg := abortMessage(t, func() { promise.Exec(env, plan) })
	if msg != "cannot add action to a joint promise" {
		t.Fatalf("abort message got %q", msg)
	}
}

func TestLoopBuildsChain(t *testing.T) {
	h := hosttest.New()
	env := promise.NewEnv(h)

	type cursor struct {
		at   promise.Index
		left int
	}
	plan := promise.OpenBind("hop.near", func(first promise.Index) kont.Eff[promise.Index] {
		return promise.Loop(cursor{at: first, left: 3}, func(c cursor) kont.Eff[kont.Either[cursor, promise.Index]] {
			if c.left == 0 {
				return kont.Pure(kont.Right[cursor, promise.Index](c.at))
			}
			return promise.ChainBind(c.at, "hop.near", func(next promise.Index) kont.Eff[kont.Either[cursor, promise.Index]] {
				return kont.Pure(kont.Left[cursor, promise.Index](cursor{at: next, left: c.left - 1}))
			})
		})
	})

	last := promise.Exec(env, plan)
	if last != 3 {
		t.Fatalf("last index got %d, want 3", last)
	}
	for i, r := range h.Receipts()[1:] {
		if diff := cmp.Diff([]promise.Index{promise.Index(i)}, r.After); diff != "" {
			t.Fatalf("hop %d dependency mismatch (-want +got):\n%s", i+1, diff)
		}
	}
}

func TestExecUnhandledPanics(t *testing.T) {
	type bogus struct{ kont.Phantom[int] }

	env := promise.NewEnv(hosttest.New())

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unhandled effect")
		}
		msg, ok := r.(string)
		if !ok || msg != "promise: unhandled effect in hostHandler" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	promise.Exec(env, kont.Perform(bogus{}))
}
