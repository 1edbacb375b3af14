// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise_test

import (
	"testing"

	"code.hybscloud.com/promise"
)

// abortMessage runs f and returns the message of the abort it raises.
// Fails the test if f returns normally or panics with anything else.
func abortMessage(t *testing.T, f func()) (msg string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected abort")
		}
		ae, ok := r.(*promise.AbortError)
		if !ok {
			t.Fatalf("unexpected panic: %v", r)
		}
		msg = ae.Message
	}()
	f()
	return ""
}

// testKey returns a distinct ed25519-tagged key for n.
func testKey(n byte) promise.PublicKey {
	k := make(promise.PublicKey, 33)
	k[1] = n
	return k
}

// actionFor maps b to an action of kind b%9 carrying b in its parameters.
func actionFor(b uint8) promise.Action {
	amount := promise.NewBalance(uint64(b) * 1000)
	switch promise.ActionKind(b % 9) {
	case promise.ActionCreateAccount:
		return promise.CreateAccount{}
	case promise.ActionDeployContract:
		return promise.DeployContract{Code: []byte{0x00, 0x61, 0x73, 0x6d, b}}
	case promise.ActionFunctionCall:
		return promise.FunctionCall{Method: "ping", Args: []byte{b}, Deposit: amount, Gas: promise.Gas(b) * 10}
	case promise.ActionTransfer:
		return promise.Transfer{Deposit: amount}
	case promise.ActionStake:
		return promise.Stake{Stake: amount, PublicKey: testKey(b)}
	case promise.ActionAddFullAccessKey:
		return promise.AddFullAccessKey{PublicKey: testKey(b), Nonce: uint64(b)}
	case promise.ActionAddAccessKey:
		return promise.AddAccessKey{PublicKey: testKey(b), Nonce: uint64(b), Allowance: amount, Receiver: "app.near", MethodNames: "a,b"}
	case promise.ActionDeleteKey:
		return promise.DeleteKey{PublicKey: testKey(b)}
	default:
		return promise.DeleteAccount{Beneficiary: "heir.near"}
	}
}

// allActions returns one action of every kind.
func allActions() []promise.Action {
	out := make([]promise.Action, 9)
	for i := range out {
		out[i] = actionFor(uint8(i))
	}
	return out
}
