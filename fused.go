// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"code.hybscloud.com/kont"
)

// OpenBind opens a batch against account and passes its index to f.
// Fuses Perform(OpenBatch{Account: account}) + Bind.
func OpenBind[B any](account AccountID, f func(Index) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(OpenBatch{Account: account}), f)
}

// AppendThen appends action to the batch index and continues with next.
// Fuses Perform(Append{Index: index, Action: action}) + Then.
func AppendThen[B any](index Index, action Action, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Append{Index: index, Action: action}), next)
}

// ChainBind opens a batch against account that runs after index and
// passes the new index to f.
// Fuses Perform(Chain{After: index, Account: account}) + Bind.
func ChainBind[B any](index Index, account AccountID, f func(Index) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Chain{After: index, Account: account}), f)
}

// JoinBind joins indices and passes the joint index to f.
// Fuses Perform(Join{Indices: indices}) + Bind.
func JoinBind[B any](indices []Index, f func(Index) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Join{Indices: indices}), f)
}

// RedirectDone makes index the call's result and returns a.
// Fuses Perform(Redirect{Index: index}) + Then + Pure.
func RedirectDone[A any](index Index, a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Redirect{Index: index}), kont.Pure(a))
}
