// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a plan until its first host request.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
// susp.Op() is the request about to be issued.
func Step[R any](plan kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(plan)
}

// Advance issues the suspended host request through env and evaluates
// the plan until its next request or completion.
// Dropping a suspension instead of advancing it leaves the rest of the
// plan unissued; requests already issued stay with the host.
func Advance[R any](env *Env, susp *kont.Suspension[R]) (R, *kont.Suspension[R]) {
	hop, ok := susp.Op().(hostDispatcher)
	if !ok {
		panic("promise: unhandled effect in Advance")
	}
	return susp.Resume(env.perform(hop))
}
