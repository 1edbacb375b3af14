// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"code.hybscloud.com/kont"
)

// hostHandler implements kont.Handler for host requests.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type hostHandler[R any] struct {
	env *Env
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h hostHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	hop, ok := op.(hostDispatcher)
	if !ok {
		panic("promise: unhandled effect in hostHandler")
	}
	return h.env.perform(hop), true
}

// Exec runs a Cont-world plan against env, issuing each host request
// as the plan performs it.
func Exec[R any](env *Env, plan kont.Eff[R]) R {
	h := hostHandler[R]{env: env}
	return kont.Handle(plan, h)
}

// ExecExpr runs an Expr-world plan against env.
func ExecExpr[R any](env *Env, plan kont.Expr[R]) R {
	h := hostHandler[R]{env: env}
	return kont.HandleExpr(plan, h)
}
