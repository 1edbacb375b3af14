// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"code.hybscloud.com/kont"
)

// hostErrorHandler handles both host requests and error effects.
// Host requests go to the Env. Error ops short-circuit on Throw.
// A Panic request still aborts the call: it is not an error effect.
type hostErrorHandler[E, A any] struct {
	env    *Env
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Host+Error handler.
// Dispatch order: Host → Error.
func (h hostErrorHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if hop, ok := op.(hostDispatcher); ok {
		return h.env.perform(hop), true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("promise: unhandled effect in hostErrorHandler")
}

// ExecError runs a plan with error handling against env.
// Returns Either[E, R]: Right on success, Left on Throw. Requests issued
// before the Throw have already reached the host and are not undone.
func ExecError[E, R any](env *Env, plan kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](plan, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := hostErrorHandler[E, R]{env: env, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr runs an Expr-world plan with error handling against env.
// Returns Either[E, R]: Right on success, Left on Throw.
func ExecErrorExpr[E, R any](env *Env, plan kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(plan, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := hostErrorHandler[E, R]{env: env, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}
