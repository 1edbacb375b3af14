// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"code.hybscloud.com/kont"
)

// Reify turns a plan built from the fused constructors into a kont.Expr,
// so its host requests can be issued one at a time with Step and Advance
// or all at once with ExecExpr.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect turns a reified plan back into a kont.Eff, e.g. to run a plan
// that was inspected request by request under ExecError.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
