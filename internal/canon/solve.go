/*
 * Copyright 2022 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package canon

import (
    `github.com/cloudwego/assoc/ir`
)

// Solve moves the self-term towards the outermost left operand, reassociating
// the terms that do not depend on it.
type Solve struct{}

func (Solve) Apply(u *Unit) {
    if u.Var != "" {
        u.Expr = SolveFor(u.Expr, u.Var)
    }
}

// SolveFor rearranges e so that v appears as the leftmost operand wherever
// the algebra permits.
func SolveFor(e ir.Expr, v string) ir.Expr {
    return ir.Mutate(inlineLets(e, v), func(p ir.Expr) ir.Expr {
        return isolate(p, v)
    })
}

func isolate(p ir.Expr, v string) ir.Expr {
    b, ok := p.(*ir.Binary)
    if !ok {
        return p
    }

    /* which side uses the variable */
    ua := ir.UsesVar(b.A, v)
    ub := ir.UsesVar(b.B, v)

    /* op(y, x) => op(x, y) */
    if !ua && ub && b.Op.IsCommutative() {
        b = ir.NewBinary(b.Op, b.B, b.A).(*ir.Binary)
        ua, ub = true, false
    }

    /* min(x + a, x + b) => x + min(a, b) */
    if ua && ub && (b.Op == ir.OpMin || b.Op == ir.OpMax) {
        return pullCommon(b)
    }

    /* the variable must be on the left only */
    if !ua || ub {
        return b
    }

    /* the left operand must be a compound term with the variable on its left only */
    x, ok := b.A.(*ir.Binary)
    if !ok || !ir.UsesVar(x.A, v) || ir.UsesVar(x.B, v) {
        return b
    }

    /* move the free terms together */
    switch {
        case x.Op == b.Op && b.Op.IsAssociative() : return ir.NewBinary(b.Op, x.A, Simplified(ir.NewBinary(b.Op, x.B, b.B)))
        case x.Op == ir.OpSub && b.Op == ir.OpAdd : return ir.Add(x.A, Simplified(ir.Sub(b.B, x.B)))
        case x.Op == ir.OpAdd && b.Op == ir.OpSub : return ir.Add(x.A, Simplified(ir.Sub(x.B, b.B)))
        case x.Op == ir.OpSub && b.Op == ir.OpSub : return ir.Sub(x.A, Simplified(ir.Add(x.B, b.B)))
        default                                   : return b
    }
}

func pullCommon(b *ir.Binary) ir.Expr {
    x, ok1 := b.A.(*ir.Binary)
    y, ok2 := b.B.(*ir.Binary)

    /* both sides must share the leading term */
    if !ok1 || !ok2 || x.Op != y.Op || !ir.Equal(x.A, y.A) {
        return b
    }

    /* the free parts are combined by the same operator, or its dual under negation */
    switch x.Op {
        case ir.OpAdd : return ir.Add(x.A, Simplified(ir.NewBinary(b.Op, x.B, y.B)))
        case ir.OpSub : return ir.Sub(x.A, Simplified(ir.NewBinary(dual(b.Op), x.B, y.B)))
        default       : return b
    }
}
