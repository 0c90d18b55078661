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

const (
    _MaxSimplifyRounds = 16
)

// Simplify applies algebraic rewrite rules until the expression stops changing.
type Simplify struct{}

func (Simplify) Apply(u *Unit) {
    u.Expr = Simplified(u.Expr)
}

// Simplified returns the simplified form of e.
func Simplified(e ir.Expr) ir.Expr {
    for i := 0; i < _MaxSimplifyRounds; i++ {
        r := simplify(e)
        if ir.Equal(r, e) {
            return r
        }
        e = r
    }
    return e
}

func simplify(e ir.Expr) ir.Expr {
    if v, ok := e.(*ir.Let); ok {
        return simplifyLet(v)
    }

    /* simplify the operands first */
    ch := ir.Children(e)
    if len(ch) == 0 {
        return e
    }

    /* then the node itself */
    nc := make([]ir.Expr, len(ch))
    for i, c := range ch {
        nc[i] = simplify(c)
    }
    return rewrite(ir.Rebuild(e, nc))
}

func simplifyLet(v *ir.Let) ir.Expr {
    val := simplify(v.Value)
    body := simplify(v.Body)

    /* trivial values are substituted */
    switch val.(type) {
        case *ir.IntImm, *ir.UIntImm, *ir.FloatImm, *ir.Variable: {
            return ir.Substitute(v.Name, val, body)
        }
    }

    /* dead bindings are dropped */
    if !ir.UsesVar(body, v.Name) {
        return body
    } else {
        return ir.Rebuild(v, []ir.Expr { val, body })
    }
}

func rewrite(e ir.Expr) ir.Expr {
    switch v := e.(type) {
        case *ir.Cast   : return rewriteCast(v)
        case *ir.Not    : return rewriteNot(v)
        case *ir.Select : return rewriteSelect(v)
        case *ir.Binary : return rewriteBinary(v)
        default         : return e
    }
}

func rewriteCast(v *ir.Cast) ir.Expr {
    if v.V.Type() == v.T {
        return v.V
    } else if ir.IsConst(v.V) {
        return ir.ConvertConst(v.T, v.V)
    } else {
        return v
    }
}

func rewriteNot(v *ir.Not) ir.Expr {
    switch x := v.V.(type) {
        case *ir.UIntImm: {
            return ir.MakeBool(x.V == 0)
        }
        case *ir.Not: {
            return x.V
        }
        case *ir.Binary: {
            switch x.Op {
                case ir.OpLT : return ir.LE(x.B, x.A)
                case ir.OpLE : return ir.LT(x.B, x.A)
                case ir.OpEQ : return ir.NE(x.A, x.B)
                case ir.OpNE : return ir.EQ(x.A, x.B)
            }
        }
    }
    return v
}

func rewriteSelect(v *ir.Select) ir.Expr {
    if c, ok := v.Cond.(*ir.UIntImm); ok {
        if c.V != 0 {
            return v.True
        } else {
            return v.False
        }
    }

    /* both branches agree */
    if ir.Equal(v.True, v.False) {
        return v.True
    }

    /* negated conditions swap the branches */
    if n, ok := v.Cond.(*ir.Not); ok {
        return ir.NewSelect(n.V, v.False, v.True)
    } else {
        return v
    }
}

func rewriteBinary(v *ir.Binary) ir.Expr {
    a, b := v.A, v.B
    ca, cb := ir.IsConst(a), ir.IsConst(b)

    /* constant folding */
    if ca && cb {
        if r := foldBinary(v.Op, a, b); r != nil {
            return r
        }
    }

    /* constants go to the right of commutative operators */
    if v.Op.IsCommutative() && ca && !cb {
        return ir.NewBinary(v.Op, b, a)
    }

    /* rules for each operator */
    switch v.Op {
        case ir.OpAdd : return rewriteAdd(v)
        case ir.OpSub : return rewriteSub(v)
        case ir.OpMul : return rewriteMul(v)
        case ir.OpDiv : if ir.IsOne(b) { return a } else { return v }
        case ir.OpMin : return rewriteMinMax(v)
        case ir.OpMax : return rewriteMinMax(v)
        case ir.OpGT  : return ir.LT(b, a)
        case ir.OpGE  : return ir.LE(b, a)
        case ir.OpEQ  : if ir.Equal(a, b) { return ir.MakeBool(true) } else { return v }
        case ir.OpLE  : if ir.Equal(a, b) { return ir.MakeBool(true) } else { return v }
        case ir.OpNE  : if ir.Equal(a, b) { return ir.MakeBool(false) } else { return v }
        case ir.OpLT  : if ir.Equal(a, b) { return ir.MakeBool(false) } else { return v }
        case ir.OpAnd : return rewriteAndOr(v)
        case ir.OpOr  : return rewriteAndOr(v)
        default       : return v
    }
}

// foldRight folds op(op(p, c1), c2) into op(p, c1 op c2).
func foldRight(v *ir.Binary) ir.Expr {
    if !ir.IsConst(v.B) {
        return nil
    }
    if x, ok := v.A.(*ir.Binary); ok && x.Op == v.Op && ir.IsConst(x.B) {
        if c := foldBinary(v.Op, x.B, v.B); c != nil {
            return ir.NewBinary(v.Op, x.A, c)
        }
    }
    return nil
}

func isNegation(e ir.Expr) (ir.Expr, bool) {
    if x, ok := e.(*ir.Binary); ok && x.Op == ir.OpSub && ir.IsZero(x.A) {
        return x.B, true
    } else {
        return nil, false
    }
}

func rewriteAdd(v *ir.Binary) ir.Expr {
    a, b := v.A, v.B

    /* x + 0 */
    if ir.IsZero(b) {
        return a
    }

    /* (p + c1) + c2 */
    if r := foldRight(v); r != nil {
        return r
    }

    /* a + (0 - q), (0 - q) + b */
    if q, ok := isNegation(b); ok {
        return ir.Sub(a, q)
    } else if q, ok = isNegation(a); ok {
        return ir.Sub(b, q)
    } else {
        return v
    }
}

func rewriteSub(v *ir.Binary) ir.Expr {
    a, b := v.A, v.B
    t := a.Type()

    /* x - 0, x - x */
    if ir.IsZero(b) {
        return a
    } else if ir.Equal(a, b) {
        return ir.MakeZero(t)
    }

    /* x - c becomes x + (-c) */
    if ir.IsConst(b) && !ir.IsZero(a) && (t.IsInt() || t.IsFloat()) {
        return ir.Add(a, negate(b))
    }

    /* a - (0 - q) */
    if q, ok := isNegation(b); ok {
        return ir.Add(a, q)
    }

    /* (p + q) - p, (p + q) - q */
    if x, ok := a.(*ir.Binary); ok && x.Op == ir.OpAdd {
        if ir.Equal(x.A, b) {
            return x.B
        } else if ir.Equal(x.B, b) {
            return x.A
        }
    }
    return v
}

func rewriteMul(v *ir.Binary) ir.Expr {
    a, b := v.A, v.B

    /* x * 1, x * 0 */
    if ir.IsOne(b) {
        return a
    } else if ir.IsZero(b) && !a.Type().IsFloat() {
        return b
    }

    /* (p * c1) * c2 */
    if r := foldRight(v); r != nil {
        return r
    } else {
        return v
    }
}

func dual(op ir.BinaryOp) ir.BinaryOp {
    if op == ir.OpMin {
        return ir.OpMax
    } else {
        return ir.OpMin
    }
}

func rewriteMinMax(v *ir.Binary) ir.Expr {
    a, b := v.A, v.B
    t := a.Type()

    /* min(x, x) */
    if ir.Equal(a, b) {
        return a
    }

    /* the limits of the type */
    if v.Op == ir.OpMin {
        if ir.Equal(b, t.Max()) { return a }
        if ir.Equal(b, t.Min()) { return b }
    } else {
        if ir.Equal(b, t.Min()) { return a }
        if ir.Equal(b, t.Max()) { return b }
    }

    /* min(min(p, c1), c2) */
    if r := foldRight(v); r != nil {
        return r
    }

    /* absorption: max(min(p, q), p) and friends */
    if x, ok := a.(*ir.Binary); ok && x.Op == dual(v.Op) && (ir.Equal(x.A, b) || ir.Equal(x.B, b)) {
        return b
    }
    if x, ok := b.(*ir.Binary); ok && x.Op == dual(v.Op) && (ir.Equal(x.A, a) || ir.Equal(x.B, a)) {
        return a
    }

    /* common terms */
    x, ok1 := a.(*ir.Binary)
    y, ok2 := b.(*ir.Binary)

    /* both sides must be the same operator */
    if !ok1 || !ok2 || x.Op != y.Op {
        return v
    }

    /* pull the shared term out */
    switch x.Op {
        case ir.OpAdd: {
            if ir.Equal(x.A, y.A) {
                return ir.Add(x.A, ir.NewBinary(v.Op, x.B, y.B))
            } else if ir.Equal(x.B, y.B) {
                return ir.Add(ir.NewBinary(v.Op, x.A, y.A), x.B)
            }
        }
        case ir.OpSub: {
            if ir.Equal(x.A, y.A) {
                return ir.Sub(x.A, ir.NewBinary(dual(v.Op), x.B, y.B))
            } else if ir.Equal(x.B, y.B) {
                return ir.Sub(ir.NewBinary(v.Op, x.A, y.A), x.B)
            }
        }
    }
    return v
}

func rewriteAndOr(v *ir.Binary) ir.Expr {
    a, b := v.A, v.B
    ones := a.Type().AllOnes()

    /* x & x */
    if ir.Equal(a, b) {
        return a
    }

    /* identities and annihilators */
    if v.Op == ir.OpAnd {
        if ir.Equal(b, ones) { return a }
        if ir.IsZero(b)      { return b }
    } else {
        if ir.IsZero(b)      { return a }
        if ir.Equal(b, ones) { return b }
    }
    return v
}
