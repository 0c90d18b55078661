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

package prover

import (
    `github.com/cloudwego/assoc/internal/canon`
    `github.com/cloudwego/assoc/internal/table`
    `github.com/cloudwego/assoc/ir`
)

type _Primitive struct {
    op          ir.BinaryOp
    identity    table.Identity
    commutative bool
}

// Sub is accumulated by adding the negated right operand, which does not
// commute with the self-term.
var _Primitives = map[ir.BinaryOp]_Primitive {
    ir.OpAdd : { ir.OpAdd, table.Zero    , true  },
    ir.OpSub : { ir.OpAdd, table.Zero    , false },
    ir.OpMul : { ir.OpMul, table.One     , true  },
    ir.OpMin : { ir.OpMin, table.ValMax  , true  },
    ir.OpMax : { ir.OpMax, table.ValMin  , true  },
    ir.OpAnd : { ir.OpAnd, table.AllOnes , true  },
    ir.OpOr  : { ir.OpOr , table.Zero    , true  },
}

// component is the operator found for one tuple element.
type component struct {
    op          ir.Expr
    identity    ir.Expr
    x           Replacement
    y           Replacement
    commutative bool
}

func (self *component) equals(other *component) bool {
    return ir.Equal(self.op, other.op) &&
           ir.Equal(self.identity, other.identity) &&
           sameExpr(self.y.Expr, other.y.Expr)
}

func sameExpr(a ir.Expr, b ir.Expr) bool {
    if a == nil || b == nil {
        return a == nil && b == nil
    } else {
        return ir.Equal(a, b)
    }
}

// classify finds the operator of a single component from its canonical
// expression, without looking at the other components.
func (self *Prover) classify(st *state, i int) (*component, bool) {
    e := st.exprs[i]
    t := e.Type()
    x := ir.NewVar(t, st.xs[i])
    y := ir.NewVar(t, st.ys[i])

    /* no recurrence, the update is the value itself */
    if st.xparts[i] == nil {
        if ir.UsesAnyVar(e, st.xnames) {
            self.log.Debugf(4, "component %d reads other components without a recurrence: %s", i, e)
            return nil, false
        }
        return &component {
            op       : y,
            identity : ir.MakeZero(t),
            x        : Replacement { Var: "" },
            y        : Replacement { Var: st.ys[i], Expr: e },
        }, true
    }

    /* op(x, y) with y free of every self-term */
    if b, ok := e.(*ir.Binary); ok {
        if p, ok := _Primitives[b.Op]; ok && isSelf(b.A, st.xs[i]) && !ir.UsesAnyVar(b.B, st.xnames) {
            return &component {
                op          : ir.NewBinary(p.op, x, y),
                identity    : p.identity.Value(t),
                x           : Replacement { Var: st.xs[i], Expr: st.xparts[i] },
                y           : Replacement { Var: st.ys[i], Expr: operand(b) },
                commutative : p.commutative,
            }, true
        }
    }

    /* disguised forms */
    self.log.Debugf(5, "looking up the table for %s", e)
    m, ok := self.table.Lookup([]ir.Expr { e }, []string { st.xs[i] }, st.xnames, self.opts.CommutativeMatch)
    if !ok {
        self.log.Debugf(4, "cannot prove associativity of %s", e)
        return nil, false
    }

    /* instantiate with the component symbols */
    self.log.Debugf(5, "%s matches %s", e, m.Pattern)
    return &component {
        op          : m.Instantiate([]string { st.xs[i] }, []string { st.ys[i] })[0],
        identity    : m.Pattern.Identities[0],
        x           : Replacement { Var: st.xs[i], Expr: st.xparts[i] },
        y           : Replacement { Var: st.ys[i], Expr: m.Y(0) },
        commutative : m.Pattern.Commutative,
    }, true
}

func operand(b *ir.Binary) ir.Expr {
    if b.Op == ir.OpSub {
        return canon.Simplified(ir.Sub(ir.MakeZero(b.B.Type()), b.B))
    } else {
        return b.B
    }
}

func isSelf(e ir.Expr, x string) bool {
    v, ok := e.(*ir.Variable)
    return ok && v.Name == x
}
