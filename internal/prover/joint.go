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
    `github.com/cloudwego/assoc/ir`
)

// MaxJointSize is the largest coupled subgraph that can be matched jointly.
const MaxJointSize = 2

// joint finds the operators of a coupled subgraph by matching all of its
// components against one multi-component table row.
func (self *Prover) joint(st *state, sub []int) ([]*component, bool) {
    if len(sub) == 1 {
        if c, ok := self.classify(st, sub[0]); !ok {
            return nil, false
        } else {
            return []*component { c }, true
        }
    }

    /* only pairs are tabulated */
    if len(sub) > MaxJointSize {
        self.log.Debugf(4, "%d coupled components %v, at most %d are supported", len(sub), sub, MaxJointSize)
        return nil, false
    }

    /* every component must be an int32 recurrence */
    for _, c := range sub {
        if t := st.exprs[c].Type(); t != ir.Int32 {
            self.log.Debugf(4, "coupled component %d is %s, only int32 is supported", c, t)
            return nil, false
        }
        if st.xparts[c] == nil {
            self.log.Debugf(4, "coupled component %d has no recurrence", c)
            return nil, false
        }
    }

    /* rows are tabulated in one order, so try the pair both ways */
    for _, perm := range jointOrders {
        if ret, ok := self.jointIn(st, sub, perm); ok {
            return ret, true
        }
    }

    /* nothing matched */
    self.log.Debugf(4, "cannot prove associativity of coupled components %v", sub)
    return nil, false
}

var jointOrders = [][]int {
    { 0, 1 },
    { 1, 0 },
}

// jointIn matches the components of sub, taken in the order perm, against
// one table row.
func (self *Prover) jointIn(st *state, sub []int, perm []int) ([]*component, bool) {
    es := make([]ir.Expr, len(sub))
    xs := make([]string, len(sub))
    ys := make([]string, len(sub))

    /* extract the sub-vectors */
    for j, k := range perm {
        c := sub[k]
        es[j] = st.exprs[c]
        xs[j] = st.xs[c]
        ys[j] = st.ys[c]
    }

    /* every component must fit the same row */
    m, ok := self.table.Lookup(es, xs, st.xnames, self.opts.CommutativeMatch)
    if !ok {
        return nil, false
    }

    /* one operator per component, sharing the symbols of the subgraph */
    ops := m.Instantiate(xs, ys)
    ret := make([]*component, len(sub))
    self.log.Debugf(5, "%v matches %s", es, m.Pattern)

    /* y is undefined for components the row never reads */
    for j, k := range perm {
        ret[k] = &component {
            op          : ops[j],
            identity    : m.Pattern.Identities[j],
            x           : Replacement { Var: xs[j], Expr: st.xparts[sub[k]] },
            y           : Replacement { Var: ys[j], Expr: m.Y(j) },
            commutative : m.Pattern.Commutative,
        }
    }
    return ret, true
}
