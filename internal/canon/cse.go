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
    `fmt`
    `strings`

    `github.com/cloudwego/assoc/ir`
)

// CSE performs the Common Sub-expression Elimination, lifting every
// repeated non-trivial subexpression into a let binding.
type CSE struct{}

func (CSE) Apply(u *Unit) {
    u.Expr = Eliminate(u.Expr, u.Names)
}

type _ValueTable struct {
    ids   map[ir.Expr]string
    count map[string]int
    order []ir.Expr
}

func (self *_ValueTable) vid(e ir.Expr) string {
    if id, ok := self.ids[e]; ok {
        return id
    }

    /* value IDs of the operands */
    ch := ir.Children(e)
    ids := make([]string, len(ch))
    for i, c := range ch {
        ids[i] = self.vid(c)
    }

    /* build the value ID */
    var id string
    switch v := e.(type) {
        case *ir.Variable : id = fmt.Sprintf("%%%s:%s", v.Name, v.T)
        case *ir.Cast     : id = fmt.Sprintf("(%s %s)", v.T, ids[0])
        case *ir.Not      : id = fmt.Sprintf("(! %s)", ids[0])
        case *ir.Select   : id = fmt.Sprintf("(? %s)", strings.Join(ids, " "))
        case *ir.Call     : id = fmt.Sprintf("(@%s[%d]:%s %s)", v.Name, v.Index, v.T, strings.Join(ids, " "))
        case *ir.Binary   : id = binaryVid(v.Op, ids[0], ids[1])
        case *ir.Let      : panic("cse: let bindings must be flattened first")
        default           : id = fmt.Sprintf("$%s:%s", e, e.Type())
    }

    /* remember the ID of this node */
    self.ids[e] = id
    return id
}

// use counts the uses of every compound value, descending only into the
// first occurrence of each value.
func (self *_ValueTable) use(e ir.Expr) {
    ch := ir.Children(e)
    if len(ch) == 0 {
        return
    }

    /* later occurrences reuse the first one */
    id := self.ids[e]
    if self.count[id]++; self.count[id] != 1 {
        return
    }

    /* operands first, so bindings come out in dependency order */
    for _, c := range ch {
        self.use(c)
    }
    self.order = append(self.order, e)
}

func binaryVid(op ir.BinaryOp, x string, y string) string {
    if op.IsCommutative() && x > y {
        x, y = y, x
    }
    return fmt.Sprintf("(%s %s %s)", op, x, y)
}

// Eliminate returns e with repeated subexpressions bound by lets. The
// bindings are ordered so that every value only refers to earlier ones.
func Eliminate(e ir.Expr, names ir.Namer) ir.Expr {
    e = Flattened(e)
    vt := &_ValueTable {
        ids   : make(map[ir.Expr]string),
        count : make(map[string]int),
    }

    /* number every value */
    vt.vid(e)
    vt.use(e)
    vars := make(map[string]ir.Expr)

    /* allocate one variable for each repeated value */
    for _, p := range vt.order {
        if id := vt.ids[p]; vt.count[id] > 1 {
            vars[id] = ir.NewVar(p.Type(), names.Unique("_t"))
        }
    }

    /* nothing repeated */
    if len(vars) == 0 {
        return e
    }

    /* replace the repeated values, operands first */
    var replace func(ir.Expr, bool) ir.Expr
    replace = func(p ir.Expr, top bool) ir.Expr {
        if v, ok := vars[vt.ids[p]]; ok && !top {
            return v
        }
        ch := ir.Children(p)
        if len(ch) == 0 {
            return p
        }
        nc := make([]ir.Expr, len(ch))
        for i, c := range ch {
            nc[i] = replace(c, false)
        }
        return ir.Rebuild(p, nc)
    }

    /* the body itself */
    ret := replace(e, false)
    lets := make([]ir.Expr, 0, len(vars))

    /* collect the bindings in post-order */
    for _, p := range vt.order {
        if _, ok := vars[vt.ids[p]]; ok {
            lets = append(lets, p)
        }
    }

    /* wrap the body from the innermost binding outwards */
    for i := len(lets) - 1; i >= 0; i-- {
        v := vars[vt.ids[lets[i]]].(*ir.Variable)
        ret = ir.NewLet(v.Name, replace(lets[i], true), ret)
    }
    return ret
}
