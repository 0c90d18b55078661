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

// Flatten substitutes every let binding into its body.
type Flatten struct{}

func (Flatten) Apply(u *Unit) {
    u.Expr = Flattened(u.Expr)
}

// Flattened returns e with all let bindings substituted away.
func Flattened(e ir.Expr) ir.Expr {
    if v, ok := e.(*ir.Let); ok {
        return Flattened(ir.Substitute(v.Name, Flattened(v.Value), v.Body))
    }

    /* nothing below a leaf */
    ch := ir.Children(e)
    if len(ch) == 0 {
        return e
    }

    /* flatten the operands */
    nc := make([]ir.Expr, len(ch))
    for i, c := range ch {
        nc[i] = Flattened(c)
    }
    return ir.Rebuild(e, nc)
}

// inlineLets substitutes the lets whose values depend on v, keeping the rest.
func inlineLets(e ir.Expr, v string) ir.Expr {
    if p, ok := e.(*ir.Let); ok {
        if val := inlineLets(p.Value, v); ir.UsesVar(val, v) {
            return inlineLets(ir.Substitute(p.Name, val, p.Body), v)
        } else {
            return ir.Rebuild(e, []ir.Expr { val, inlineLets(p.Body, v) })
        }
    }

    /* nothing below a leaf */
    ch := ir.Children(e)
    if len(ch) == 0 {
        return e
    }

    /* recurse into operands */
    nc := make([]ir.Expr, len(ch))
    for i, c := range ch {
        nc[i] = inlineLets(c, v)
    }
    return ir.Rebuild(e, nc)
}
