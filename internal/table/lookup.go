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

package table

import (
    `fmt`

    `github.com/cloudwego/assoc/ir`
)

var (
    _XNames = [...]string { "x0", "x1" }
    _YNames = [...]string { "y0", "y1" }
)

const _KName = "k0"

// Match is a successful table lookup.
type Match struct {
    Pattern  *Pattern
    Bindings ir.Bindings
}

// Y returns the expression bound to the i-th y wildcard, or nil if the
// pattern does not use it.
func (self *Match) Y(i int) ir.Expr {
    return self.Bindings[_YNames[i]]
}

// Instantiate rewrites the pattern in terms of the given x and y variable
// names, with k0 replaced by the constant it matched.
func (self *Match) Instantiate(xs []string, ys []string) []ir.Expr {
    ret := make([]ir.Expr, len(self.Pattern.Ops))
    for i, op := range self.Pattern.Ops {
        m := make(map[string]ir.Expr, len(xs) * 2 + 1)
        t := self.Pattern.Type

        /* the k0 binding, if any */
        if k, ok := self.Bindings[_KName]; ok {
            m[_KName] = k
        }

        /* the self and value terms */
        for j := range xs {
            m[_XNames[j]] = ir.NewVar(t, xs[j])
            m[_YNames[j]] = ir.NewVar(t, ys[j])
        }

        /* substitute the wildcards */
        ret[i] = ir.SubstituteMap(m, op)
    }
    return ret
}

// Lookup searches the patterns registered for the root and type of es[0]
// and returns the first one whose components match es, where es[i] must
// express its self-term as the variable xs[i]. No y wildcard may capture
// a variable named in xnames.
func (self *Registry) Lookup(es []ir.Expr, xs []string, xnames map[string]bool, commutative bool) (*Match, bool) {
    if len(es) != len(xs) {
        panic(fmt.Sprintf("table: %d expressions with %d self names", len(es), len(xs)))
    }

    /* only 1 or 2 components are tabulated */
    if len(es) == 0 || len(es) > len(_XNames) {
        return nil, false
    }

    /* classify the first component */
    vt, ok := ValTypeOf(es[0].Type())
    if !ok {
        return nil, false
    }
    root, ok := RootOf(es[0])
    if !ok {
        return nil, false
    }

    /* compute the depths once for the prefilter */
    depth := make([]int, len(es))
    for i, e := range es {
        depth[i] = ir.Depth(e)
    }

    /* x wildcards only bind to their own self variable */
    mm := ir.Matcher {
        Commutative : commutative,
        Accept      : func(name string, e ir.Expr) bool {
            switch name {
                case _XNames[0] : return isVar(e, xs, 0)
                case _XNames[1] : return isVar(e, xs, 1)
                case _KName     : return ir.IsConst(e)
                default         : return !ir.UsesAnyVar(e, xnames)
            }
        },
    }

    /* first match wins */
    for _, p := range self.Get(Key { vt, root, len(es) }) {
        if !p.fits(depth) {
            continue
        }
        if b, ok := mm.MatchAll(p.Ops, es, nil); ok {
            return &Match { Pattern: p, Bindings: b }, true
        }
    }
    return nil, false
}

func (self *Pattern) fits(depth []int) bool {
    for i, d := range self.depth {
        if d > depth[i] {
            return false
        }
    }
    return true
}

func isVar(e ir.Expr, xs []string, i int) bool {
    if i >= len(xs) {
        return false
    }
    v, ok := e.(*ir.Variable)
    return ok && v.Name == xs[i]
}
