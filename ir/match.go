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

package ir

// Bindings maps wildcard names to the subexpressions they matched.
type Bindings map[string]Expr

func (self Bindings) with(name string, e Expr) Bindings {
    r := make(Bindings, len(self) + 1)
    for k, v := range self {
        r[k] = v
    }
    r[name] = e
    return r
}

// Matcher matches template expressions against concrete ones. Every
// variable of a template is a wildcard.
type Matcher struct {
    // Accept, if set, may veto binding a wildcard to a subexpression.
    Accept func(name string, e Expr) bool

    // Commutative lets the operands of commutative nodes match in either order.
    Commutative bool
}

// Match matches a single template, returning the bindings on success.
func (self *Matcher) Match(tmpl Expr, e Expr) (Bindings, bool) {
    return self.MatchAll([]Expr { tmpl }, []Expr { e }, nil)
}

// MatchAll matches every template against the expression at the same
// position with one shared set of bindings, starting from init.
func (self *Matcher) MatchAll(tmpl []Expr, e []Expr, init Bindings) (ret Bindings, ok bool) {
    if len(tmpl) != len(e) {
        return nil, false
    }
    if init == nil {
        init = Bindings{}
    }
    ok = self.seq(tmpl, e, init, func(b Bindings) bool {
        ret = b
        return true
    })
    return
}

func (self *Matcher) seq(p []Expr, e []Expr, b Bindings, k func(Bindings) bool) bool {
    if len(p) == 0 {
        return k(b)
    }
    return self.match(p[0], e[0], b, func(b1 Bindings) bool {
        return self.seq(p[1:], e[1:], b1, k)
    })
}

func (self *Matcher) match(p Expr, e Expr, b Bindings, k func(Bindings) bool) bool {
    switch x := p.(type) {
        case *Variable: {
            if v, ok := b[x.Name]; ok {
                return Equal(v, e) && k(b)
            } else if x.T != e.Type() {
                return false
            } else if self.Accept != nil && !self.Accept(x.Name, e) {
                return false
            } else {
                return k(b.with(x.Name, e))
            }
        }
        case *IntImm, *UIntImm, *FloatImm: {
            return Equal(p, e) && k(b)
        }
        case *Cast: {
            y, ok := e.(*Cast)
            return ok && x.T == y.T && self.match(x.V, y.V, b, k)
        }
        case *Not: {
            y, ok := e.(*Not)
            return ok && self.match(x.V, y.V, b, k)
        }
        case *Select: {
            y, ok := e.(*Select)
            return ok && self.seq([]Expr { x.Cond, x.True, x.False }, []Expr { y.Cond, y.True, y.False }, b, k)
        }
        case *Call: {
            y, ok := e.(*Call)
            return ok && x.Name == y.Name && x.Index == y.Index && len(x.Args) == len(y.Args) && self.seq(x.Args, y.Args, b, k)
        }
        case *Binary: {
            y, ok := e.(*Binary)
            if !ok || x.Op != y.Op {
                return false
            }

            /* operands in their written order */
            if self.seq([]Expr { x.A, x.B }, []Expr { y.A, y.B }, b, k) {
                return true
            }

            /* then swapped, if the operator allows it */
            return self.Commutative &&
                   x.Op.IsCommutative() &&
                   self.seq([]Expr { x.A, x.B }, []Expr { y.B, y.A }, b, k)
        }
        default: {
            panic("ir: unsupported template node: " + p.String())
        }
    }
}
