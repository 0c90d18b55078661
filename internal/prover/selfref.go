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
    `github.com/hashicorp/go-set/v3`

    `github.com/cloudwego/assoc/internal/utils`
    `github.com/cloudwego/assoc/ir`
)

// Resolver replaces the calls of one tuple component to the function being
// defined with the self-term variables. The substitutions table is shared
// by the resolvers of every component of a definition.
type Resolver struct {
    fn    string
    args  []ir.Expr
    index int
    xs    []string
    subs  map[int]ir.Expr
    log   utils.Logger
    cond  bool

    // Solvable is cleared as soon as a disqualifying self-reference is found.
    Solvable bool

    // XPart is the self-reference of the component itself, nil if there is none.
    XPart ir.Expr

    // Deps holds the value indices of every self-reference, including
    // the component itself.
    Deps *set.Set[int]
}

func NewResolver(fn string, args []ir.Expr, index int, xs []string, subs map[int]ir.Expr, log utils.Logger) *Resolver {
    return &Resolver {
        fn       : fn,
        args     : args,
        index    : index,
        xs       : xs,
        subs     : subs,
        log      : log,
        Solvable : true,
        Deps     : set.New[int](len(xs)),
    }
}

// Resolve returns e with every self-reference substituted. The result is
// meaningless if Solvable is cleared.
func (self *Resolver) Resolve(e ir.Expr) ir.Expr {
    return self.mutate(e)
}

func (self *Resolver) mutate(e ir.Expr) ir.Expr {
    if !self.Solvable {
        return e
    }
    switch v := e.(type) {
        case *ir.Call   : return self.call(v)
        case *ir.Select : return self.choose(v)
        default         : return self.operands(e)
    }
}

func (self *Resolver) operands(e ir.Expr) ir.Expr {
    ch := ir.Children(e)
    if len(ch) == 0 {
        return e
    }

    /* operands in evaluation order */
    nc := make([]ir.Expr, len(ch))
    for i, c := range ch {
        nc[i] = self.mutate(c)
    }
    return ir.Rebuild(e, nc)
}

func (self *Resolver) choose(v *ir.Select) ir.Expr {
    cond := self.cond
    self.cond = true
    c := self.mutate(v.Cond)
    self.cond = cond

    /* the branches are not conditions */
    t := self.mutate(v.True)
    f := self.mutate(v.False)
    return ir.Rebuild(v, []ir.Expr { c, t, f })
}

func (self *Resolver) call(v *ir.Call) ir.Expr {
    e := self.operands(v)
    if !self.Solvable || v.Name != self.fn {
        return e
    }

    /* a self-reference always carries the LHS arity */
    p := e.(*ir.Call)
    if len(p.Args) != len(self.args) {
        utils.Throw("self-reference", "%s has %d arguments instead of %d", p, len(p.Args), len(self.args))
    }

    /* reordering partial results may change which branch is taken */
    if self.cond && p.Index == self.index {
        self.log.Debugf(4, "self-reference %s inside a condition, not associative", p)
        self.Solvable = false
        return e
    }

    /* every self-reference must read the same point */
    for i, a := range p.Args {
        if !ir.Equal(a, self.args[i]) {
            self.log.Debugf(4, "self-reference %s with different arguments from the LHS, not associative", p)
            self.Solvable = false
            return e
        }
    }

    /* substitute the call */
    x := self.variable(p)
    if p.Index == self.index {
        self.XPart = p
    }
    self.Deps.Insert(p.Index)
    return x
}

func (self *Resolver) variable(p *ir.Call) ir.Expr {
    if x, ok := self.subs[p.Index]; ok {
        if x.Type() != p.Type() {
            utils.Throw("self-reference", "%s is %s but its substitute %s is %s", p, p.Type(), x, x.Type())
        }
        self.log.Debugf(4, "substituting %s with %s", p, x)
        return x
    }

    /* first reference to this value index */
    if p.Index < 0 || p.Index >= len(self.xs) {
        utils.Throw("self-reference", "%s refers to value %d of a %d-tuple", p, p.Index, len(self.xs))
    }
    x := ir.NewVar(p.Type(), self.xs[p.Index])
    self.subs[p.Index] = x
    self.log.Debugf(4, "substituting %s with %s", p, x)
    return x
}
