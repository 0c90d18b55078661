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
    `fmt`
    `slices`

    `github.com/davecgh/go-spew/spew`
    `github.com/hashicorp/go-set/v3`

    `github.com/cloudwego/assoc/internal/canon`
    `github.com/cloudwego/assoc/internal/opts`
    `github.com/cloudwego/assoc/internal/table`
    `github.com/cloudwego/assoc/internal/utils`
    `github.com/cloudwego/assoc/ir`
)

// Prover proves the associativity of update definitions. It keeps no
// state between proofs other than the table registry.
type Prover struct {
    opts  opts.Options
    log   utils.Logger
    names ir.Namer
    table *table.Registry
    canon *canon.Canonicalizer
}

// New creates a Prover drawing patterns from reg, or from the process-wide
// table.Default if reg is nil. With o.EagerTable, every table of the
// registry is built here, once per registry.
func New(reg *table.Registry, o opts.Options) *Prover {
    if reg == nil {
        reg = table.Default
    }
    if o.EagerTable {
        reg.BuildAll()
    }
    log := o.Log()
    names := o.Names()
    return &Prover {
        opts  : o,
        log   : log,
        names : names,
        table : reg,
        canon : canon.New(names, log),
    }
}

// state is the working set of one proof.
type state struct {
    fn     string
    args   []ir.Expr
    xs     []string
    ys     []string
    xnames map[string]bool
    subs   map[int]ir.Expr
    exprs  []ir.Expr
    xparts []ir.Expr
    deps   []*set.Set[int]
    comps  []*component
    rename map[string]string
}

// Prove proves that the update fn(args) = exprs can be computed by an
// associative operator, one per tuple component. Internal invariant
// violations panic with *utils.InternalError.
func (self *Prover) Prove(fn string, args []ir.Expr, exprs []ir.Expr) *Result {
    st := &state {
        fn     : fn,
        args   : make([]ir.Expr, len(args)),
        exprs  : make([]ir.Expr, len(exprs)),
        xparts : make([]ir.Expr, len(exprs)),
        deps   : make([]*set.Set[int], len(exprs)),
        comps  : make([]*component, len(exprs)),
        subs   : make(map[int]ir.Expr, len(exprs)),
    }

    /* the LHS arguments are compared against every self-reference */
    for i, a := range args {
        st.args[i] = self.canon.Normalize(a)
    }

    /* fresh operand symbols, moving colliding user variables out of the way */
    self.symbols(st, exprs)
    if !self.resolve(st) {
        return &Result{}
    }

    /* dispatch on the shape of the dependencies */
    dg := NewDepGraph(st.deps)
    closed := dg.Closure()
    if self.log.Enabled(5) {
        self.log.Debugf(5, "dependencies of %s:\n%s", fn, dg.DOT())
    }

    /* solve every component on its own, or by coupled subgraphs */
    if Independent(closed) {
        if !self.independent(st) {
            return &Result{}
        }
    } else {
        if !self.dependent(st, Subgraphs(closed)) {
            return &Result{}
        }
    }

    /* package the result */
    ret := self.result(st)
    if self.log.Enabled(5) {
        self.log.Debugf(5, "proof of %s:\n%s", fn, spew.Sdump(ret.Dependencies))
        self.log.Debugf(5, "operators of %s:\n%s", fn, ret)
    }
    return ret
}

func (self *Prover) symbols(st *state, exprs []ir.Expr) {
    n := len(exprs)
    st.xs = make([]string, n)
    st.ys = make([]string, n)
    st.xnames = make(map[string]bool, n)
    st.rename = make(map[string]string)

    /* names of the operand symbols */
    for i := 0; i < n; i++ {
        st.xs[i] = self.names.Unique(fmt.Sprintf("_x_%d", i))
        st.ys[i] = self.names.Unique(fmt.Sprintf("_y_%d", i))
        st.xnames[st.xs[i]] = true
    }

    /* user variables that happen to use one of them */
    used := set.From(ir.Vars(append(slices.Clone(exprs), st.args...)...))
    for _, v := range append(slices.Clone(st.xs), st.ys...) {
        if used.Contains(v) {
            d := self.names.Unique("_dummy")
            st.rename[d] = v
            self.log.Debugf(4, "renaming user variable %s to %s", v, d)
        }
    }

    /* apply the renaming */
    for i, e := range exprs {
        st.exprs[i] = e
        for d, v := range st.rename {
            st.exprs[i] = ir.RenameVar(v, d, st.exprs[i])
        }
    }
    for i := range st.args {
        for d, v := range st.rename {
            st.args[i] = ir.RenameVar(v, d, st.args[i])
        }
    }
}

func (self *Prover) resolve(st *state) bool {
    for i, e := range st.exprs {
        r := NewResolver(st.fn, st.args, i, st.xs, st.subs, self.log)
        e = r.Resolve(canon.Simplified(e))

        /* any disqualified component fails the tuple */
        if !r.Solvable {
            return false
        }

        /* normalize with the self-term isolated */
        st.deps[i] = r.Deps
        st.xparts[i] = r.XPart
        st.exprs[i] = self.canon.Canonicalize(e, st.xs[i])
        self.log.Debugf(5, "component %d: %s", i, st.exprs[i])
    }
    return true
}

func (self *Prover) independent(st *state) bool {
    for i := range st.exprs {
        if c, ok := self.classify(st, i); !ok {
            return false
        } else {
            st.comps[i] = c
        }
    }
    return true
}

func (self *Prover) dependent(st *state, subs [][]int) bool {
    for _, sub := range subs {
        cs, ok := self.joint(st, sub)
        if !ok {
            return false
        }

        /* a component shared by two subgraphs must agree */
        for j, c := range sub {
            if p := st.comps[c]; p == nil {
                st.comps[c] = cs[j]
            } else if !p.equals(cs[j]) {
                self.log.Debugf(4, "conflicting operators for component %d: %s and %s", c, p.op, cs[j].op)
                return false
            }
        }
    }

    /* the remaining components are outside every subgraph */
    for i, c := range st.comps {
        if c != nil {
            continue
        }
        if p, ok := self.classify(st, i); !ok {
            return false
        } else {
            st.comps[i] = p
        }
    }
    return true
}

func (self *Prover) result(st *state) *Result {
    n := len(st.comps)
    ret := &Result {
        Associative  : true,
        Dependencies : make([][]int, n),
        Ops          : AssociativeOps {
            Ops         : make([]ir.Expr, n),
            Identities  : make([]ir.Expr, n),
            X           : make([]Replacement, n),
            Y           : make([]Replacement, n),
            Commutative : make([]bool, n),
        },
    }

    /* restore the renamed user variables */
    for i, c := range st.comps {
        ret.Dependencies[i] = sorted(st.deps[i])
        ret.Ops.Ops[i] = c.op
        ret.Ops.Identities[i] = c.identity
        ret.Ops.X[i] = Replacement { Var: c.x.Var, Expr: self.restore(st, c.x.Expr) }
        ret.Ops.Y[i] = Replacement { Var: c.y.Var, Expr: self.restore(st, c.y.Expr) }
        ret.Ops.Commutative[i] = c.commutative
    }
    return ret
}

func (self *Prover) restore(st *state, e ir.Expr) ir.Expr {
    if e == nil {
        return nil
    }
    for d, v := range st.rename {
        e = ir.RenameVar(d, v, e)
    }
    return e
}
