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
    `strings`
    `testing`

    `github.com/brianvoe/gofakeit/v6`
    `github.com/hashicorp/go-set/v3`
    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`

    `github.com/cloudwego/assoc/internal/canon`
    `github.com/cloudwego/assoc/internal/opts`
    `github.com/cloudwego/assoc/internal/table`
    `github.com/cloudwego/assoc/internal/utils`
    `github.com/cloudwego/assoc/ir`
)

var (
    _x = ir.NewVar(ir.Int32, "x")
    _r = ir.NewVar(ir.Int32, "r")
    _z = ir.NewVar(ir.Int32, "z")
    _g = ir.NewCall(ir.Int32, "g", []ir.Expr { _r }, 0)
)

func fref(i int) ir.Expr {
    return ir.NewCall(ir.Int32, "f", []ir.Expr { _x }, i)
}

func c32(v int64) ir.Expr {
    return ir.MakeConst(ir.Int32, v)
}

// shortNamer hands out x{i} and y{i} for the operand symbols so that the
// expected operators stay readable.
type shortNamer struct {
    n int
}

func (self *shortNamer) Unique(prefix string) string {
    var i int
    if _, err := fmt.Sscanf(prefix, "_x_%d", &i); err == nil {
        return fmt.Sprintf("x%d", i)
    }
    if _, err := fmt.Sscanf(prefix, "_y_%d", &i); err == nil {
        return fmt.Sprintf("y%d", i)
    }
    self.n++
    return fmt.Sprintf("%s$%d", prefix, self.n)
}

func newProver() *Prover {
    return New(table.NewRegistry(utils.Nop), opts.Options {
        CommutativeMatch : true,
        Logger           : utils.Nop,
        Namer            : &shortNamer{},
    })
}

func prove(t *testing.T, exprs ...ir.Expr) *Result {
    ret := newProver().Prove("f", []ir.Expr { _x }, exprs)
    require.NotNil(t, ret)
    return ret
}

func TestResolver_Substitutes(t *testing.T) {
    subs := map[int]ir.Expr{}
    r := NewResolver("f", []ir.Expr { _x }, 1, []string { "x0", "x1" }, subs, utils.Nop)
    e := r.Resolve(ir.Add(fref(1), ir.Mul(fref(0), _g)))
    require.True(t, r.Solvable)
    require.Equal(t, "(x1 + (x0 * g(r)))", e.String())
    require.Equal(t, "f(x)[1]", r.XPart.String())
    require.True(t, r.Deps.EqualSlice([]int { 0, 1 }))
    require.Len(t, subs, 2)
}

func TestResolver_NoSelfReference(t *testing.T) {
    r := NewResolver("f", []ir.Expr { _x }, 0, []string { "x0" }, map[int]ir.Expr{}, utils.Nop)
    e := r.Resolve(ir.Min(c32(4), _g))
    require.True(t, r.Solvable)
    require.Nil(t, r.XPart)
    require.True(t, r.Deps.Empty())
    require.Equal(t, "min(4, g(r))", e.String())
}

func TestResolver_Conditional(t *testing.T) {
    r := NewResolver("f", []ir.Expr { _x }, 0, []string { "x0", "x1" }, map[int]ir.Expr{}, utils.Nop)
    r.Resolve(ir.NewSelect(ir.GT(fref(0), c32(0)), fref(0), _g))
    require.False(t, r.Solvable)

    /* another component in the condition is fine */
    r = NewResolver("f", []ir.Expr { _x }, 1, []string { "x0", "x1" }, map[int]ir.Expr{}, utils.Nop)
    e := r.Resolve(ir.NewSelect(ir.LT(fref(0), _g), fref(1), _r))
    require.True(t, r.Solvable)
    require.Equal(t, "select((x0 < g(r)), x1, r)", e.String())
    require.True(t, r.Deps.EqualSlice([]int { 0, 1 }))
}

func TestResolver_ArgumentMismatch(t *testing.T) {
    r := NewResolver("f", []ir.Expr { _x }, 0, []string { "x0" }, map[int]ir.Expr{}, utils.Nop)
    other := ir.NewCall(ir.Int32, "f", []ir.Expr { ir.Add(_x, c32(1)) }, 0)
    r.Resolve(ir.Add(fref(0), other))
    require.False(t, r.Solvable)
}

func TestResolver_ArityMismatch(t *testing.T) {
    r := NewResolver("f", []ir.Expr { _x }, 0, []string { "x0" }, map[int]ir.Expr{}, utils.Nop)
    bad := ir.NewCall(ir.Int32, "f", []ir.Expr { _x, _z }, 0)
    defer func() {
        v := recover()
        require.NotNil(t, v)
        ie, ok := utils.AsInternal(v)
        require.True(t, ok)
        require.Equal(t, "self-reference", ie.Pass)
    }()
    r.Resolve(ir.Add(bad, _g))
}

func deps(ds ...[]int) []*set.Set[int] {
    ret := make([]*set.Set[int], len(ds))
    for i, d := range ds {
        ret[i] = set.From(d)
    }
    return ret
}

func closedSlices(ss []*set.Set[int]) [][]int {
    ret := make([][]int, len(ss))
    for i, s := range ss {
        ret[i] = sorted(s)
    }
    return ret
}

func TestDepGraph_Closure(t *testing.T) {
    dg := NewDepGraph(deps([]int { 1 }, []int { 2 }, []int { 2 }, nil))
    closed := dg.Closure()
    require.Equal(t, [][]int { { 1, 2 }, { 2 }, { 2 }, {} }, closedSlices(closed))
    require.False(t, Independent(closed))
    require.Equal(t, [][]int { { 1, 2 } }, Subgraphs(closed))
    require.True(t, strings.Contains(dg.DOT(), "digraph deps {"))
}

func TestDepGraph_Independent(t *testing.T) {
    closed := NewDepGraph(deps(nil, []int { 1 }, nil)).Closure()
    require.True(t, Independent(closed))
    require.Equal(t, [][]int { { 1 } }, Subgraphs(closed))
}

func TestDepGraph_Cycle(t *testing.T) {
    closed := NewDepGraph(deps([]int { 0, 1 }, []int { 0, 1 }, []int { 2 })).Closure()
    require.Equal(t, [][]int { { 0, 1 }, { 0, 1 }, { 2 } }, closedSlices(closed))
    require.Equal(t, [][]int { { 0, 1 }, { 2 } }, Subgraphs(closed))
}

func TestProve_Primitives(t *testing.T) {
    b := ir.NewVar(ir.Bool, "b")
    fb := ir.NewCall(ir.Bool, "f", []ir.Expr { _x }, 0)
    for _, tc := range []struct {
        name string
        expr ir.Expr
        op   string
        id   string
        y    string
        comm bool
    } {
        { "add", ir.Add(fref(0), _g)  , "(x0 + y0)"   , "0"           , "g(r)"       , true  },
        { "mul", ir.Mul(_g, fref(0))  , "(x0 * y0)"   , "1"           , "g(r)"       , true  },
        { "min", ir.Min(fref(0), _g)  , "min(x0, y0)" , "2147483647"  , "g(r)"       , true  },
        { "max", ir.Max(_z, fref(0))  , "max(x0, y0)" , "-2147483648" , "z"          , true  },
        { "sub", ir.Sub(fref(0), _g)  , "(x0 + y0)"   , "0"           , "(0 - g(r))" , false },
        { "and", ir.And(fb, b)        , "(x0 && y0)"  , "true"        , "b"          , true  },
        { "or" , ir.Or(b, fb)         , "(x0 || y0)"  , "false"       , "b"          , true  },
    } {
        t.Run(tc.name, func(t *testing.T) {
            ret := prove(t, tc.expr)
            require.True(t, ret.Associative)
            require.Equal(t, tc.op, ret.Ops.Ops[0].String())
            require.Equal(t, tc.id, ret.Ops.Identities[0].String())
            require.Equal(t, tc.y, ret.Ops.Y[0].Expr.String())
            require.Equal(t, "f(x)", ret.Ops.X[0].Expr.String())
            require.Equal(t, tc.comm, ret.Ops.IsCommutative())
        })
    }
}

func TestProve_SelfIdentity(t *testing.T) {
    require.False(t, prove(t, fref(0)).Associative)
}

func TestProve_NonSeparable(t *testing.T) {
    require.False(t, prove(t, ir.Max(ir.Add(fref(0), _g), _g)).Associative)
}

func TestProve_CommonSelfTerm(t *testing.T) {
    ret := prove(t, ir.Max(ir.Add(fref(0), _g), ir.Sub(fref(0), c32(3))))
    require.True(t, ret.Associative)
    require.Equal(t, "(x0 + y0)", ret.Ops.Ops[0].String())
    require.Equal(t, "0", ret.Ops.Identities[0].String())
    require.Equal(t, "max(g(r), -3)", ret.Ops.Y[0].Expr.String())
}

func TestProve_ConditionalSelfReference(t *testing.T) {
    require.False(t, prove(t, ir.NewSelect(ir.GT(fref(0), c32(0)), fref(0), _g)).Associative)
}

func TestProve_NoRecurrence(t *testing.T) {
    ret := prove(t, ir.Min(c32(4), _g))
    require.True(t, ret.Associative)
    require.Equal(t, "y0", ret.Ops.Ops[0].String())
    require.Equal(t, "min(g(r), 4)", ret.Ops.Y[0].Expr.String())
    require.False(t, ret.Ops.X[0].Defined())
    require.False(t, ret.Ops.IsCommutative())
}

func TestProve_Tuple(t *testing.T) {
    ret := prove(t, c32(2), c32(3), ir.Add(fref(2), _z))
    require.True(t, ret.Associative)
    require.Equal(t, []string { "y0", "y1", "(x2 + y2)" }, strs(ret.Ops.Ops))
    require.Equal(t, "2", ret.Ops.Y[0].Expr.String())
    require.Equal(t, "3", ret.Ops.Y[1].Expr.String())
    require.Equal(t, "z", ret.Ops.Y[2].Expr.String())
    require.Equal(t, [][]int { {}, {}, { 2 } }, ret.Dependencies)
}

func TestProve_IndependentTuple(t *testing.T) {
    ret := prove(t, ir.Min(fref(0), _g), ir.Mul(ir.Mul(fref(1), _g), c32(2)), ir.Add(fref(2), _z))
    require.True(t, ret.Associative)
    require.Equal(t, []string { "min(x0, y0)", "(x1 * y1)", "(x2 + y2)" }, strs(ret.Ops.Ops))
    require.Equal(t, "(g(r) * 2)", ret.Ops.Y[1].Expr.String())
}

func TestProve_ArgMin(t *testing.T) {
    ret := prove(t,
        ir.Min(fref(0), _g),
        ir.NewSelect(ir.LT(fref(0), _g), fref(1), _r),
    )
    require.True(t, ret.Associative)
    require.Equal(t, []string { "min(x0, y0)", "select((x0 < y0), x1, y1)" }, strs(ret.Ops.Ops))
    require.Equal(t, []string { "2147483647", "0" }, strs(ret.Ops.Identities))
    require.Equal(t, "g(r)", ret.Ops.Y[0].Expr.String())
    require.Equal(t, "r", ret.Ops.Y[1].Expr.String())
    require.Equal(t, [][]int { { 0 }, { 0, 1 } }, ret.Dependencies)
}

func TestProve_ArgMinReversed(t *testing.T) {
    ret := prove(t,
        ir.NewSelect(ir.LT(fref(1), _g), fref(0), _r),
        ir.Min(fref(1), _g),
    )
    require.True(t, ret.Associative)
    require.Equal(t, []string { "select((x1 < y1), x0, y0)", "min(x1, y1)" }, strs(ret.Ops.Ops))
    require.Equal(t, []string { "0", "2147483647" }, strs(ret.Ops.Identities))
    require.Equal(t, "r", ret.Ops.Y[0].Expr.String())
    require.Equal(t, "g(r)", ret.Ops.Y[1].Expr.String())
    require.Equal(t, [][]int { { 0, 1 }, { 1 } }, ret.Dependencies)
}

func TestProve_ArgMin3(t *testing.T) {
    lt := ir.LT(fref(0), _g)
    ret := prove(t,
        ir.Min(fref(0), _g),
        ir.NewSelect(lt, fref(1), _r),
        ir.NewSelect(lt, fref(2), _z),
    )
    require.True(t, ret.Associative)
    require.Equal(t, []string {
        "min(x0, y0)",
        "select((x0 < y0), x1, y1)",
        "select((x0 < y0), x2, y2)",
    }, strs(ret.Ops.Ops))
    require.Equal(t, []string { "2147483647", "0", "0" }, strs(ret.Ops.Identities))
    require.Equal(t, "g(r)", ret.Ops.Y[0].Expr.String())
    require.Equal(t, "r", ret.Ops.Y[1].Expr.String())
    require.Equal(t, "z", ret.Ops.Y[2].Expr.String())
    require.Equal(t, [][]int { { 0 }, { 0, 1 }, { 0, 2 } }, ret.Dependencies)
}

func TestProve_ArgMinInt64(t *testing.T) {
    f := func(i int) ir.Expr { return ir.NewCall(ir.Int64, "f", []ir.Expr { _x }, i) }
    r := ir.NewVar(ir.Int64, "r")
    g := ir.NewCall(ir.Int64, "g", []ir.Expr { _r }, 0)
    ret := prove(t,
        ir.Min(f(0), g),
        ir.NewSelect(ir.LT(f(0), g), f(1), r),
    )
    require.False(t, ret.Associative)
}

func sharedState() *state {
    st := &state {
        xs     : []string { "x0", "x1", "x2" },
        ys     : []string { "y0", "y1", "y2" },
        xnames : map[string]bool { "x0": true, "x1": true, "x2": true },
        comps  : make([]*component, 3),
    }
    for i, x := range st.xs {
        st.exprs = append(st.exprs, ir.Add(ir.NewVar(ir.Int32, x), _g))
        st.xparts = append(st.xparts, fref(i))
    }
    return st
}

func TestDependent_SharedComponent(t *testing.T) {
    st := sharedState()
    require.True(t, newProver().dependent(st, [][]int { { 0, 1 } }))
    require.Equal(t, "(x0 + y0)", st.comps[0].op.String())
    require.Equal(t, "(x1 + y0)", st.comps[1].op.String())
    require.Equal(t, "(x2 + y2)", st.comps[2].op.String())

    /* component 1 is (x1 + y0) in the first subgraph and (x1 + y2) in the second */
    st = sharedState()
    require.False(t, newProver().dependent(st, [][]int { { 0, 1 }, { 2, 1 } }))
}

func TestProve_ComplexMultiply(t *testing.T) {
    a := ir.NewCall(ir.Int32, "g", []ir.Expr { _r }, 0)
    b := ir.NewCall(ir.Int32, "g", []ir.Expr { _r }, 1)
    ret := prove(t,
        ir.Sub(ir.Mul(fref(0), a), ir.Mul(fref(1), b)),
        ir.Add(ir.Mul(fref(0), b), ir.Mul(fref(1), a)),
    )
    require.True(t, ret.Associative)
    require.Equal(t, []string { "((x0 * y0) - (x1 * y1))", "((x1 * y0) + (x0 * y1))" }, strs(ret.Ops.Ops))
    require.Equal(t, []string { "1", "0" }, strs(ret.Ops.Identities))
    require.Equal(t, "g(r)", ret.Ops.Y[0].Expr.String())
    require.Equal(t, "g(r)[1]", ret.Ops.Y[1].Expr.String())
}

func TestProve_TooManyCoupled(t *testing.T) {
    ret := prove(t,
        ir.Add(fref(0), fref(1)),
        ir.Add(fref(1), fref(2)),
        ir.Add(fref(2), fref(0)),
    )
    require.False(t, ret.Associative)
}

func TestProve_NameCollision(t *testing.T) {
    x0 := ir.NewVar(ir.Int32, "x0")
    ret := prove(t, ir.Add(fref(0), x0))
    require.True(t, ret.Associative)
    require.Equal(t, "(x0 + y0)", ret.Ops.Ops[0].String())
    require.Equal(t, "x0", ret.Ops.Y[0].Expr.String())
}

func TestNew_DefaultRegistry(t *testing.T) {
    p := New(nil, opts.Options { Logger: utils.Nop })
    require.Same(t, table.Default, p.table)
}

func TestProve_Table(t *testing.T) {
    ret := prove(t, ir.Max(ir.Min(fref(0), c32(5)), _g))
    require.True(t, ret.Associative)
    require.Equal(t, "max(min(x0, 5), y0)", ret.Ops.Ops[0].String())
    require.Equal(t, "-2147483648", ret.Ops.Identities[0].String())
    require.Equal(t, "g(r)", ret.Ops.Y[0].Expr.String())
}

func TestProve_RoundTrip(t *testing.T) {
    fk := gofakeit.New(42)
    for _, e := range []ir.Expr {
        ir.Add(fref(0), _g),
        ir.Sub(fref(0), _g),
        ir.Mul(_g, fref(0)),
        ir.Max(ir.Add(fref(0), _g), ir.Sub(fref(0), c32(3))),
        ir.Max(ir.Min(fref(0), c32(5)), _g),
        ir.Min(ir.Add(_g, c32(7)), fref(0)),
    } {
        ret := prove(t, e)
        require.True(t, ret.Associative, e.String())
        op := ret.Ops.Expand(0)
        for i := 0; i < 32; i++ {
            fv := c32(int64(fk.Number(-1000, 1000)))
            gv := c32(int64(fk.Number(-1000, 1000)))
            want := eval(e, fv, gv)
            got := eval(op, fv, gv)
            assert.Equal(t, want, got, "%s vs %s at f=%s g=%s", e, op, fv, gv)
        }
    }
}

func TestProve_Identity(t *testing.T) {
    fk := gofakeit.New(7)
    for _, e := range []ir.Expr {
        ir.Add(fref(0), _g),
        ir.Mul(fref(0), _g),
        ir.Min(fref(0), _g),
        ir.Max(fref(0), _g),
        ir.Max(ir.Min(fref(0), c32(5)), _g),
    } {
        ret := prove(t, e)
        require.True(t, ret.Associative)
        for i := 0; i < 16; i++ {
            yv := c32(int64(fk.Number(-1000, 1000)))
            m := map[string]ir.Expr {
                ret.Ops.X[0].Var: ret.Ops.Identities[0],
                ret.Ops.Y[0].Var: yv,
            }
            got := canon.Simplified(ir.SubstituteMap(m, ret.Ops.Ops[0]))
            require.Equal(t, yv.String(), got.String(), "%s with %s", ret.Ops.Ops[0], yv)
        }
    }
}

func eval(e ir.Expr, fv ir.Expr, gv ir.Expr) string {
    e = ir.SubstituteExpr(fref(0), fv, e)
    e = ir.SubstituteExpr(_g, gv, e)
    return canon.Simplified(e).String()
}

func strs(es []ir.Expr) []string {
    ret := make([]string, len(es))
    for i, e := range es {
        ret[i] = e.String()
    }
    return ret
}
