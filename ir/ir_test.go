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

import (
    `math`
    `testing`

    `github.com/stretchr/testify/require`
)

var (
    _x  = NewVar(Int32, "x")
    _y  = NewVar(Int32, "y")
    _rx = NewVar(Int32, "rx")
)

func TestType_Limits(t *testing.T) {
    require.Equal(t, int64(math.MaxInt32), Int32.Max().(*IntImm).V)
    require.Equal(t, int64(math.MinInt32), Int32.Min().(*IntImm).V)
    require.Equal(t, uint64(255), UInt8.Max().(*UIntImm).V)
    require.Equal(t, uint64(0), UInt8.Min().(*UIntImm).V)
    require.Equal(t, uint64(1), Bool.AllOnes().(*UIntImm).V)
    require.Equal(t, int64(-1), Int16.AllOnes().(*IntImm).V)
    require.True(t, math.IsInf(Float32.Max().(*FloatImm).V, 1))
    require.Nil(t, Float64.AllOnes())
    w, ok := UInt8.Widen()
    require.True(t, ok)
    require.Equal(t, UInt16, w)
    _, ok = Int64.Widen()
    require.False(t, ok)
}

func TestConst_Wrap(t *testing.T) {
    require.Equal(t, int64(-128), MakeConst(Int8, 128).(*IntImm).V)
    require.Equal(t, uint64(255), MakeConst(UInt8, -1).(*UIntImm).V)
    require.Equal(t, int64(44), ConvertConst(Int8, MakeConst(Int32, 300)).(*IntImm).V)
    require.Equal(t, uint64(300), ConvertConst(UInt16, MakeConst(Int32, 300)).(*UIntImm).V)
    v, ok := ConstValue(MakeConst(UInt16, 7))
    require.True(t, ok)
    require.Equal(t, int64(7), v)
}

func TestExpr_String(t *testing.T) {
    f := NewCall(Int32, "f", []Expr { _x }, 1)
    e := Max(Add(f, _y), Sub(f, MakeConst(Int32, 3)))
    require.Equal(t, "max((f(x)[1] + y), (f(x)[1] - 3))", e.String())
    require.Equal(t, "select((x < y), (uint8)3, uint8(y))", NewSelect(LT(_x, _y), MakeConst(UInt8, 3), NewCast(UInt8, _y)).String())
    require.Equal(t, "true", MakeBool(true).String())
}

func TestExpr_TypeMismatchPanics(t *testing.T) {
    require.Panics(t, func() { Add(_x, NewVar(Int16, "z")) })
    require.Panics(t, func() { NewSelect(_x, _x, _y) })
    require.Panics(t, func() { And(NewVar(Float32, "a"), NewVar(Float32, "b")) })
}

func TestEqual(t *testing.T) {
    a := Min(NewCall(Int32, "g", []Expr { _rx }, 0), MakeConst(Int32, 4))
    b := Min(NewCall(Int32, "g", []Expr { NewVar(Int32, "rx") }, 0), MakeConst(Int32, 4))
    require.True(t, Equal(a, b))
    require.False(t, Equal(a, Max(NewCall(Int32, "g", []Expr { _rx }, 0), MakeConst(Int32, 4))))
    require.False(t, Equal(MakeConst(Int32, 4), MakeConst(Int16, 4)))
    require.True(t, Equal(nil, nil))
    require.False(t, Equal(a, nil))
}

func TestWalk_VarsDepth(t *testing.T) {
    e := Add(Mul(_x, _y), NewSelect(LT(_rx, _x), _y, MakeConst(Int32, 0)))
    require.Equal(t, []string { "rx", "x", "y" }, Vars(e))
    require.True(t, UsesVar(e, "rx"))
    require.False(t, UsesVar(e, "z"))
    require.True(t, UsesAnyVar(e, map[string]bool { "z": true, "y": true }))
    require.Equal(t, 4, Depth(e))
    require.Equal(t, 1, Depth(_x))
}

func TestSubstitute(t *testing.T) {
    e := Add(_x, NewLet("x", _y, Mul(_x, _x)))
    r := Substitute("x", MakeConst(Int32, 2), e)
    require.Equal(t, "(2 + (let x = y in (x * x)))", r.String())
    r = SubstituteExpr(Mul(_x, _x), _rx, e)
    require.Equal(t, "(x + (let x = y in rx))", r.String())
    r = RenameVar("y", "_dummy$0", e)
    require.True(t, UsesVar(r, "_dummy$0"))
    require.False(t, UsesVar(r, "y"))
}

func TestRebuild_KeepsIdentity(t *testing.T) {
    e := Add(_x, _y)
    require.True(t, e == Rebuild(e, Children(e)))
    require.True(t, e == Mutate(e, func(p Expr) Expr { return p }))
}

func TestNameGen(t *testing.T) {
    ng := NewNameGen()
    require.Equal(t, "_x_0$0", ng.Unique("_x_0"))
    require.Equal(t, "_x_0$1", ng.Unique("_x_0"))
    require.Equal(t, "_y_0$0", ng.Unique("_y_0"))
}

func TestMatcher_Wildcards(t *testing.T) {
    x0 := NewVar(Int32, "x0")
    y0 := NewVar(Int32, "y0")
    g := NewCall(Int32, "g", []Expr { _rx }, 0)
    m := &Matcher{}

    /* a repeated wildcard must bind the same subexpression */
    b, ok := m.Match(Add(Max(Min(y0, x0), y0), x0), Add(Max(Min(g, _x), g), _x))
    require.True(t, ok)
    require.True(t, Equal(g, b["y0"]))
    require.True(t, Equal(_x, b["x0"]))
    _, ok = m.Match(Add(Max(Min(y0, x0), y0), x0), Add(Max(Min(g, _x), _y), _x))
    require.False(t, ok)

    /* types must agree */
    _, ok = m.Match(Add(x0, y0), Add(NewVar(Int16, "a"), NewVar(Int16, "b")))
    require.False(t, ok)
}

func TestMatcher_CommutativeBacktracking(t *testing.T) {
    x0 := NewVar(Int32, "x0")
    y0 := NewVar(Int32, "y0")
    m := &Matcher {
        Commutative: true,
        Accept: func(name string, e Expr) bool {
            if name == "x0" {
                return Equal(e, _x)
            } else {
                return !UsesVar(e, "x")
            }
        },
    }

    /* the first operand order binds x0 to y and fails, the swap succeeds */
    b, ok := m.Match(Mul(x0, y0), Mul(_y, _x))
    require.True(t, ok)
    require.True(t, Equal(_y, b["y0"]))

    /* non-commutative operators never swap */
    _, ok = m.Match(Sub(x0, y0), Sub(_y, _x))
    require.False(t, ok)

    /* the inner choice is revisited when the outer one fails */
    b, ok = m.Match(Add(Min(x0, y0), y0), Add(Min(_rx, _x), _rx))
    require.True(t, ok)
    require.True(t, Equal(_rx, b["y0"]))
}

func TestMatcher_MatchAllSharesBindings(t *testing.T) {
    x0, y0 := NewVar(Int32, "x0"), NewVar(Int32, "y0")
    x1, y1 := NewVar(Int32, "x1"), NewVar(Int32, "y1")
    m := &Matcher{}
    g := NewCall(Int32, "g", []Expr { _rx }, 0)
    a, b := NewVar(Int32, "a"), NewVar(Int32, "b")
    tmpl := []Expr { Min(x0, y0), NewSelect(LT(x0, y0), x1, y1) }
    r, ok := m.MatchAll(tmpl, []Expr { Min(a, g), NewSelect(LT(a, g), b, _rx) }, nil)
    require.True(t, ok)
    require.True(t, Equal(_rx, r["y1"]))
    _, ok = m.MatchAll(tmpl, []Expr { Min(a, g), NewSelect(LT(a, _rx), b, _rx) }, nil)
    require.False(t, ok)
}
