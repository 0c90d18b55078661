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

package assoc

import (
    `sync`
    `testing`

    `github.com/davecgh/go-spew/spew`
    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`

    `github.com/cloudwego/assoc/ir`
)

var (
    _x = ir.NewVar(ir.Int32, "x")
    _r = ir.NewVar(ir.Int32, "r")
    _g = ir.NewCall(ir.Int32, "g", []ir.Expr { _r }, 0)
)

func fcall(i int) ir.Expr {
    return ir.NewCall(ir.Int32, "f", []ir.Expr { _x }, i)
}

func TestProve_Add(t *testing.T) {
    ret, err := Prove("f", []ir.Expr { _x }, []ir.Expr { ir.Add(fcall(0), _g) })
    require.NoError(t, err)
    require.True(t, ret.Associative, spew.Sdump(ret))
    require.Equal(t, 1, ret.Ops.Size())
    x, y := ret.Ops.X[0], ret.Ops.Y[0]
    require.Equal(t, ir.Add(ir.NewVar(ir.Int32, x.Var), ir.NewVar(ir.Int32, y.Var)).String(), ret.Ops.Ops[0].String())
    require.Equal(t, "f(x)", x.Expr.String())
    require.Equal(t, "g(r)", y.Expr.String())
    require.Equal(t, "0", ret.Ops.Identities[0].String())
    require.True(t, ret.Ops.IsCommutative())
}

func TestProve_SubIsNotCommutative(t *testing.T) {
    ret, err := Prove("f", []ir.Expr { _x }, []ir.Expr { ir.Sub(fcall(0), _g) })
    require.NoError(t, err)
    require.True(t, ret.Associative)
    require.Equal(t, ir.OpAdd, ret.Ops.Ops[0].(*ir.Binary).Op)
    require.False(t, ret.Ops.IsCommutative())
}

func TestProve_NotAssociative(t *testing.T) {
    for _, e := range []ir.Expr {
        fcall(0),
        ir.Max(ir.Add(fcall(0), _g), _g),
        ir.NewSelect(ir.GT(fcall(0), ir.MakeZero(ir.Int32)), fcall(0), _g),
        ir.Add(fcall(0), ir.NewCall(ir.Int32, "f", []ir.Expr { _r }, 0)),
    } {
        ret, err := Prove("f", []ir.Expr { _x }, []ir.Expr { e })
        require.NoError(t, err)
        assert.False(t, ret.Associative, e.String())
        assert.Zero(t, ret.Ops.Size())
    }
}

func TestProve_ArgMin(t *testing.T) {
    ret, err := NewProver(WithRegistry(NewRegistry())).Prove("f", []ir.Expr { _x }, []ir.Expr {
        ir.Min(fcall(0), _g),
        ir.NewSelect(ir.LT(fcall(0), _g), fcall(1), _r),
    })
    require.NoError(t, err)
    require.True(t, ret.Associative)
    require.Equal(t, [][]int { { 0 }, { 0, 1 } }, ret.Dependencies)
    require.Equal(t, ir.Int32.Max().String(), ret.Ops.Identities[0].String())
    require.Equal(t, "r", ret.Ops.Y[1].Expr.String())
}

func TestProve_InternalError(t *testing.T) {
    bad := ir.NewCall(ir.Int32, "f", []ir.Expr { _x, _r }, 0)
    ret, err := Prove("f", []ir.Expr { _x }, []ir.Expr { ir.Add(bad, _g) })
    require.Nil(t, ret)
    require.Error(t, err)
    require.True(t, IsInternal(err))
    require.Contains(t, err.Error(), "internal error")
    require.Panics(t, func() {
        MustProve("f", []ir.Expr { _x }, []ir.Expr { ir.Add(bad, _g) })
    })
}

func TestProve_Concurrent(t *testing.T) {
    reg := NewRegistry()
    p := NewProver(WithRegistry(reg), WithNamer(ir.NewNameGen()))
    wg := sync.WaitGroup{}
    for i := 0; i < 8; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            ret, err := p.Prove("f", []ir.Expr { _x }, []ir.Expr { ir.Max(ir.Min(fcall(0), ir.MakeConst(ir.Int32, 5)), _g) })
            assert.NoError(t, err)
            assert.True(t, ret.Associative)
        }()
    }
    wg.Wait()
    st := reg.Stats()
    require.Equal(t, uint64(1), st.Miss)
    require.Equal(t, uint64(7), st.Hit)
}

func TestOptions(t *testing.T) {
    require.Panics(t, func() { WithDebugLevel(-1) })
    require.Panics(t, func() { WithRegistry(nil) })
    require.Panics(t, func() { WithNamer(nil) })

    reg := NewRegistry()
    NewProver(WithRegistry(reg), WithEagerTable(true), WithCommutativeMatch(false))
    st := reg.Stats()
    require.NotZero(t, st.Size)

    /* eager provers sharing a registry build it once */
    NewProver(WithRegistry(reg), WithEagerTable(true))
    require.Equal(t, st, reg.Stats())

    old := SetDebugLevel(3)
    require.Equal(t, 3, SetDebugLevel(old))
}
