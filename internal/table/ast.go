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

    `github.com/cloudwego/assoc/internal/utils`
    `github.com/cloudwego/assoc/ir`
)

// TypeSpec selects the type of a node relative to the value type of the table.
type TypeSpec uint8

const (
    Same TypeSpec = iota
    Wide
)

func (self TypeSpec) resolve(t ir.Type) ir.Type {
    switch self {
        case Same: {
            return t
        }
        case Wide: {
            if w, ok := t.Widen(); ok {
                return w
            } else {
                panic(utils.EInternal("table", "type %s cannot be widened", t))
            }
        }
        default: {
            panic(utils.EInternal("table", "invalid type spec %d", self))
        }
    }
}

// Node is one node of a row template.
type Node interface {
    fmt.Stringer
    build(t ir.Type) ir.Expr
}

// Leaf is a wildcard. X leaves stand for self-terms, Y leaves for the
// values being combined, and K leaves for constants.
type Leaf uint8

const (
    X0 Leaf = iota
    X1
    Y0
    Y1
    K0
)

var _LeafNames = [...]string {
    X0: "x0",
    X1: "x1",
    Y0: "y0",
    Y1: "y1",
    K0: "k0",
}

func (self Leaf) String() string {
    return _LeafNames[self]
}

func (self Leaf) build(t ir.Type) ir.Expr {
    return ir.NewVar(t, _LeafNames[self])
}

// Const is a literal taking the identity value of the table type, converted
// to the type selected by T.
type Const struct {
    T TypeSpec
    V Identity
}

func (self *Const) String() string {
    return fmt.Sprintf("%s<%d>", self.V, self.T)
}

func (self *Const) build(t ir.Type) ir.Expr {
    return ir.ConvertConst(self.T.resolve(t), self.V.Value(t))
}

type Binary struct {
    Op ir.BinaryOp
    L  Node
    R  Node
}

func (self *Binary) String() string {
    return fmt.Sprintf("%s(%s, %s)", self.Op, self.L, self.R)
}

func (self *Binary) build(t ir.Type) ir.Expr {
    return ir.NewBinary(self.Op, self.L.build(t), self.R.build(t))
}

type Select struct {
    Cond  Node
    True  Node
    False Node
}

func (self *Select) String() string {
    return fmt.Sprintf("select(%s, %s, %s)", self.Cond, self.True, self.False)
}

func (self *Select) build(t ir.Type) ir.Expr {
    return ir.NewSelect(self.Cond.build(t), self.True.build(t), self.False.build(t))
}

type Cast struct {
    To TypeSpec
    V  Node
}

func (self *Cast) String() string {
    return fmt.Sprintf("cast<%d>(%s)", self.To, self.V)
}

func (self *Cast) build(t ir.Type) ir.Expr {
    return ir.NewCast(self.To.resolve(t), self.V.build(t))
}

func add(l Node, r Node) Node   { return &Binary { ir.OpAdd, l, r } }
func sub(l Node, r Node) Node   { return &Binary { ir.OpSub, l, r } }
func mul(l Node, r Node) Node   { return &Binary { ir.OpMul, l, r } }
func minOf(l Node, r Node) Node { return &Binary { ir.OpMin, l, r } }
func maxOf(l Node, r Node) Node { return &Binary { ir.OpMax, l, r } }
func lt(l Node, r Node) Node    { return &Binary { ir.OpLT, l, r } }

func sel(c Node, t Node, f Node) Node {
    return &Select { c, t, f }
}

func cast(to TypeSpec, v Node) Node {
    return &Cast { to, v }
}

func lit(to TypeSpec, v Identity) Node {
    return &Const { to, v }
}
