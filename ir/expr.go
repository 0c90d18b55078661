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
    `fmt`
)

// Expr is an immutable typed expression tree node.
type Expr interface {
    fmt.Stringer
    Type() Type
    irexpr()
}

func (*IntImm)   irexpr() {}
func (*UIntImm)  irexpr() {}
func (*FloatImm) irexpr() {}
func (*Variable) irexpr() {}
func (*Cast)     irexpr() {}
func (*Binary)   irexpr() {}
func (*Not)      irexpr() {}
func (*Select)   irexpr() {}
func (*Call)     irexpr() {}
func (*Let)      irexpr() {}

type IntImm struct {
    T Type
    V int64
}

type UIntImm struct {
    T Type
    V uint64
}

type FloatImm struct {
    T Type
    V float64
}

type Variable struct {
    T    Type
    Name string
}

type Cast struct {
    T Type
    V Expr
}

type Binary struct {
    Op BinaryOp
    A  Expr
    B  Expr
}

type Not struct {
    V Expr
}

type Select struct {
    Cond  Expr
    True  Expr
    False Expr
}

// Call refers to the value at Index of the (possibly tuple-valued) function Name.
type Call struct {
    T     Type
    Name  string
    Args  []Expr
    Index int
}

type Let struct {
    Name  string
    Value Expr
    Body  Expr
}

func (self *IntImm)   Type() Type { return self.T }
func (self *UIntImm)  Type() Type { return self.T }
func (self *FloatImm) Type() Type { return self.T }
func (self *Variable) Type() Type { return self.T }
func (self *Cast)     Type() Type { return self.T }
func (self *Not)      Type() Type { return Bool }
func (self *Select)   Type() Type { return self.True.Type() }
func (self *Call)     Type() Type { return self.T }
func (self *Let)      Type() Type { return self.Body.Type() }

func (self *Binary) Type() Type {
    if self.Op.IsCompare() {
        return Bool
    } else {
        return self.A.Type()
    }
}

func mismatch(op string, a Expr, b Expr) {
    panic(fmt.Sprintf("ir: type mismatch in %s: %s (%s) vs %s (%s)", op, a, a.Type(), b, b.Type()))
}

// NewBinary builds a binary node. Operand types must agree.
func NewBinary(op BinaryOp, a Expr, b Expr) Expr {
    if a.Type() != b.Type() {
        mismatch(op.String(), a, b)
    }
    if op.IsLogical() && a.Type().IsFloat() {
        panic("ir: logical operator on floating point operands: " + op.String())
    }
    return &Binary { Op: op, A: a, B: b }
}

func Add(a Expr, b Expr) Expr { return NewBinary(OpAdd, a, b) }
func Sub(a Expr, b Expr) Expr { return NewBinary(OpSub, a, b) }
func Mul(a Expr, b Expr) Expr { return NewBinary(OpMul, a, b) }
func Div(a Expr, b Expr) Expr { return NewBinary(OpDiv, a, b) }
func Mod(a Expr, b Expr) Expr { return NewBinary(OpMod, a, b) }
func Min(a Expr, b Expr) Expr { return NewBinary(OpMin, a, b) }
func Max(a Expr, b Expr) Expr { return NewBinary(OpMax, a, b) }
func EQ(a Expr, b Expr)  Expr { return NewBinary(OpEQ, a, b) }
func NE(a Expr, b Expr)  Expr { return NewBinary(OpNE, a, b) }
func LT(a Expr, b Expr)  Expr { return NewBinary(OpLT, a, b) }
func LE(a Expr, b Expr)  Expr { return NewBinary(OpLE, a, b) }
func GT(a Expr, b Expr)  Expr { return NewBinary(OpGT, a, b) }
func GE(a Expr, b Expr)  Expr { return NewBinary(OpGE, a, b) }
func And(a Expr, b Expr) Expr { return NewBinary(OpAnd, a, b) }
func Or(a Expr, b Expr)  Expr { return NewBinary(OpOr, a, b) }

func NewNot(v Expr) Expr {
    if !v.Type().IsBool() {
        panic(fmt.Sprintf("ir: logical not of non-boolean value %s (%s)", v, v.Type()))
    }
    return &Not { V: v }
}

func NewSelect(cond Expr, t Expr, f Expr) Expr {
    if !cond.Type().IsBool() {
        panic(fmt.Sprintf("ir: select condition is not boolean: %s (%s)", cond, cond.Type()))
    }
    if t.Type() != f.Type() {
        mismatch("select", t, f)
    }
    return &Select { Cond: cond, True: t, False: f }
}

func NewCast(t Type, v Expr) Expr {
    return &Cast { T: t, V: v }
}

func NewVar(t Type, name string) Expr {
    return &Variable { T: t, Name: name }
}

func NewCall(t Type, name string, args []Expr, index int) Expr {
    if index < 0 {
        panic(fmt.Sprintf("ir: negative value index %d in call to %s", index, name))
    }
    return &Call { T: t, Name: name, Args: args, Index: index }
}

func NewLet(name string, value Expr, body Expr) Expr {
    return &Let { Name: name, Value: value, Body: body }
}

// Children returns the direct operands of e, in evaluation order.
func Children(e Expr) []Expr {
    switch v := e.(type) {
        case *IntImm   : return nil
        case *UIntImm  : return nil
        case *FloatImm : return nil
        case *Variable : return nil
        case *Cast     : return []Expr { v.V }
        case *Binary   : return []Expr { v.A, v.B }
        case *Not      : return []Expr { v.V }
        case *Select   : return []Expr { v.Cond, v.True, v.False }
        case *Call     : return v.Args
        case *Let      : return []Expr { v.Value, v.Body }
        default        : panic(fmt.Sprintf("ir: unknown expression node %T", e))
    }
}

// Rebuild returns a copy of e with its operands replaced by ch, or e itself
// if every operand is unchanged.
func Rebuild(e Expr, ch []Expr) Expr {
    if same(Children(e), ch) {
        return e
    }
    switch v := e.(type) {
        case *Cast   : return NewCast(v.T, ch[0])
        case *Binary : return NewBinary(v.Op, ch[0], ch[1])
        case *Not    : return NewNot(ch[0])
        case *Select : return NewSelect(ch[0], ch[1], ch[2])
        case *Call   : return NewCall(v.T, v.Name, ch, v.Index)
        case *Let    : return NewLet(v.Name, ch[0], ch[1])
        default      : panic(fmt.Sprintf("ir: cannot rebuild leaf node %T", e))
    }
}

func same(a []Expr, b []Expr) bool {
    if len(a) != len(b) {
        return false
    }
    for i := range a {
        if a[i] != b[i] {
            return false
        }
    }
    return true
}

// IsConst reports whether e is a numeric literal.
func IsConst(e Expr) bool {
    switch e.(type) {
        case *IntImm, *UIntImm, *FloatImm : return true
        default                           : return false
    }
}
