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
    `math`

    `github.com/cloudwego/assoc/ir`
)

func foldInt(op ir.BinaryOp, x int64, y int64) (int64, bool) {
    switch op {
        case ir.OpAdd : return x + y, true
        case ir.OpSub : return x - y, true
        case ir.OpMul : return x * y, true
        case ir.OpDiv : if y == 0 { return 0, false } else { return divEuclid(x, y), true }
        case ir.OpMod : if y == 0 { return 0, false } else { return x - divEuclid(x, y) * y, true }
        case ir.OpMin : if x < y { return x, true } else { return y, true }
        case ir.OpMax : if x > y { return x, true } else { return y, true }
        case ir.OpAnd : return x & y, true
        case ir.OpOr  : return x | y, true
        default       : return 0, false
    }
}

func foldUInt(op ir.BinaryOp, x uint64, y uint64) (uint64, bool) {
    switch op {
        case ir.OpAdd : return x + y, true
        case ir.OpSub : return x - y, true
        case ir.OpMul : return x * y, true
        case ir.OpDiv : if y == 0 { return 0, false } else { return x / y, true }
        case ir.OpMod : if y == 0 { return 0, false } else { return x % y, true }
        case ir.OpMin : if x < y { return x, true } else { return y, true }
        case ir.OpMax : if x > y { return x, true } else { return y, true }
        case ir.OpAnd : return x & y, true
        case ir.OpOr  : return x | y, true
        default       : return 0, false
    }
}

func foldFloat(op ir.BinaryOp, x float64, y float64) (float64, bool) {
    switch op {
        case ir.OpAdd : return x + y, true
        case ir.OpSub : return x - y, true
        case ir.OpMul : return x * y, true
        case ir.OpDiv : if y == 0 { return 0, false } else { return x / y, true }
        case ir.OpMod : if y == 0 { return 0, false } else { return x - math.Floor(x / y) * y, true }
        case ir.OpMin : return math.Min(x, y), true
        case ir.OpMax : return math.Max(x, y), true
        default       : return 0, false
    }
}

func compare(op ir.BinaryOp, lt bool, eq bool) bool {
    switch op {
        case ir.OpEQ : return eq
        case ir.OpNE : return !eq
        case ir.OpLT : return lt
        case ir.OpLE : return lt || eq
        case ir.OpGT : return !lt && !eq
        case ir.OpGE : return !lt
        default      : panic("fold: invalid comparison: " + op.String())
    }
}

// divEuclid rounds towards negative infinity for positive divisors, keeping
// the remainder non-negative.
func divEuclid(x int64, y int64) int64 {
    q := x / y
    if x % y < 0 {
        if y > 0 {
            q--
        } else {
            q++
        }
    }
    return q
}

// foldBinary evaluates op over two literals, or returns nil if the result is
// not defined.
func foldBinary(op ir.BinaryOp, a ir.Expr, b ir.Expr) ir.Expr {
    switch x := a.(type) {
        case *ir.IntImm: {
            y := b.(*ir.IntImm)
            if op.IsCompare() {
                return ir.MakeBool(compare(op, x.V < y.V, x.V == y.V))
            } else if v, ok := foldInt(op, x.V, y.V); ok {
                return ir.MakeConst(x.T, v)
            } else {
                return nil
            }
        }
        case *ir.UIntImm: {
            y := b.(*ir.UIntImm)
            if op.IsCompare() {
                return ir.MakeBool(compare(op, x.V < y.V, x.V == y.V))
            } else if v, ok := foldUInt(op, x.V, y.V); ok {
                return ir.MakeConst(x.T, int64(v))
            } else {
                return nil
            }
        }
        case *ir.FloatImm: {
            y := b.(*ir.FloatImm)
            if op.IsCompare() {
                return ir.MakeBool(compare(op, x.V < y.V, x.V == y.V))
            } else if v, ok := foldFloat(op, x.V, y.V); ok {
                return ir.MakeFloat(x.T, v)
            } else {
                return nil
            }
        }
        default: {
            return nil
        }
    }
}

// negate returns the literal 0 - c.
func negate(c ir.Expr) ir.Expr {
    return foldBinary(ir.OpSub, ir.MakeZero(c.Type()), c)
}
