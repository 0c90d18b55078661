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

// ValType is the value-type class a table is built for.
type ValType uint8

const (
    UInt1 ValType = iota
    UInt8
    UInt16
    UInt32
    UInt64
    Int8
    Int16
    Int32
    Int64
    Float32
    Float64
    _ValTypeCount
)

var _ValTypes = [...]ir.Type {
    UInt1   : ir.Bool,
    UInt8   : ir.UInt8,
    UInt16  : ir.UInt16,
    UInt32  : ir.UInt32,
    UInt64  : ir.UInt64,
    Int8    : ir.Int8,
    Int16   : ir.Int16,
    Int32   : ir.Int32,
    Int64   : ir.Int64,
    Float32 : ir.Float32,
    Float64 : ir.Float64,
}

// ValTypeOf classifies t, returning false for types without a table.
func ValTypeOf(t ir.Type) (ValType, bool) {
    for i, v := range _ValTypes {
        if v == t {
            return ValType(i), true
        }
    }
    return 0, false
}

func (self ValType) Type() ir.Type {
    return _ValTypes[self]
}

func (self ValType) String() string {
    return _ValTypes[self].String()
}

// Root is the operator at the root of the first expression of a row.
type Root uint8

const (
    RootAdd Root = iota
    RootSub
    RootMul
    RootMin
    RootMax
    RootSelect
    RootAnd
    RootOr
    RootCast
    _RootCount
)

var _RootNames = [...]string {
    RootAdd    : "add",
    RootSub    : "sub",
    RootMul    : "mul",
    RootMin    : "min",
    RootMax    : "max",
    RootSelect : "select",
    RootAnd    : "and",
    RootOr     : "or",
    RootCast   : "cast",
}

func (self Root) String() string {
    return _RootNames[self]
}

// RootOf returns the root kind of e, if it has one of the supported kinds.
func RootOf(e ir.Expr) (Root, bool) {
    switch v := e.(type) {
        case *ir.Select : return RootSelect, true
        case *ir.Cast   : return RootCast, true
        case *ir.Binary : {
            switch v.Op {
                case ir.OpAdd : return RootAdd, true
                case ir.OpSub : return RootSub, true
                case ir.OpMul : return RootMul, true
                case ir.OpMin : return RootMin, true
                case ir.OpMax : return RootMax, true
                case ir.OpAnd : return RootAnd, true
                case ir.OpOr  : return RootOr, true
                default       : return 0, false
            }
        }
        default: {
            return 0, false
        }
    }
}

// Key identifies one list of rows.
type Key struct {
    Type  ValType
    Root  Root
    Arity int
}

func (self Key) String() string {
    return fmt.Sprintf("%s/%s/%d", self.Type, self.Root, self.Arity)
}

// Keys enumerates every key a registry can be asked for.
func Keys() []Key {
    ret := make([]Key, 0, int(_ValTypeCount) * int(_RootCount) * 2)
    for t := ValType(0); t < _ValTypeCount; t++ {
        for r := Root(0); r < _RootCount; r++ {
            ret = append(ret, Key { t, r, 1 }, Key { t, r, 2 })
        }
    }
    return ret
}
