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

// MakeConst builds a literal of type t holding v, wrapped to the width of t.
func MakeConst(t Type, v int64) Expr {
    switch t.Code {
        case CodeInt   : return &IntImm { T: t, V: t.wrapInt(v) }
        case CodeUInt  : return &UIntImm { T: t, V: t.wrapUInt(uint64(v)) }
        case CodeFloat : return &FloatImm { T: t, V: t.wrapFloat(float64(v)) }
        default        : panic("ir: invalid type code")
    }
}

func MakeZero(t Type) Expr {
    return MakeConst(t, 0)
}

func MakeOne(t Type) Expr {
    return MakeConst(t, 1)
}

func MakeBool(v bool) Expr {
    if v {
        return &UIntImm { T: Bool, V: 1 }
    } else {
        return &UIntImm { T: Bool, V: 0 }
    }
}

func MakeFloat(t Type, v float64) Expr {
    if !t.IsFloat() {
        panic("ir: floating point literal of non-float type " + t.String())
    }
    return &FloatImm { T: t, V: t.wrapFloat(v) }
}

// ConvertConst converts the literal c to type t with the wrapping rules of a cast.
func ConvertConst(t Type, c Expr) Expr {
    switch v := c.(type) {
        case *IntImm: {
            switch t.Code {
                case CodeInt   : return &IntImm { T: t, V: t.wrapInt(v.V) }
                case CodeUInt  : return &UIntImm { T: t, V: t.wrapUInt(uint64(v.V)) }
                default        : return &FloatImm { T: t, V: t.wrapFloat(float64(v.V)) }
            }
        }
        case *UIntImm: {
            switch t.Code {
                case CodeInt   : return &IntImm { T: t, V: t.wrapInt(int64(v.V)) }
                case CodeUInt  : return &UIntImm { T: t, V: t.wrapUInt(v.V) }
                default        : return &FloatImm { T: t, V: t.wrapFloat(float64(v.V)) }
            }
        }
        case *FloatImm: {
            switch t.Code {
                case CodeInt   : return &IntImm { T: t, V: t.wrapInt(int64(v.V)) }
                case CodeUInt  : return &UIntImm { T: t, V: t.wrapUInt(uint64(v.V)) }
                default        : return &FloatImm { T: t, V: t.wrapFloat(v.V) }
            }
        }
        default: {
            panic(fmt.Sprintf("ir: not a literal: %s", c))
        }
    }
}

// ConstValue returns the value of an integer literal, sign- or zero-extended.
func ConstValue(e Expr) (int64, bool) {
    switch v := e.(type) {
        case *IntImm  : return v.V, true
        case *UIntImm : return int64(v.V), true
        default       : return 0, false
    }
}

func IsZero(e Expr) bool {
    switch v := e.(type) {
        case *IntImm   : return v.V == 0
        case *UIntImm  : return v.V == 0
        case *FloatImm : return v.V == 0
        default        : return false
    }
}

func IsOne(e Expr) bool {
    switch v := e.(type) {
        case *IntImm   : return v.V == 1
        case *UIntImm  : return v.V == 1
        case *FloatImm : return v.V == 1
        default        : return false
    }
}
