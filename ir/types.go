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
    `math`
)

type TypeCode uint8

const (
    CodeInt TypeCode = iota
    CodeUInt
    CodeFloat
)

// Type is a scalar value type. Booleans are 1-bit unsigned integers.
type Type struct {
    Code TypeCode
    Bits uint8
}

var (
    Bool    = Type { CodeUInt , 1  }
    Int8    = Type { CodeInt  , 8  }
    Int16   = Type { CodeInt  , 16 }
    Int32   = Type { CodeInt  , 32 }
    Int64   = Type { CodeInt  , 64 }
    UInt8   = Type { CodeUInt , 8  }
    UInt16  = Type { CodeUInt , 16 }
    UInt32  = Type { CodeUInt , 32 }
    UInt64  = Type { CodeUInt , 64 }
    Float32 = Type { CodeFloat, 32 }
    Float64 = Type { CodeFloat, 64 }
)

func (self Type) IsInt() bool {
    return self.Code == CodeInt
}

func (self Type) IsUInt() bool {
    return self.Code == CodeUInt
}

func (self Type) IsFloat() bool {
    return self.Code == CodeFloat
}

func (self Type) IsBool() bool {
    return self == Bool
}

// Widen returns the type with the same code and twice the bits, if any.
func (self Type) Widen() (Type, bool) {
    if self.IsBool() || self.Bits >= 64 {
        return self, false
    } else {
        return Type { self.Code, self.Bits * 2 }, true
    }
}

func (self Type) String() string {
    switch self.Code {
        case CodeInt   : return fmt.Sprintf("int%d", self.Bits)
        case CodeFloat : return fmt.Sprintf("float%d", self.Bits)
        case CodeUInt  : if self.Bits == 1 { return "bool" } else { return fmt.Sprintf("uint%d", self.Bits) }
        default        : panic("ir: invalid type code")
    }
}

// Max returns the largest value representable by the type.
func (self Type) Max() Expr {
    switch self.Code {
        case CodeInt   : return &IntImm { T: self, V: math.MaxInt64 >> (64 - self.Bits) }
        case CodeUInt  : return &UIntImm { T: self, V: math.MaxUint64 >> (64 - self.Bits) }
        case CodeFloat : return &FloatImm { T: self, V: math.Inf(1) }
        default        : panic("ir: invalid type code")
    }
}

// Min returns the smallest value representable by the type.
func (self Type) Min() Expr {
    switch self.Code {
        case CodeInt   : return &IntImm { T: self, V: math.MinInt64 >> (64 - self.Bits) }
        case CodeUInt  : return &UIntImm { T: self, V: 0 }
        case CodeFloat : return &FloatImm { T: self, V: math.Inf(-1) }
        default        : panic("ir: invalid type code")
    }
}

// AllOnes returns the value with every bit set, or nil for floating point types.
func (self Type) AllOnes() Expr {
    switch self.Code {
        case CodeInt  : return &IntImm { T: self, V: -1 }
        case CodeUInt : return &UIntImm { T: self, V: math.MaxUint64 >> (64 - self.Bits) }
        default       : return nil
    }
}

func (self Type) wrapInt(v int64) int64 {
    s := 64 - self.Bits
    return (v << s) >> s
}

func (self Type) wrapUInt(v uint64) uint64 {
    return v & (math.MaxUint64 >> (64 - self.Bits))
}

func (self Type) wrapFloat(v float64) float64 {
    if self.Bits == 32 {
        return float64(float32(v))
    } else {
        return v
    }
}
