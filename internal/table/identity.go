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
    `github.com/cloudwego/assoc/ir`
)

// Identity names the identity element of a row, independent of its type.
type Identity uint8

const (
    Zero Identity = iota
    One
    NegOne
    ValMax
    ValMin
    AllOnes
)

var _IdentityNames = [...]string {
    Zero    : "zero",
    One     : "one",
    NegOne  : "-one",
    ValMax  : "max",
    ValMin  : "min",
    AllOnes : "ones",
}

func (self Identity) String() string {
    return _IdentityNames[self]
}

// Value returns the identity as a literal of type t.
func (self Identity) Value(t ir.Type) ir.Expr {
    switch self {
        case Zero    : return ir.MakeZero(t)
        case One     : return ir.MakeOne(t)
        case NegOne  : return ir.MakeConst(t, -1)
        case ValMax  : return t.Max()
        case ValMin  : return t.Min()
        case AllOnes : return t.AllOnes()
        default      : panic("table: invalid identity")
    }
}
