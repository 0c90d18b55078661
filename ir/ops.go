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

type BinaryOp uint8

const (
    OpAdd BinaryOp = iota
    OpSub
    OpMul
    OpDiv
    OpMod
    OpMin
    OpMax
    OpEQ
    OpNE
    OpLT
    OpLE
    OpGT
    OpGE
    OpAnd
    OpOr
)

var _OpNames = [...]string {
    OpAdd : "+",
    OpSub : "-",
    OpMul : "*",
    OpDiv : "/",
    OpMod : "%",
    OpMin : "min",
    OpMax : "max",
    OpEQ  : "==",
    OpNE  : "!=",
    OpLT  : "<",
    OpLE  : "<=",
    OpGT  : ">",
    OpGE  : ">=",
    OpAnd : "&&",
    OpOr  : "||",
}

func (self BinaryOp) String() string {
    if int(self) < len(_OpNames) {
        return _OpNames[self]
    } else {
        return fmt.Sprintf("BinaryOp(%d)", self)
    }
}

// IsCompare reports whether the operator yields a boolean from two values.
func (self BinaryOp) IsCompare() bool {
    return self >= OpEQ && self <= OpGE
}

func (self BinaryOp) IsLogical() bool {
    return self == OpAnd || self == OpOr
}

func (self BinaryOp) IsCommutative() bool {
    switch self {
        case OpAdd, OpMul, OpMin, OpMax, OpEQ, OpNE, OpAnd, OpOr : return true
        default                                                  : return false
    }
}

func (self BinaryOp) IsAssociative() bool {
    switch self {
        case OpAdd, OpMul, OpMin, OpMax, OpAnd, OpOr : return true
        default                                      : return false
    }
}

func (self BinaryOp) isFunc() bool {
    return self == OpMin || self == OpMax
}
