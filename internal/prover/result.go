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

package prover

import (
    `fmt`
    `strings`

    `github.com/cloudwego/assoc/ir`
)

// Replacement binds a synthetic operand symbol to the expression it stands
// for. Expr is nil when the operator does not use the symbol.
type Replacement struct {
    Var  string
    Expr ir.Expr
}

func (self Replacement) Defined() bool {
    return self.Expr != nil
}

func (self Replacement) String() string {
    if self.Expr == nil {
        return self.Var + " -> <undefined>"
    } else {
        return self.Var + " -> " + self.Expr.String()
    }
}

// AssociativeOps describes the combining operator of every tuple component.
// Ops[i] is written in terms of the X and Y symbols, Identities[i] is the
// identity of Ops[i].
type AssociativeOps struct {
    Ops         []ir.Expr
    Identities  []ir.Expr
    X           []Replacement
    Y           []Replacement
    Commutative []bool
}

func (self *AssociativeOps) Size() int {
    return len(self.Ops)
}

// IsCommutative reports whether every component is commutative.
func (self *AssociativeOps) IsCommutative() bool {
    for _, c := range self.Commutative {
        if !c {
            return false
        }
    }
    return len(self.Commutative) != 0
}

// Expand substitutes every defined replacement into Ops[i].
func (self *AssociativeOps) Expand(i int) ir.Expr {
    m := make(map[string]ir.Expr, len(self.X) * 2)
    for j := range self.X {
        if self.X[j].Defined() {
            m[self.X[j].Var] = self.X[j].Expr
        }
        if self.Y[j].Defined() {
            m[self.Y[j].Var] = self.Y[j].Expr
        }
    }
    return ir.SubstituteMap(m, self.Ops[i])
}

func (self *AssociativeOps) String() string {
    sb := strings.Builder{}
    for i, op := range self.Ops {
        fmt.Fprintf(&sb, "[%d] %s @ %s; %s; %s", i, op, self.Identities[i], self.X[i], self.Y[i])
        if i != len(self.Ops) - 1 {
            sb.WriteByte('\n')
        }
    }
    return sb.String()
}

// Result is the outcome of one proof. Ops is empty unless Associative is set.
type Result struct {
    Associative  bool
    Ops          AssociativeOps
    Dependencies [][]int
}

func (self *Result) String() string {
    if !self.Associative {
        return "not associative"
    } else {
        return self.Ops.String()
    }
}
