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

// Equal reports whether a and b are structurally identical. Two nil
// expressions are equal.
func Equal(a Expr, b Expr) bool {
    if a == nil || b == nil {
        return a == nil && b == nil
    }
    if a == b {
        return true
    }
    switch x := a.(type) {
        case *IntImm: {
            y, ok := b.(*IntImm)
            return ok && x.T == y.T && x.V == y.V
        }
        case *UIntImm: {
            y, ok := b.(*UIntImm)
            return ok && x.T == y.T && x.V == y.V
        }
        case *FloatImm: {
            y, ok := b.(*FloatImm)
            return ok && x.T == y.T && x.V == y.V
        }
        case *Variable: {
            y, ok := b.(*Variable)
            return ok && x.T == y.T && x.Name == y.Name
        }
        case *Cast: {
            y, ok := b.(*Cast)
            return ok && x.T == y.T && Equal(x.V, y.V)
        }
        case *Binary: {
            y, ok := b.(*Binary)
            return ok && x.Op == y.Op && Equal(x.A, y.A) && Equal(x.B, y.B)
        }
        case *Not: {
            y, ok := b.(*Not)
            return ok && Equal(x.V, y.V)
        }
        case *Select: {
            y, ok := b.(*Select)
            return ok && Equal(x.Cond, y.Cond) && Equal(x.True, y.True) && Equal(x.False, y.False)
        }
        case *Call: {
            y, ok := b.(*Call)
            return ok && x.T == y.T && x.Name == y.Name && x.Index == y.Index && EqualList(x.Args, y.Args)
        }
        case *Let: {
            y, ok := b.(*Let)
            return ok && x.Name == y.Name && Equal(x.Value, y.Value) && Equal(x.Body, y.Body)
        }
        default: {
            return false
        }
    }
}

func EqualList(a []Expr, b []Expr) bool {
    if len(a) != len(b) {
        return false
    }
    for i := range a {
        if !Equal(a[i], b[i]) {
            return false
        }
    }
    return true
}
