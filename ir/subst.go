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

// Substitute replaces every free occurrence of the variable name in e with repl.
func Substitute(name string, repl Expr, e Expr) Expr {
    return SubstituteMap(map[string]Expr { name: repl }, e)
}

// SubstituteMap replaces free variables of e according to m. Let bindings
// shadow the names they bind.
func SubstituteMap(m map[string]Expr, e Expr) Expr {
    if len(m) == 0 {
        return e
    }
    switch v := e.(type) {
        case *Variable: {
            if r, ok := m[v.Name]; ok {
                return r
            } else {
                return e
            }
        }
        case *Let: {
            val := SubstituteMap(m, v.Value)
            body := v.Body
            if _, ok := m[v.Name]; ok {
                inner := make(map[string]Expr, len(m))
                for k, x := range m {
                    if k != v.Name {
                        inner[k] = x
                    }
                }
                body = SubstituteMap(inner, body)
            } else {
                body = SubstituteMap(m, body)
            }
            return Rebuild(e, []Expr { val, body })
        }
    }

    /* leaves without variables */
    ch := Children(e)
    if len(ch) == 0 {
        return e
    }

    /* substitute in operands */
    nc := make([]Expr, len(ch))
    for i, c := range ch {
        nc[i] = SubstituteMap(m, c)
    }
    return Rebuild(e, nc)
}

// SubstituteExpr replaces every subexpression of e equal to find with repl.
func SubstituteExpr(find Expr, repl Expr, e Expr) Expr {
    if Equal(find, e) {
        return repl
    }
    ch := Children(e)
    if len(ch) == 0 {
        return e
    }
    nc := make([]Expr, len(ch))
    for i, c := range ch {
        nc[i] = SubstituteExpr(find, repl, c)
    }
    return Rebuild(e, nc)
}

// RenameVar renames every variable called from to to, keeping its type.
func RenameVar(from string, to string, e Expr) Expr {
    return Mutate(e, func(p Expr) Expr {
        if v, ok := p.(*Variable); ok && v.Name == from {
            return NewVar(v.T, to)
        } else {
            return p
        }
    })
}
