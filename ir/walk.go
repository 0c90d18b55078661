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
    `sort`

    `github.com/oleiade/lane`
)

type _Frame struct {
    e Expr
    d int
}

// Walk visits every node of e in pre-order until fn returns false.
func Walk(e Expr, fn func(Expr) bool) {
    st := lane.NewStack()
    st.Push(e)

    /* depth-first, children pushed in reverse so they pop in order */
    for !st.Empty() {
        p := st.Pop().(Expr)
        if !fn(p) {
            return
        }
        ch := Children(p)
        for i := len(ch) - 1; i >= 0; i-- {
            st.Push(ch[i])
        }
    }
}

// UsesVar reports whether the variable name occurs anywhere in e.
func UsesVar(e Expr, name string) bool {
    found := false
    Walk(e, func(p Expr) bool {
        if v, ok := p.(*Variable); ok && v.Name == name {
            found = true
        }
        return !found
    })
    return found
}

// UsesAnyVar reports whether any of the named variables occurs in e.
func UsesAnyVar(e Expr, names map[string]bool) bool {
    found := false
    Walk(e, func(p Expr) bool {
        if v, ok := p.(*Variable); ok && names[v.Name] {
            found = true
        }
        return !found
    })
    return found
}

// Vars returns the sorted names of every variable occurring in e.
func Vars(e ...Expr) []string {
    seen := make(map[string]struct{})
    for _, x := range e {
        if x == nil {
            continue
        }
        Walk(x, func(p Expr) bool {
            if v, ok := p.(*Variable); ok {
                seen[v.Name] = struct{}{}
            }
            return true
        })
    }
    ret := make([]string, 0, len(seen))
    for k := range seen {
        ret = append(ret, k)
    }
    sort.Strings(ret)
    return ret
}

// Depth returns the height of the expression tree, leaves count as 1.
func Depth(e Expr) int {
    ret := 0
    st := lane.NewStack()
    st.Push(_Frame { e, 1 })

    /* track the deepest frame */
    for !st.Empty() {
        p := st.Pop().(_Frame)
        if p.d > ret {
            ret = p.d
        }
        for _, c := range Children(p.e) {
            st.Push(_Frame { c, p.d + 1 })
        }
    }
    return ret
}

// Mutate rebuilds e bottom-up, calling fn on every node after its operands
// have been rewritten.
func Mutate(e Expr, fn func(Expr) Expr) Expr {
    ch := Children(e)
    if len(ch) == 0 {
        return fn(e)
    }
    nc := make([]Expr, len(ch))
    for i, c := range ch {
        nc[i] = Mutate(c, fn)
    }
    return fn(Rebuild(e, nc))
}
