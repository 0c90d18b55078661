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
    `slices`

    `github.com/hashicorp/go-set/v3`
    `github.com/oleiade/lane`
    `gonum.org/v1/gonum/graph/encoding/dot`
    `gonum.org/v1/gonum/graph/simple`
)

// DepGraph holds the references between the components of a tuple. An
// edge i -> j means component i reads the self-term of component j.
type DepGraph struct {
    g    *simple.DirectedGraph
    deps []*set.Set[int]
}

// NewDepGraph builds the graph of the given per-component dependency sets.
// The sets are not modified.
func NewDepGraph(deps []*set.Set[int]) *DepGraph {
    g := simple.NewDirectedGraph()
    for i := range deps {
        g.AddNode(simple.Node(i))
    }

    /* self loops are implied by the sets themselves */
    for i, d := range deps {
        for j := range d.Items() {
            if j != i {
                g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
            }
        }
    }
    return &DepGraph {
        g    : g,
        deps : deps,
    }
}

// Closure returns, for every component, the set of components reachable
// from its dependencies.
func (self *DepGraph) Closure() []*set.Set[int] {
    ret := make([]*set.Set[int], len(self.deps))
    for i, d := range self.deps {
        ret[i] = self.reach(d)
    }
    return ret
}

func (self *DepGraph) reach(d *set.Set[int]) *set.Set[int] {
    q := lane.NewQueue()
    r := set.New[int](len(self.deps))

    /* seed with the direct dependencies */
    for _, j := range sorted(d) {
        q.Enqueue(j)
    }

    /* breadth first until nothing new is reached */
    for !q.Empty() {
        j := q.Dequeue().(int)
        if !r.Insert(j) {
            continue
        }
        for it := self.g.From(int64(j)); it.Next(); {
            q.Enqueue(int(it.Node().ID()))
        }
    }
    return r
}

// Independent reports whether no closed set reaches a component other
// than its own.
func Independent(closed []*set.Set[int]) bool {
    for i, c := range closed {
        if !set.From([]int { i }).Subset(c) {
            return false
        }
    }
    return true
}

// Subgraphs returns the minimal coupled subgraphs: the distinct non-empty
// closed sets that are not strictly contained in another one, each in
// ascending order, in lexical order.
func Subgraphs(closed []*set.Set[int]) [][]int {
    var uniq []*set.Set[int]

    /* drop empty and duplicated sets */
    for _, c := range closed {
        if !c.Empty() && !slices.ContainsFunc(uniq, c.Equal) {
            uniq = append(uniq, c)
        }
    }

    /* drop the sets subsumed by a larger one */
    ret := make([][]int, 0, len(uniq))
    for _, c := range uniq {
        if !slices.ContainsFunc(uniq, func(o *set.Set[int]) bool { return o.ProperSubset(c) }) {
            ret = append(ret, sorted(c))
        }
    }

    /* stable order for the callers */
    slices.SortFunc(ret, func(a []int, b []int) int {
        return slices.Compare(a, b)
    })
    return ret
}

// DOT renders the graph for debugging.
func (self *DepGraph) DOT() string {
    buf, err := dot.Marshal(self.g, "deps", "", "  ")
    if err != nil {
        return err.Error()
    } else {
        return string(buf)
    }
}

func sorted(s *set.Set[int]) []int {
    r := s.Slice()
    slices.Sort(r)
    return r
}
