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
    `sync`
    `sync/atomic`

    `github.com/cloudwego/assoc/internal/utils`
    `github.com/cloudwego/assoc/ir`
    `github.com/davecgh/go-spew/spew`
)

// Pattern is a row instantiated for one value type. Its templates use the
// wildcards x0, x1, y0, y1 and k0.
type Pattern struct {
    Type        ir.Type
    Ops         []ir.Expr
    Identities  []ir.Expr
    Commutative bool
    depth       []int
}

// Size is the number of tuple components of the pattern.
func (self *Pattern) Size() int {
    return len(self.Ops)
}

func (self *Pattern) String() string {
    s := "["
    for i, op := range self.Ops {
        if i != 0 {
            s += ", "
        }
        s += op.String() + " @ " + self.Identities[i].String()
    }
    return s + "]"
}

func newPattern(r Row, t ir.Type) *Pattern {
    p := &Pattern {
        Type        : t,
        Ops         : make([]ir.Expr, len(r.Ops)),
        Identities  : make([]ir.Expr, len(r.Ops)),
        Commutative : r.Commutative,
        depth       : make([]int, len(r.Ops)),
    }

    /* build every component with the table type */
    for i, op := range r.Ops {
        p.Ops[i] = op.build(t)
        p.depth[i] = ir.Depth(p.Ops[i])
        p.Identities[i] = r.Identities[i].Value(t)
    }
    return p
}

// CacheStats describes the state of a Registry.
type CacheStats struct {
    Hit  uint64
    Miss uint64
    Size uint64
    Rows uint64
}

// Registry builds the pattern lists lazily and caches them per key. Safe
// for concurrent use.
type Registry struct {
    log   utils.Logger
    lock  sync.RWMutex
    eager sync.Once
    cache map[Key][]*Pattern
    hit   uint64
    miss  uint64
    size  uint64
    rows  uint64
}

// Default is shared by every prover that does not bring its own registry.
var Default = NewRegistry(utils.Nop)

func NewRegistry(log utils.Logger) *Registry {
    if log == nil {
        log = utils.Nop
    }
    return &Registry {
        log   : log,
        cache : make(map[Key][]*Pattern),
    }
}

// Get returns the patterns for k, in table order. Repeated calls return
// the same slice.
func (self *Registry) Get(k Key) []*Pattern {
    self.lock.RLock()
    ret, ok := self.cache[k]
    self.lock.RUnlock()

    /* fast path: already built */
    if ok {
        atomic.AddUint64(&self.hit, 1)
        return ret
    }

    /* slow path: build under the write lock */
    self.lock.Lock()
    defer self.lock.Unlock()

    /* another goroutine may have built it meanwhile */
    if ret, ok = self.cache[k]; ok {
        atomic.AddUint64(&self.hit, 1)
        return ret
    }

    /* instantiate every row */
    ret = self.build(k)
    self.cache[k] = ret
    atomic.AddUint64(&self.miss, 1)
    atomic.AddUint64(&self.size, 1)
    atomic.AddUint64(&self.rows, uint64(len(ret)))
    return ret
}

func (self *Registry) build(k Key) []*Pattern {
    rows := rowsOf(k)
    ret := make([]*Pattern, 0, len(rows))

    /* the value type of the key */
    for _, r := range rows {
        ret = append(ret, newPattern(r, k.Type.Type()))
    }

    /* dump the table if requested */
    if self.log.Enabled(6) && len(ret) != 0 {
        strs := make([]string, len(ret))
        for i, p := range ret {
            strs[i] = p.String()
        }
        self.log.Debugf(6, "table %s:\n%s", k, spew.Sdump(strs))
    } else {
        self.log.Debugf(5, "table %s: %d patterns", k, len(ret))
    }
    return ret
}

// BuildAll builds every table ahead of time. Only the first call does
// anything.
func (self *Registry) BuildAll() {
    self.eager.Do(func() {
        for _, k := range Keys() {
            self.Get(k)
        }
    })
}

func (self *Registry) Stats() CacheStats {
    return CacheStats {
        Hit  : atomic.LoadUint64(&self.hit),
        Miss : atomic.LoadUint64(&self.miss),
        Size : atomic.LoadUint64(&self.size),
        Rows : atomic.LoadUint64(&self.rows),
    }
}
