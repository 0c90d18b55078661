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
    `strconv`
    `sync`
)

// Namer hands out names that never repeat within its lifetime.
type Namer interface {
    Unique(prefix string) string
}

// NameGen is a Namer keeping one counter per prefix.
type NameGen struct {
    mu sync.Mutex
    nb map[string]int
}

// DefaultNamer is shared by the whole compilation process.
var DefaultNamer = NewNameGen()

func NewNameGen() *NameGen {
    return &NameGen { nb: make(map[string]int) }
}

func (self *NameGen) Unique(prefix string) string {
    self.mu.Lock()
    defer self.mu.Unlock()
    n := self.nb[prefix]
    self.nb[prefix] = n + 1
    return prefix + "$" + strconv.Itoa(n)
}

// UniqueName draws a fresh name from DefaultNamer.
func UniqueName(prefix string) string {
    return DefaultNamer.Unique(prefix)
}
