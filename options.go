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

package assoc

import (
	"fmt"

	"github.com/cloudwego/assoc/internal/opts"
	"github.com/cloudwego/assoc/internal/table"
	"github.com/cloudwego/assoc/internal/utils"
	"github.com/cloudwego/assoc/ir"
)

// Option is the property setter function for Prover.
type Option func(*config)

type config struct {
	opts     opts.Options
	registry *table.Registry
}

// Logger receives the diagnostics of the prover, see WithLogger.
type Logger = utils.Logger

// WithDebugLevel sets the verbosity of the diagnostics written to stderr.
//
// Level 4 reports why a definition is not associative, level 5 adds the
// table lookups, the dependency graphs and the proof results, and level 6
// dumps every table the first time it is built.
//
// The default value of this option is "0", which disables diagnostics.
func WithDebugLevel(level int) Option {
	if level < 0 {
		panic(fmt.Sprintf("assoc: invalid debug level: %d", level))
	} else {
		return func(c *config) { c.opts.DebugLevel = level }
	}
}

// WithEagerTable builds every pattern table when the Prover is created,
// instead of lazily on first use.
func WithEagerTable(v bool) Option {
	return func(c *config) { c.opts.EagerTable = v }
}

// WithCommutativeMatch lets table patterns match the operands of
// commutative operators in either order.
//
// The default value of this option is "true".
func WithCommutativeMatch(v bool) Option {
	return func(c *config) { c.opts.CommutativeMatch = v }
}

// WithLogger sends the diagnostics to l instead of stderr. The debug level
// is left to l.
func WithLogger(l Logger) Option {
	return func(c *config) { c.opts.Logger = l }
}

// WithNamer draws the operand symbols from n instead of the process-wide
// name generator.
func WithNamer(n ir.Namer) Option {
	if n == nil {
		panic("assoc: nil namer")
	} else {
		return func(c *config) { c.opts.Namer = n }
	}
}

// WithRegistry makes the Prover use its own pattern tables.
func WithRegistry(r *Registry) Option {
	if r == nil {
		panic("assoc: nil registry")
	} else {
		return func(c *config) { c.registry = r }
	}
}

// SetDebugLevel sets the default debug level for all provers created from
// now on.
//
// This value can also be configured with the `ASSOC_DEBUG_LEVEL`
// environment variable.
//
// Returns the old debug level.
func SetDebugLevel(level int) int {
	level, opts.DebugLevel = opts.DebugLevel, level
	return level
}

// SetEagerTable sets the default of WithEagerTable for all provers created
// from now on.
//
// This value can also be configured with the `ASSOC_EAGER_TABLE`
// environment variable.
//
// Returns the old value.
func SetEagerTable(v bool) bool {
	v, opts.EagerTable = opts.EagerTable, v
	return v
}
