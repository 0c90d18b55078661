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
	"github.com/cloudwego/assoc/internal/opts"
	"github.com/cloudwego/assoc/internal/prover"
	"github.com/cloudwego/assoc/internal/table"
	"github.com/cloudwego/assoc/internal/utils"
	"github.com/cloudwego/assoc/ir"
)

type (
	// Result is the outcome of a proof. Result.Associative is false when the
	// definition cannot be parallelized, in which case Ops is empty.
	Result = prover.Result

	// AssociativeOps holds one combining operator per tuple component.
	AssociativeOps = prover.AssociativeOps

	// Replacement binds an operand symbol to the expression it stands for.
	Replacement = prover.Replacement

	// Registry caches the pattern tables. It is safe for concurrent use.
	Registry = table.Registry
)

// NewRegistry creates an empty Registry. Tables are built on first use.
func NewRegistry() *Registry {
	return table.NewRegistry(utils.Nop)
}

// Prover proves associativity of update definitions.
type Prover struct {
	p *prover.Prover
}

// NewProver creates a Prover. Without WithRegistry, every Prover shares the
// same process-wide tables.
func NewProver(options ...Option) *Prover {
	c := config{opts: opts.GetDefaultOptions()}
	for _, fn := range options {
		fn(&c)
	}
	return &Prover{p: prover.New(c.registry, c.opts)}
}

// Prove proves that the update fn(args) = exprs, where exprs has one
// expression per tuple component, can be computed as an associative
// combination of its previous value with a value that does not depend on it.
//
// A definition that is not associative yields a Result with Associative
// unset and a nil error. The error is an *InternalError, only ever returned
// when the prover hits a bug.
func (self *Prover) Prove(fn string, args []ir.Expr, exprs []ir.Expr) (ret *Result, err error) {
	defer func() {
		if v := recover(); v != nil {
			if ie, ok := utils.AsInternal(v); ok {
				ret, err = nil, ie
			} else {
				panic(v)
			}
		}
	}()
	return self.p.Prove(fn, args, exprs), nil
}

// MustProve is like Prove, but panics with the *InternalError instead.
func (self *Prover) MustProve(fn string, args []ir.Expr, exprs []ir.Expr) *Result {
	return self.p.Prove(fn, args, exprs)
}

// Prove proves associativity with a Prover using the default options.
func Prove(fn string, args []ir.Expr, exprs []ir.Expr) (*Result, error) {
	return NewProver().Prove(fn, args, exprs)
}

// MustProve is like Prove, but panics on internal errors.
func MustProve(fn string, args []ir.Expr, exprs []ir.Expr) *Result {
	return NewProver().MustProve(fn, args, exprs)
}
