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

package canon

import (
    `github.com/cloudwego/assoc/internal/utils`
    `github.com/cloudwego/assoc/ir`
)

// Unit is the expression being normalized, along with the variable to isolate.
type Unit struct {
    Expr  ir.Expr
    Var   string
    Names ir.Namer
}

type Pass interface {
    Apply(*Unit)
}

type PassDescriptor struct {
    Pass Pass
    Name string
}

var Passes = [...]PassDescriptor {
    { Name: "Common Sub-expression Elimination" , Pass: new(CSE) },
    { Name: "Algebraic Simplification"          , Pass: new(Simplify) },
    { Name: "Self-term Isolation"               , Pass: new(Solve) },
    { Name: "Let Flattening"                    , Pass: new(Flatten) },
}

// Canonicalizer runs the normalization pipeline.
type Canonicalizer struct {
    log   utils.Logger
    names ir.Namer
}

func New(names ir.Namer, log utils.Logger) *Canonicalizer {
    if log == nil {
        log = utils.Nop
    }
    if names == nil {
        names = ir.DefaultNamer
    }
    return &Canonicalizer {
        log   : log,
        names : names,
    }
}

// Canonicalize normalizes e, moving the variable v as far to the left as
// the algebra permits. An empty v skips the isolation pass.
func (self *Canonicalizer) Canonicalize(e ir.Expr, v string) ir.Expr {
    u := &Unit {
        Expr  : e,
        Var   : v,
        Names : self.names,
    }

    /* run every pass in order */
    for _, p := range Passes {
        p.Pass.Apply(u)
        self.log.Debugf(5, "%s: %s", p.Name, u.Expr)
    }
    return u.Expr
}

// Normalize canonicalizes e without isolating any variable.
func (self *Canonicalizer) Normalize(e ir.Expr) ir.Expr {
    return self.Canonicalize(e, "")
}
