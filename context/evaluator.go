/*
 * Copyright 2023 The RuleGo Authors.
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

// Package context provides the default types.ContextEvaluator: it compiles
// a resource's context expression with expr-lang/expr and runs it against
// the currently-effective context tag list, returning the signed priority
// spec.md treats as an external collaborator's result. The expression
// language itself — what "datacenter-west && !maintenance" means — is
// explicitly out of core scope (spec.md §1); this package only supplies
// one concrete way to answer "what priority does this expression resolve
// to", the same way components/transform/expr_filter_node.go in the
// teacher compiles and runs a boolean expr-lang program against a message.
package context

import (
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/sjquinney/lcfg-core/types"
)

// Env is the evaluation environment exposed to a context expression: the
// effective context tag list, plus a Has helper for membership tests.
type Env struct {
	Ctx []string
}

// Has reports whether tag is present in the context list. Exposed to
// expressions as `Has("tag")` (expr-lang resolves env methods by their
// exact, case-sensitive Go name).
func (e Env) Has(t string) bool {
	for _, c := range e.Ctx {
		if c == t {
			return true
		}
	}
	return false
}

// Evaluator is a types.ContextEvaluator backed by expr-lang/expr. Each
// distinct expression string is compiled once with
// expr.Compile(src, expr.Env(Env{}), expr.AllowUndefinedVariables()) and the
// compiled program is cached (an int result is the priority; a bool result
// maps true to 0 and false to -1), mirroring the compile-once-in-Init,
// run-per-message shape of the teacher's ExprFilterNode — except here
// there is no Init call per resource, so the cache is built lazily and
// guarded by a mutex the way engine/registry.go guards its component map.
type Evaluator struct {
	mu       sync.RWMutex
	programs map[string]*vm.Program
}

// NewEvaluator returns a ready-to-use Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{programs: make(map[string]*vm.Program)}
}

// Evaluate compiles (or reuses a cached compilation of) exprSrc and runs
// it against ctx, returning the resulting integer priority.
func (e *Evaluator) Evaluate(exprSrc string, ctx []string) (int, error) {
	program, err := e.compile(exprSrc)
	if err != nil {
		return 0, err
	}
	out, err := vm.Run(program, Env{Ctx: ctx})
	if err != nil {
		return 0, err
	}
	switch v := out.(type) {
	case int:
		return v, nil
	case bool:
		if v {
			return 0, nil
		}
		return -1, nil
	default:
		return 0, types.NewError(types.Validation, "context expression did not evaluate to an int or bool", nil)
	}
}

func (e *Evaluator) compile(exprSrc string) (*vm.Program, error) {
	e.mu.RLock()
	program, ok := e.programs[exprSrc]
	e.mu.RUnlock()
	if ok {
		return program, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if program, ok = e.programs[exprSrc]; ok {
		return program, nil
	}
	program, err := expr.Compile(exprSrc, expr.Env(Env{}), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, types.NewError(types.Validation, "context expression "+exprSrc, err)
	}
	e.programs[exprSrc] = program
	return program, nil
}
