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

package types

import (
	"log"
	"os"
)

// Logger is the minimal ambient logging surface the engine writes through.
// It is satisfied by the standard library's *log.Logger, which is also its
// default.
type Logger interface {
	Printf(format string, v ...any)
}

// DefaultLogger returns the standard library logger writing to stderr,
// prefixed so merge/diff diagnostics are easy to grep out of mixed output.
func DefaultLogger() Logger {
	return log.New(os.Stderr, "lcfg-core: ", log.LstdFlags)
}

// Aspect is the base interface for an AOP hook registered with a Config.
// Order controls execution sequence (lower runs first); New creates a
// fresh, isolated instance per engine Config, mirroring the teacher's
// Aspect.New() contract so stateful aspects (e.g. counters) don't leak
// state across independently configured engines.
type Aspect interface {
	Order() int
	New() Aspect
}

// MergeAspect hooks the resource-level merge decision (spec.md §4.5).
// BeforeMerge may veto the merge by returning a non-nil error, in which case
// the merge is refused as if it had produced ChangeError; AfterMerge
// observes the outcome for logging/metrics and cannot change it.
type MergeAspect interface {
	Aspect
	BeforeMerge(componentName, resourceName string, targetPriority, incomingPriority int) error
	AfterMerge(componentName, resourceName string, result ChangeCode)
}

// Config bundles the collaborators every core operation that needs one
// reaches for: priority evaluation, diagnostics, and merge-time hooks.
// Built with NewConfig and the With* functional options below, mirroring
// the teacher's engine/config.go + types/options.go split.
type Config struct {
	// ContextEvaluator computes a Resource's priority from its context
	// expression. Required for EvalPriority; merges and diffs that never
	// call EvalPriority work fine with a nil evaluator.
	ContextEvaluator ContextEvaluator
	// Logger receives one line per aspect-driven diagnostic. Defaults to
	// DefaultLogger().
	Logger Logger
	// Aspects are the AOP hooks invoked around merges, in slice order;
	// WithAspects keeps the slice sorted by Order().
	Aspects []MergeAspect
}

// ConfigOption configures a Config. See NewConfig.
type ConfigOption func(*Config) error

// NewConfig builds a Config by applying opts in order, defaulting Logger
// to DefaultLogger() when no WithLogger option set one. Mirrors the
// teacher's engine.NewConfig(opts ...types.Option), folded into types
// since LCFG-core has no separate engine package.
func NewConfig(opts ...ConfigOption) (Config, error) {
	c := Config{}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return Config{}, err
		}
	}
	if c.Logger == nil {
		c.Logger = DefaultLogger()
	}
	return c, nil
}
