/*
 * Copyright 2024 The RuleGo Authors.
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

import "sort"

// WithContextEvaluator sets the collaborator that turns a context
// expression and a context tag list into a signed priority.
func WithContextEvaluator(ev ContextEvaluator) ConfigOption {
	return func(c *Config) error {
		c.ContextEvaluator = ev
		return nil
	}
}

// WithLogger sets the Config's diagnostic logger.
func WithLogger(logger Logger) ConfigOption {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithAspects appends merge aspects to the Config, sorted by Order() so
// BeforeMerge/AfterMerge run in a stable, predictable sequence.
func WithAspects(aspects ...MergeAspect) ConfigOption {
	return func(c *Config) error {
		c.Aspects = append(c.Aspects, aspects...)
		sort.SliceStable(c.Aspects, func(i, j int) bool {
			return c.Aspects[i].Order() < c.Aspects[j].Order()
		})
		return nil
	}
}
