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

// Package tag implements Tag and TagList (spec.md §4.2): a validated short
// identifier and an ordered, optionally duplicate-free sequence of them,
// used for resource-name sets, component-name sets, and list-typed
// resource values.
package tag

import "github.com/sjquinney/lcfg-core/types"

// Valid reports whether name is a well-formed tag: the same grammar as a
// resource or component name.
func Valid(name string) bool {
	return types.ValidateName(name)
}
