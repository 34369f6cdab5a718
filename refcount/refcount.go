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

// Package refcount gives resources, components, and component sets the
// shared-ownership discipline spec.md §5 describes: "every entity carries
// a reference count. acquire increments, relinquish decrements and
// destroys on zero." Go's garbage collector already reclaims memory, so
// this package exists purely to make that contract observable — a
// container and a caller can provably hold the same entity at once, and
// an optional callback fires exactly once when the last share is released,
// for callers that attach deterministic cleanup (closing a handle, say) to
// "this entity is no longer referenced".
package refcount

import "sync/atomic"

// Counter is an embeddable reference count. The zero value starts at zero
// shares; callers that create an entity with one implicit owner should
// call Acquire once immediately after construction, mirroring the
// spec's "creation sets count to 1".
type Counter struct {
	n int32
}

// Acquire adds one share and returns the new count.
func (c *Counter) Acquire() int32 {
	return atomic.AddInt32(&c.n, 1)
}

// Release removes one share and returns the new count. Callers that need
// to know whether this was the last share should check the return value
// for zero; ReleaseFunc does that check for them.
func (c *Counter) Release() int32 {
	return atomic.AddInt32(&c.n, -1)
}

// Count returns the current number of shares.
func (c *Counter) Count() int32 {
	return atomic.LoadInt32(&c.n)
}

// ReleaseFunc releases one share and invokes onZero if that was the last
// one. onZero may be nil.
func (c *Counter) ReleaseFunc(onZero func()) int32 {
	n := c.Release()
	if n == 0 && onZero != nil {
		onZero()
	}
	return n
}
