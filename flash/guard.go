// Copyright 2026 The Standalone Flash authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package flash

import (
	"fmt"
	"sync"

	"k8s.io/klog/v2"
)

// State is the protection state of a Guard.
type State int

const (
	// Protected rejects all mutating flash operations.
	Protected State = iota
	// Unlocked permits mutating flash operations.
	Unlocked
)

func (s State) String() string {
	switch s {
	case Protected:
		return "protected"
	case Unlocked:
		return "unlocked"
	}
	panic(fmt.Errorf("unknown State %d", s))
}

// Lockout is the platform write-protection mechanism driven by a Guard,
// such as a memory protection unit remapping flash read-only. Enable
// must leave flash non-writable and Disable writable; both must be
// idempotent.
type Lockout interface {
	Enable()
	Disable()
}

// Guard gates all mutating flash operations behind an explicit
// protect/unlock state. A freshly created Guard is Protected.
//
// The Guard never re-protects on its own: a caller running an update
// sequence must call Protect once the sequence completes, and must not
// hash a region concurrently with an unlocked write sequence touching it.
type Guard struct {
	mu      sync.Mutex
	state   State
	lockout Lockout
}

// NewGuard returns a Protected guard driving the given lockout, which
// may be nil when the platform exposes no write-protection mechanism.
func NewGuard(l Lockout) *Guard {
	g := &Guard{
		state:   Protected,
		lockout: l,
	}

	if l != nil {
		l.Enable()
	}

	return g
}

// Protect transitions Unlocked -> Protected and re-arms the platform
// write protection. It is a no-op if the guard is already Protected and
// always succeeds.
func (g *Guard) Protect() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == Protected {
		return
	}

	g.state = Protected

	if g.lockout != nil {
		g.lockout.Enable()
	}

	klog.V(1).Info("flash write protection enabled")
}

// Unlock transitions Protected -> Unlocked, disabling the platform write
// protection. It is a no-op if the guard is already Unlocked and always
// succeeds.
func (g *Guard) Unlock() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == Unlocked {
		return
	}

	g.state = Unlocked

	if g.lockout != nil {
		g.lockout.Disable()
	}

	klog.V(1).Info("flash write protection disabled")
}

// State returns the current protection state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// Protected reports whether mutating operations are currently rejected.
func (g *Guard) Protected() bool {
	return g.State() == Protected
}
