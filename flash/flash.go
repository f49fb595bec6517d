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

// Package flash implements the flash memory core of a standalone firmware
// image: the authoritative sector map of the single on-chip bank, the
// write-protection guard gating all flash mutation, raw word/byte write
// primitives and challenge-seeded firmware integrity hashing.
//
// All flash access goes through the Backend interface, which maps logical
// flash addresses to a physical backing location. Hardware targets use the
// direct memory-mapped backend; hosts and emulators use MemBackend.
//
// The core assumes a single logical actor drives flash operations at a
// time. Hosts running a Device from multiple goroutines must serialize
// entire unlock/write/protect sequences, and any concurrent hash, with
// their own locking.
package flash

// Backend maps logical flash addresses to a backing location and performs
// the actual loads and stores. Implementations must reject any access
// falling outside [Origin, Origin+TotalSize) with ErrOutOfRange, and must
// never fail for in-range access.
type Backend interface {
	// ReadAt copies len(b) bytes starting at logical address addr into b.
	ReadAt(addr uint32, b []byte) error

	// Write32 stores a 32-bit word at the word-aligned logical address
	// addr, as a single store that is never split or reordered.
	Write32(addr uint32, val uint32) error

	// Write8 stores a single byte at the logical address addr.
	Write8(addr uint32, val uint8) error
}

// Device combines a flash Backend with the protection guard and the hash
// engine. All mutating operations are gated on the guard state; hashing
// never mutates flash or the guard.
type Device struct {
	backend Backend
	guard   *Guard

	lockout   Lockout
	chunkSize uint32
}

// Option configures a Device at construction time.
type Option func(*Device)

// WithLockout sets the platform write-protection mechanism driven by the
// device guard. Devices without a lockout (e.g. on the simulated backend)
// track protection state only.
func WithLockout(l Lockout) Option {
	return func(d *Device) {
		d.lockout = l
	}
}

// WithChunkSize sets the number of bytes hashed between two progress
// callback invocations. The chunk size is a reporting and performance
// knob only, it never affects the resulting digest. Values outside
// [1, TotalSize] are ignored.
func WithChunkSize(n uint32) Option {
	return func(d *Device) {
		if n > 0 && n <= TotalSize {
			d.chunkSize = n
		}
	}
}

// New returns a Device accessing flash through b. The device guard starts
// out Protected.
func New(b Backend, opts ...Option) *Device {
	d := &Device{
		backend:   b,
		chunkSize: defaultChunkSize,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.guard = NewGuard(d.lockout)

	return d
}

// Protect transitions the device guard to Protected, see Guard.Protect.
func (d *Device) Protect() {
	d.guard.Protect()
}

// Unlock transitions the device guard to Unlocked, see Guard.Unlock.
func (d *Device) Unlock() {
	d.guard.Unlock()
}

// State returns the current protection state of the device guard.
func (d *Device) State() State {
	return d.guard.State()
}
