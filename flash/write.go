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

	"k8s.io/klog/v2"
)

// WriteWord stores a 32-bit word, in the target's little-endian byte
// order, at the word-aligned address addr. The device guard must be
// Unlocked.
//
// No erase is implied: flash bits only clear on write, so erase-before-
// write ordering is the caller's responsibility.
func (d *Device) WriteWord(addr uint32, val uint32) error {
	if d.guard.Protected() {
		return fmt.Errorf("word write at %#08x: %w", addr, ErrProtected)
	}

	if !rangeOK(addr, WordSize) {
		return fmt.Errorf("word write: %w", outOfRange(addr))
	}

	if addr%WordSize != 0 {
		return fmt.Errorf("word write at %#08x: %w", addr, ErrUnaligned)
	}

	klog.V(3).Infof("writing word %#08x @ %#08x", val, addr)

	return d.backend.Write32(addr, val)
}

// WriteByte stores a single byte at addr. The device guard must be
// Unlocked. Erase ordering is the caller's responsibility, as for
// WriteWord.
func (d *Device) WriteByte(addr uint32, val uint8) error {
	if d.guard.Protected() {
		return fmt.Errorf("byte write at %#08x: %w", addr, ErrProtected)
	}

	if !rangeOK(addr, 1) {
		return fmt.Errorf("byte write: %w", outOfRange(addr))
	}

	klog.V(3).Infof("writing byte %#02x @ %#08x", val, addr)

	return d.backend.Write8(addr, val)
}
