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

//go:build tamago && arm
// +build tamago,arm

package flash

import (
	"sync/atomic"
	"unsafe"

	"github.com/usbarmory/tamago/arm"
	"github.com/usbarmory/tamago/soc/nxp/imx6ul"
)

// MMIOBackend accesses flash through its memory-mapped addresses: the
// logical address is the physical access handle.
type MMIOBackend struct{}

// ReadAt copies len(b) bytes starting at logical address addr into b.
func (MMIOBackend) ReadAt(addr uint32, b []byte) error {
	if !rangeOK(addr, uint32(len(b))) {
		return outOfRange(addr)
	}

	copy(b, unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), len(b)))

	return nil
}

// Write32 performs a single word-aligned 32-bit store at addr. The store
// is atomic and is not reordered across the call.
func (MMIOBackend) Write32(addr uint32, val uint32) error {
	if !rangeOK(addr, WordSize) {
		return outOfRange(addr)
	}

	atomic.StoreUint32((*uint32)(unsafe.Pointer(uintptr(addr))), val)

	return nil
}

// Write8 performs a single byte store at addr.
func (MMIOBackend) Write8(addr uint32, val uint8) error {
	if !rangeOK(addr, 1) {
		return outOfRange(addr)
	}

	*(*uint8)(unsafe.Pointer(uintptr(addr))) = val

	return nil
}

// MMULockout drives flash write protection by remapping the flash
// sections through the ARM MMU, read-only while protected.
type MMULockout struct{}

// Enable remaps the flash bank read-only.
func (MMULockout) Enable() {
	imx6ul.ARM.ConfigureMMU(Origin, Origin+TotalSize, 0,
		arm.TTE_AP_111<<10|arm.TTE_CACHEABLE|arm.TTE_BUFFERABLE|arm.TTE_SECTION_1MB)
}

// Disable remaps the flash bank read-write for an update sequence.
func (MMULockout) Disable() {
	imx6ul.ARM.ConfigureMMU(Origin, Origin+TotalSize, 0, arm.MemoryRegion)
}
