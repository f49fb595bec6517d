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
	"encoding/binary"
	"fmt"
)

// MemBackend is a buffer-backed flash bank for emulator builds and host
// tests. Logical addresses are offset against the buffer base, so byte
// Origin+i lands at buffer index i.
type MemBackend struct {
	buf []byte
}

// NewMemBackend returns a simulated flash bank in the erased state,
// every byte set to ErasedByte.
func NewMemBackend() *MemBackend {
	buf := make([]byte, TotalSize)

	for i := range buf {
		buf[i] = ErasedByte
	}

	return &MemBackend{buf: buf}
}

// NewMemBackendImage returns a simulated flash bank holding image at the
// flash origin. Images shorter than the bank leave the remainder erased;
// longer images are rejected.
func NewMemBackendImage(image []byte) (*MemBackend, error) {
	if uint64(len(image)) > uint64(TotalSize) {
		return nil, fmt.Errorf("image size %d exceeds flash size %d", len(image), TotalSize)
	}

	m := NewMemBackend()
	copy(m.buf, image)

	return m, nil
}

// translate maps a logical flash address to an offset into the backing
// buffer, rejecting accesses falling outside the bank.
func (m *MemBackend) translate(addr, size uint32) (uint32, error) {
	if !rangeOK(addr, size) {
		return 0, outOfRange(addr)
	}

	return addr - Origin, nil
}

// ReadAt copies len(b) bytes starting at logical address addr into b.
func (m *MemBackend) ReadAt(addr uint32, b []byte) error {
	off, err := m.translate(addr, uint32(len(b)))

	if err != nil {
		return err
	}

	copy(b, m.buf[off:])

	return nil
}

// Write32 stores a 32-bit word at addr in the target's byte order
// (little-endian).
func (m *MemBackend) Write32(addr uint32, val uint32) error {
	off, err := m.translate(addr, WordSize)

	if err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(m.buf[off:], val)

	return nil
}

// Write8 stores a single byte at addr.
func (m *MemBackend) Write8(addr uint32, val uint8) error {
	off, err := m.translate(addr, 1)

	if err != nil {
		return err
	}

	m.buf[off] = val

	return nil
}

// Bytes exposes the backing buffer, allowing host tooling to persist the
// emulated flash contents. The slice aliases the live bank.
func (m *MemBackend) Bytes() []byte {
	return m.buf
}
