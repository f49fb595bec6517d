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

import "fmt"

const (
	// Origin is the base address of the on-chip flash bank.
	Origin uint32 = 0x08000000
	// TotalSize is the size of the flash bank in bytes.
	TotalSize uint32 = 1024 * 1024

	// WordSize is the write granularity of WriteWord.
	WordSize = 4
	// ErasedByte is the value every flash byte assumes after erase.
	ErasedByte byte = 0xff
)

// Role labels the function of a sector in the flash map.
type Role int

const (
	RoleCode Role = iota
	RoleStorage
	RoleHeader
	RoleUnused
)

func (r Role) String() string {
	switch r {
	case RoleCode:
		return "code"
	case RoleStorage:
		return "storage"
	case RoleHeader:
		return "header"
	case RoleUnused:
		return "unused"
	}
	panic(fmt.Errorf("unknown Role %d", r))
}

// Sector is a fixed, hardware-defined erase block of the flash bank.
type Sector struct {
	Index  uint32
	Start  uint32
	Length uint32
	Role   Role
}

// End returns the first address past the sector.
func (s Sector) End() uint32 {
	return s.Start + s.Length
}

// Map is the ordered list of sectors covering a flash bank.
type Map []Sector

// Layout is the authoritative flash map of the target: twelve sectors
// over a single 1 MiB bank. With the standalone image spanning the whole
// bank, every sector holds firmware.
//
//	Sector  0 | 0x08000000 - 0x08003fff |  16 KiB
//	Sector  1 | 0x08004000 - 0x08007fff |  16 KiB
//	Sector  2 | 0x08008000 - 0x0800bfff |  16 KiB
//	Sector  3 | 0x0800c000 - 0x0800ffff |  16 KiB
//	Sector  4 | 0x08010000 - 0x0801ffff |  64 KiB
//	Sector  5 | 0x08020000 - 0x0803ffff | 128 KiB
//	Sector  6 | 0x08040000 - 0x0805ffff | 128 KiB
//	Sector  7 | 0x08060000 - 0x0807ffff | 128 KiB
//	Sector  8 | 0x08080000 - 0x0809ffff | 128 KiB
//	Sector  9 | 0x080a0000 - 0x080bffff | 128 KiB
//	Sector 10 | 0x080c0000 - 0x080dffff | 128 KiB
//	Sector 11 | 0x080e0000 - 0x080fffff | 128 KiB
var Layout = Map{
	{Index: 0, Start: 0x08000000, Length: 16 * 1024, Role: RoleCode},
	{Index: 1, Start: 0x08004000, Length: 16 * 1024, Role: RoleCode},
	{Index: 2, Start: 0x08008000, Length: 16 * 1024, Role: RoleCode},
	{Index: 3, Start: 0x0800c000, Length: 16 * 1024, Role: RoleCode},
	{Index: 4, Start: 0x08010000, Length: 64 * 1024, Role: RoleCode},
	{Index: 5, Start: 0x08020000, Length: 128 * 1024, Role: RoleCode},
	{Index: 6, Start: 0x08040000, Length: 128 * 1024, Role: RoleCode},
	{Index: 7, Start: 0x08060000, Length: 128 * 1024, Role: RoleCode},
	{Index: 8, Start: 0x08080000, Length: 128 * 1024, Role: RoleCode},
	{Index: 9, Start: 0x080a0000, Length: 128 * 1024, Role: RoleCode},
	{Index: 10, Start: 0x080c0000, Length: 128 * 1024, Role: RoleCode},
	{Index: 11, Start: 0x080e0000, Length: 128 * 1024, Role: RoleCode},
}

// Validate checks that the map partitions [Origin, Origin+TotalSize)
// exactly: sectors indexed in order, contiguous, non-overlapping and
// covering the full bank.
func (m Map) Validate() error {
	next := Origin

	for i, s := range m {
		if uint32(i) != s.Index {
			return fmt.Errorf("sector at position %d has index %d", i, s.Index)
		}
		if s.Length == 0 {
			return fmt.Errorf("sector %d has zero length", s.Index)
		}
		if s.Start != next {
			return fmt.Errorf("sector %d starts at %#08x, want %#08x", s.Index, s.Start, next)
		}
		next = s.End()
	}

	if next != Origin+TotalSize {
		return fmt.Errorf("map covers [%#08x, %#08x), want [%#08x, %#08x)", Origin, next, Origin, Origin+TotalSize)
	}

	return nil
}

// Region is a named contiguous flash range derived from the sector map.
type Region struct {
	Name   string
	Start  uint32
	Length uint32
}

// End returns the first address past the region.
func (r Region) End() uint32 {
	return r.Start + r.Length
}

// Contains reports whether addr falls within the region.
func (r Region) Contains(addr uint32) bool {
	return addr >= r.Start && addr-r.Start < r.Length
}

const (
	// AppStart and AppLen delimit the application region holding the
	// standalone firmware image: the entire flash bank.
	AppStart uint32 = Origin
	AppLen   uint32 = TotalSize
)

// AppRegion is the application region streamed by the hash engine.
var AppRegion = Region{Name: "application", Start: AppStart, Length: AppLen}

// The standalone image is linked at the flash origin. These declarations
// fail the build if the application region is ever moved off it again,
// e.g. by reintroducing a bootloader-relative offset.
var (
	_ [AppStart - Origin]struct{}
	_ [Origin - AppStart]struct{}
)

// Legacy layout constants, retained so code written against the historical
// bootloader-mediated layout keeps compiling and receives empty ranges.
// No runtime behavior is attached to them.
const (
	BootStart uint32 = Origin
	BootLen   uint32 = 0

	StorageStart uint32 = Origin
	StorageLen   uint32 = 0

	FWHeaderStart uint32 = AppStart
	FWHeaderLen   uint32 = 0

	BootSectorFirst = 0
	BootSectorLast  = 0

	StorageSectorFirst = 0
	StorageSectorLast  = 0

	CodeSectorFirst = 0
	CodeSectorLast  = 11
)

// rangeOK reports whether the size byte access at addr falls entirely
// within the flash bank.
func rangeOK(addr, size uint32) bool {
	if addr < Origin || addr >= Origin+TotalSize {
		return false
	}
	return Origin+TotalSize-addr >= size
}
