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

// Package api holds the status types shared between the flash core and
// host tooling.
package api

import (
	"bytes"
	"fmt"
)

// Status describes a flash bank as seen by host tooling.
type Status struct {
	// Image is the backing image path for emulated banks, empty on
	// hardware targets.
	Image string
	// Revision identifies the tooling build, set at compile time.
	Revision string
	// Origin is the base address of the bank.
	Origin uint32
	// Size is the bank size in bytes.
	Size uint32
	// Sectors is the number of sectors in the flash map.
	Sectors int
	// Protection is the current guard state.
	Protection string
	// Runtime identifies the Go runtime driving the bank.
	Runtime string
}

// Print returns the flash bank status in textual format.
func (s *Status) Print() string {
	var status bytes.Buffer

	status.WriteString("------------------------------------------------------ Standalone Flash ----\n")
	status.WriteString(fmt.Sprintf("Image ..................: %s\n", s.Image))
	status.WriteString(fmt.Sprintf("Revision ...............: %s\n", s.Revision))
	status.WriteString(fmt.Sprintf("Flash origin ...........: %#08x\n", s.Origin))
	status.WriteString(fmt.Sprintf("Flash size .............: %d KiB\n", s.Size/1024))
	status.WriteString(fmt.Sprintf("Sectors ................: %d\n", s.Sectors))
	status.WriteString(fmt.Sprintf("Protection .............: %s\n", s.Protection))
	status.WriteString(fmt.Sprintf("Runtime ................: %s", s.Runtime))

	return status.String()
}
