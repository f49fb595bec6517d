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
	"errors"
	"fmt"
)

// Error kinds surfaced by the flash core. Operations wrap them with
// context, callers inspect them with errors.Is. None of them is
// recovered internally: each one indicates a programming error or a
// hardware/security condition the caller must react to.
var (
	// ErrOutOfRange reports an operation targeting an address outside
	// the valid flash region.
	ErrOutOfRange = errors.New("address out of range")

	// ErrProtected reports a mutating operation attempted while the
	// guard is Protected.
	ErrProtected = errors.New("flash protected")

	// ErrUnaligned reports a word write to a non word-aligned address.
	ErrUnaligned = errors.New("unaligned address")

	// ErrDigest reports a failure of the digest primitive or of reading
	// flash during a hash. It indicates a hardware fault and is never
	// retried.
	ErrDigest = errors.New("digest computation failed")
)

func outOfRange(addr uint32) error {
	return fmt.Errorf("%#08x outside [%#08x, %#08x): %w", addr, Origin, Origin+TotalSize, ErrOutOfRange)
}
