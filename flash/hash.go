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

	"golang.org/x/crypto/blake2b"
	"k8s.io/klog/v2"
)

const (
	// DigestSize is the size of every digest produced by the hash engine.
	DigestSize = 32

	defaultChunkSize = 4096
)

// ProgressFunc receives hash progress after each chunk of the region has
// been fed to the digest. The final invocation reports done == total.
//
// The callback runs synchronously on the hashing goroutine and must not
// block or touch flash protection state, since the scan does not tolerate
// concurrent flash mutation.
type ProgressFunc func(done, total uint32)

// FirmwareHash computes the integrity digest of the application region,
// seeded by the verifier-supplied challenge.
//
// The digest is BLAKE2b-256 over the challenge followed by the region
// bytes, so a fresh challenge makes a previously captured digest
// worthless to a replaying device. The challenge may be of any length,
// including empty, and is never truncated. progress may be nil.
//
// For a fixed challenge and fixed flash contents the result is bit-for-bit
// reproducible, independent of the configured chunk size. The region is
// read through the device backend only, flash and guard state are never
// mutated.
func (d *Device) FirmwareHash(challenge []byte, progress ProgressFunc) ([DigestSize]byte, error) {
	var digest [DigestSize]byte

	if progress == nil {
		progress = func(_, _ uint32) {}
	}

	h, err := blake2b.New256(nil)

	if err != nil {
		return digest, fmt.Errorf("%w: %v", ErrDigest, err)
	}

	h.Write(challenge)

	total := AppRegion.Length
	buf := make([]byte, d.chunkSize)

	for done := uint32(0); done < total; {
		n := uint32(len(buf))

		if total-done < n {
			n = total - done
		}

		if err := d.backend.ReadAt(AppRegion.Start+done, buf[:n]); err != nil {
			return digest, fmt.Errorf("%w: read @ %#08x: %v", ErrDigest, AppRegion.Start+done, err)
		}

		h.Write(buf[:n])
		done += n

		klog.V(3).Infof("hashed %d/%d bytes", done, total)
		progress(done, total)
	}

	copy(digest[:], h.Sum(nil))

	return digest, nil
}

// BootloaderHash returns the integrity digest of the legacy bootloader
// region. The standalone layout has no bootloader, the region is zero
// length, so the result is the fixed sentinel digest of the empty byte
// stream (BLAKE2b-256 of no input), independent of flash contents.
//
// Callers written against the historical two-stage attestation protocol
// receive this well-defined value instead of an error.
func (d *Device) BootloaderHash() [DigestSize]byte {
	return blake2b.Sum256(nil)
}
