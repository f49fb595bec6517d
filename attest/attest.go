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

// Package attest implements the verifier side of challenge-response
// firmware attestation: issuing challenges and checking device-reported
// digests against a golden firmware image.
//
// The verifier recomputes expected digests with the same hash engine the
// device runs, over a simulated flash bank holding the golden image, so a
// match proves the device streamed identical firmware bytes under the
// same challenge.
package attest

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/embeddedsec/standalone-flash/flash"
)

// ChallengeSize is the length of challenges issued by NewChallenge. The
// hash engine itself accepts challenges of any length.
const ChallengeSize = 32

// ErrMismatch reports evidence whose digest does not match the golden
// image under its challenge.
var ErrMismatch = errors.New("firmware digest mismatch")

// NewChallenge returns a fresh random challenge. A challenge must never
// be reused: a repeated challenge makes a previously captured digest
// replayable.
func NewChallenge() ([]byte, error) {
	c := make([]byte, ChallengeSize)

	if _, err := rand.Read(c); err != nil {
		return nil, fmt.Errorf("challenge generation: %v", err)
	}

	return c, nil
}

// Evidence binds a device-reported firmware digest to the challenge it
// was computed under.
type Evidence struct {
	Challenge []byte
	Digest    [flash.DigestSize]byte
}

// Print returns the evidence in textual format.
func (e *Evidence) Print() string {
	var b bytes.Buffer

	b.WriteString("----------------------------------------------------------- Evidence ----\n")
	b.WriteString(fmt.Sprintf("Challenge ..............: %s\n", hex.EncodeToString(e.Challenge)))
	b.WriteString(fmt.Sprintf("Firmware digest ........: %s", hex.EncodeToString(e.Digest[:])))

	return b.String()
}

// Verifier checks device evidence against a golden firmware image.
type Verifier struct {
	dev *flash.Device
}

// NewVerifier returns a Verifier holding the golden image. Images
// shorter than the flash bank are padded with the erased-flash pattern,
// matching what a device flashed from the same image reports.
func NewVerifier(image []byte) (*Verifier, error) {
	m, err := flash.NewMemBackendImage(image)

	if err != nil {
		return nil, fmt.Errorf("golden image: %v", err)
	}

	return &Verifier{dev: flash.New(m)}, nil
}

// Expected returns the digest a device running the golden image must
// report for the given challenge.
func (v *Verifier) Expected(challenge []byte) ([flash.DigestSize]byte, error) {
	return v.dev.FirmwareHash(challenge, nil)
}

// Verify recomputes the expected digest for the evidence challenge and
// compares it with the reported digest in constant time. A nil return
// means the device firmware is bit-for-bit identical to the golden
// image.
func (v *Verifier) Verify(ev Evidence) error {
	want, err := v.Expected(ev.Challenge)

	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(want[:], ev.Digest[:]) != 1 {
		return fmt.Errorf("challenge %x: %w", ev.Challenge, ErrMismatch)
	}

	klog.V(1).Infof("verified firmware digest under challenge %x", ev.Challenge)

	return nil
}
