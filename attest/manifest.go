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

package attest

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/coreos/go-semver/semver"

	"github.com/embeddedsec/standalone-flash/flash"
)

// Manifest describes a released firmware image.
type Manifest struct {
	Name    string
	Version semver.Version
	// Size is the unpadded image size in bytes.
	Size uint32
	// Digest is the image's firmware hash under an empty challenge,
	// the image's stable identity across releases.
	Digest [flash.DigestSize]byte
}

// NewManifest builds the manifest of a release image. version must be a
// valid semantic version.
func NewManifest(name, version string, image []byte) (*Manifest, error) {
	v, err := semver.NewVersion(version)

	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %v", version, err)
	}

	m, err := flash.NewMemBackendImage(image)

	if err != nil {
		return nil, err
	}

	digest, err := flash.New(m).FirmwareHash(nil, nil)

	if err != nil {
		return nil, err
	}

	return &Manifest{
		Name:    name,
		Version: *v,
		Size:    uint32(len(image)),
		Digest:  digest,
	}, nil
}

// Print returns the manifest in textual format.
func (m *Manifest) Print() string {
	var b bytes.Buffer

	b.WriteString("----------------------------------------------------------- Manifest ----\n")
	b.WriteString(fmt.Sprintf("Name ...................: %s\n", m.Name))
	b.WriteString(fmt.Sprintf("Version ................: %s\n", m.Version))
	b.WriteString(fmt.Sprintf("Size ...................: %d bytes\n", m.Size))
	b.WriteString(fmt.Sprintf("Digest .................: %s", hex.EncodeToString(m.Digest[:])))

	return b.String()
}
