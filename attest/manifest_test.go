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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embeddedsec/standalone-flash/flash"
)

func TestNewManifest(t *testing.T) {
	image := testImage(0x42)

	m, err := NewManifest("standalone-fw", "1.2.3", image)
	require.NoError(t, err)

	assert.Equal(t, "standalone-fw", m.Name)
	assert.Equal(t, int64(1), m.Version.Major)
	assert.Equal(t, int64(2), m.Version.Minor)
	assert.Equal(t, int64(3), m.Version.Patch)
	assert.Equal(t, uint32(len(image)), m.Size)
	assert.Equal(t, deviceDigest(t, image, nil), m.Digest)
}

func TestNewManifestInvalidVersion(t *testing.T) {
	_, err := NewManifest("standalone-fw", "not-a-version", testImage(0x42))
	assert.Error(t, err)
}

func TestNewManifestOversizeImage(t *testing.T) {
	_, err := NewManifest("standalone-fw", "1.0.0", make([]byte, flash.TotalSize+1))
	assert.Error(t, err)
}

func TestManifestPrint(t *testing.T) {
	m, err := NewManifest("standalone-fw", "2.0.1", testImage(0x42))
	require.NoError(t, err)

	out := m.Print()
	assert.True(t, strings.Contains(out, "standalone-fw"))
	assert.True(t, strings.Contains(out, "2.0.1"))
}
