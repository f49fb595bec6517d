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

package image

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embeddedsec/standalone-flash/flash"
)

func TestLoadPadsToFlashSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fw.bin")
	payload := bytes.Repeat([]byte{0x42}, 1024)
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	buf, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, buf, int(flash.TotalSize))
	assert.Equal(t, payload, buf[:len(payload)])

	for _, i := range []int{len(payload), len(buf) / 2, len(buf) - 1} {
		assert.Equal(t, flash.ErasedByte, buf[i], "pad byte at %d", i)
	}
}

func TestLoadOversize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fw.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, flash.TotalSize+1), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.bin"))
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fw.bin")

	buf := Erased()
	copy(buf, []byte{0xde, 0xad, 0xbe, 0xef})
	require.NoError(t, Save(path, buf))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, buf, got)
}

func TestErased(t *testing.T) {
	buf := Erased()

	assert.Len(t, buf, int(flash.TotalSize))
	for _, i := range []int{0, len(buf) / 2, len(buf) - 1} {
		assert.Equal(t, flash.ErasedByte, buf[i])
	}
}
