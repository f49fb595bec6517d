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

// Package image loads and stores the raw firmware images backing the
// emulated flash bank.
package image

import (
	"bytes"
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/embeddedsec/standalone-flash/flash"
)

// Load reads a raw firmware image and pads it to the full flash size
// with the erased-flash pattern. Images larger than the flash bank are
// rejected.
func Load(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	if uint64(len(buf)) > uint64(flash.TotalSize) {
		return nil, fmt.Errorf("image %s is %d bytes, exceeds flash size %d", path, len(buf), flash.TotalSize)
	}

	klog.V(1).Infof("loaded %d byte image from %s", len(buf), path)

	if pad := int(flash.TotalSize) - len(buf); pad > 0 {
		buf = append(buf, bytes.Repeat([]byte{flash.ErasedByte}, pad)...)
	}

	return buf, nil
}

// Save writes the emulated flash contents to path.
func Save(path string, buf []byte) error {
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return err
	}

	klog.V(1).Infof("saved %d byte image to %s", len(buf), path)

	return nil
}

// Erased returns a full-size image in the erased state.
func Erased() []byte {
	return bytes.Repeat([]byte{flash.ErasedByte}, int(flash.TotalSize))
}
