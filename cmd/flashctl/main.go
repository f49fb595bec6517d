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

//go:build !tamago
// +build !tamago

// flashctl inspects and manipulates emulated standalone flash images: it
// prints the flash layout, runs challenge-seeded firmware hashes,
// performs guarded writes and verifies an image against a golden
// release.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/embeddedsec/standalone-flash/flash"
	"github.com/embeddedsec/standalone-flash/internal/image"
)

const imageEnv = "FLASHCTL_IMAGE"

// Revision is the tool revision, set at compile time, e.g.:
//
//	go build -ldflags "-X main.Revision=`git rev-parse --short HEAD`"
var Revision string

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stdout)
}

func imageFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "image",
		Usage:    "emulated flash image file",
		Sources:  cli.EnvVars(imageEnv),
		Required: true,
	}
}

// openDevice loads an image file into a simulated flash bank and wraps
// it in a protected device.
func openDevice(path string) (*flash.Device, *flash.MemBackend, error) {
	buf, err := image.Load(path)

	if err != nil {
		return nil, nil, err
	}

	m, err := flash.NewMemBackendImage(buf)

	if err != nil {
		return nil, nil, err
	}

	return flash.New(m), m, nil
}

func main() {
	// optional .env carrying FLASHCTL_IMAGE
	_ = godotenv.Load()

	app := &cli.Command{
		Name:  "flashctl",
		Usage: "standalone flash image tool",
		Commands: []*cli.Command{
			infoCommand(),
			hashCommand(),
			writeCommand(),
			eraseCommand(),
			verifyCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
