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

package main

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/cheggaaa/pb/v3"
	"github.com/urfave/cli/v3"

	"github.com/embeddedsec/standalone-flash/flash"
)

func hashCommand() *cli.Command {
	return &cli.Command{
		Name:  "hash",
		Usage: "compute the challenge-seeded firmware digest of an image",
		Flags: []cli.Flag{
			imageFlag(),
			&cli.StringFlag{
				Name:  "challenge",
				Usage: "hex encoded verifier challenge",
			},
			&cli.BoolFlag{
				Name:  "bootloader",
				Usage: "print the legacy bootloader sentinel digest instead",
			},
		},
		Action: runHash,
	}
}

func runHash(_ context.Context, cmd *cli.Command) error {
	d, _, err := openDevice(cmd.String("image"))

	if err != nil {
		return err
	}

	if cmd.Bool("bootloader") {
		digest := d.BootloaderHash()
		fmt.Printf("%x\n", digest)
		return nil
	}

	challenge, err := hex.DecodeString(cmd.String("challenge"))

	if err != nil {
		return fmt.Errorf("invalid challenge: %v", err)
	}

	digest, err := hashWithProgress(d, challenge)

	if err != nil {
		return err
	}

	fmt.Printf("%x\n", digest)

	return nil
}

// hashWithProgress runs the firmware hash with the engine's progress
// callback driving a terminal progress bar.
func hashWithProgress(d *flash.Device, challenge []byte) ([flash.DigestSize]byte, error) {
	bar := pb.Start64(int64(flash.TotalSize))
	defer bar.Finish()

	return d.FirmwareHash(challenge, func(done, _ uint32) {
		bar.SetCurrent(int64(done))
	})
}
