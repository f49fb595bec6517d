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

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/embeddedsec/standalone-flash/attest"
	"github.com/embeddedsec/standalone-flash/internal/image"
)

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "verify an image against a golden release under a challenge",
		Flags: []cli.Flag{
			imageFlag(),
			&cli.StringFlag{
				Name:     "golden",
				Usage:    "golden release image file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "challenge",
				Usage: "hex encoded challenge (fresh random challenge when omitted)",
			},
		},
		Action: runVerify,
	}
}

func runVerify(_ context.Context, cmd *cli.Command) error {
	golden, err := image.Load(cmd.String("golden"))

	if err != nil {
		return err
	}

	verifier, err := attest.NewVerifier(golden)

	if err != nil {
		return err
	}

	var challenge []byte

	if c := cmd.String("challenge"); c != "" {
		if challenge, err = hex.DecodeString(c); err != nil {
			return fmt.Errorf("invalid challenge: %v", err)
		}
	} else if challenge, err = attest.NewChallenge(); err != nil {
		return err
	}

	d, _, err := openDevice(cmd.String("image"))

	if err != nil {
		return err
	}

	digest, err := hashWithProgress(d, challenge)

	if err != nil {
		return err
	}

	ev := attest.Evidence{
		Challenge: challenge,
		Digest:    digest,
	}

	fmt.Println(ev.Print())

	if err := verifier.Verify(ev); err != nil {
		color.Red("firmware verification FAILED")
		return err
	}

	color.Green("firmware verified OK")

	return nil
}
