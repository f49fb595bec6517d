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
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/embeddedsec/standalone-flash/internal/image"
)

func writeCommand() *cli.Command {
	return &cli.Command{
		Name:  "write",
		Usage: "unlock, write a word or byte, re-protect and persist the image",
		Flags: []cli.Flag{
			imageFlag(),
			&cli.StringFlag{
				Name:     "addr",
				Usage:    "target address (e.g. 0x08000000)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "word",
				Usage: "32-bit value to write (e.g. 0xdeadbeef)",
			},
			&cli.StringFlag{
				Name:  "byte",
				Usage: "8-bit value to write (e.g. 0x42)",
			},
		},
		Action: runWrite,
	}
}

func runWrite(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("image")

	d, m, err := openDevice(path)

	if err != nil {
		return err
	}

	addr, err := strconv.ParseUint(cmd.String("addr"), 0, 32)

	if err != nil {
		return fmt.Errorf("invalid address: %v", err)
	}

	d.Unlock()
	defer d.Protect()

	switch {
	case cmd.String("word") != "":
		val, err := strconv.ParseUint(cmd.String("word"), 0, 32)

		if err != nil {
			return fmt.Errorf("invalid word value: %v", err)
		}

		if err = d.WriteWord(uint32(addr), uint32(val)); err != nil {
			return err
		}

		log.Printf("wrote word %#08x @ %#08x", uint32(val), uint32(addr))
	case cmd.String("byte") != "":
		val, err := strconv.ParseUint(cmd.String("byte"), 0, 8)

		if err != nil {
			return fmt.Errorf("invalid byte value: %v", err)
		}

		if err = d.WriteByte(uint32(addr), uint8(val)); err != nil {
			return err
		}

		log.Printf("wrote byte %#02x @ %#08x", uint8(val), uint32(addr))
	default:
		return errors.New("one of --word or --byte is required")
	}

	return image.Save(path, m.Bytes())
}

func eraseCommand() *cli.Command {
	return &cli.Command{
		Name:   "erase",
		Usage:  "create an image with the whole bank in the erased state",
		Flags:  []cli.Flag{imageFlag()},
		Action: runErase,
	}
}

func runErase(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("image")

	if err := image.Save(path, image.Erased()); err != nil {
		return err
	}

	log.Printf("erased image written to %s", path)

	return nil
}
