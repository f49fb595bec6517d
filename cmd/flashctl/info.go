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
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/embeddedsec/standalone-flash/api"
	"github.com/embeddedsec/standalone-flash/flash"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:   "info",
		Usage:  "print flash status and sector layout",
		Flags:  []cli.Flag{imageFlag()},
		Action: runInfo,
	}
}

func runInfo(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("image")

	d, _, err := openDevice(path)

	if err != nil {
		return err
	}

	s := &api.Status{
		Image:      path,
		Revision:   Revision,
		Origin:     flash.Origin,
		Size:       flash.TotalSize,
		Sectors:    len(flash.Layout),
		Protection: d.State().String(),
		Runtime:    fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}

	fmt.Println(s.Print())
	fmt.Println()

	color.New(color.Bold).Printf("%-8s %-23s %8s  %s\n", "sector", "range", "size", "role")

	for _, sec := range flash.Layout {
		fmt.Printf("%-8d 0x%08x-0x%08x %5d KiB  %s\n",
			sec.Index, sec.Start, sec.End()-1, sec.Length/1024, sec.Role)
	}

	return nil
}
