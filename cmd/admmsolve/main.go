// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command admmsolve synthesizes one of a handful of example graph-form
// problems and runs the solver against it, reporting the termination
// status and final residuals. It is a driver for exercising the admm
// package end to end, not part of the solver's public API.
package main

import (
	"os"

	"github.com/cpmech/admm/admm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", false)
	scenario := io.ArgToString(1, "")

	io.PfWhite("\nadmmsolve -- graph-form ADMM example driver\n\n")
	io.Pf("%v\n", io.ArgsTable(
		"config file path", "fnamepath", fnamepath,
		"scenario override", "scenario", scenario,
	))

	cfg := readConfig(fnamepath)
	if scenario != "" {
		cfg.Scenario = scenario
	}

	data := buildScenario(cfg)

	status, err := admm.Solve(data)
	if err != nil {
		chk.Panic("solve failed: %v", err)
	}

	io.Pf("\nstatus = %v\n", status)
	if status != admm.Solved && status != admm.MaxIterReached {
		os.Exit(1)
	}
}
