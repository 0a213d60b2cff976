// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/cpmech/admm/admm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// runConfig is the on-disk JSON configuration for the example driver. The
// core admm.Solve entry point never touches encoding/json (spec section 6:
// no serialized wire format for the problem itself); this config only
// carries solver parameters and the scenario to synthesize in memory,
// mirroring how inp.ReadSim decodes a .sim file into a Simulation before
// any FEM solving starts.
type runConfig struct {
	Scenario string  `json:"scenario"` // "nnls" or "lasso"
	M        int     `json:"m"`
	N        int     `json:"n"`
	Seed     int64   `json:"seed"`
	Rho      float64 `json:"rho"`
	MaxIter  int     `json:"maxIter"`
	RelTol   float64 `json:"relTol"`
	AbsTol   float64 `json:"absTol"`
	Quiet    bool    `json:"quiet"`
}

// setDefault applies the library defaults (spec section 3) to any
// zero-valued field, the way inp.SolverData.SetDefault does before JSON
// decoding overwrites whatever the file specifies.
func (c *runConfig) setDefault() {
	if c.Scenario == "" {
		c.Scenario = "nnls"
	}
	if c.M == 0 {
		c.M = 1000
	}
	if c.N == 0 {
		c.N = 100
	}
	def := admm.DefaultParams()
	if c.Rho == 0 {
		c.Rho = def.Rho
	}
	if c.MaxIter == 0 {
		c.MaxIter = def.MaxIter
	}
	if c.RelTol == 0 {
		c.RelTol = def.RelTol
	}
	if c.AbsTol == 0 {
		c.AbsTol = def.AbsTol
	}
}

// readConfig reads and decodes a runConfig from a JSON file, applying
// defaults first so a partially specified file still produces a valid
// configuration.
func readConfig(path string) *runConfig {
	c := new(runConfig)
	c.setDefault()
	if path == "" {
		return c
	}
	b, err := io.ReadFile(path)
	if err != nil {
		chk.Panic("cannot read config file %q: %v", path, err)
	}
	if err := json.Unmarshal(b, c); err != nil {
		chk.Panic("cannot parse config file %q: %v", path, err)
	}
	return c
}
