// Copyright 2024 The FCL Authors.
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

// fcldemo is a convenience CLI that loads a combinator repository and
// taxonomy from a YAML fixture, builds the inhabitation engine, and
// prints the first few terms inhabiting the fixture's query type.
//
// Usage:
//
//	fcldemo -config fcldemo.toml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/opencombinators/fcl/enum"
	"github.com/opencombinators/fcl/fcl"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML run config (optional)")
	flag.Parse()

	cfg, err := loadRunConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fcldemo: loading run config:", err)
		os.Exit(1)
	}

	log := logrus.StandardLogger()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	repo, taxonomyEnv, query, err := loadFixture(cfg.Fixture)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fcldemo: loading fixture:", err)
		os.Exit(1)
	}

	engine, err := fcl.NewFiniteCombinatoryLogic(repo, taxonomyEnv, fcl.WithLogger[CombinatorID](log))
	if err != nil {
		fmt.Fprintln(os.Stderr, "fcldemo: building engine:", err)
		os.Exit(1)
	}

	grammar := engine.Inhabit(query)
	terms := enum.EnumerateTerms(query, grammar, cfg.MaxCount)

	fmt.Printf("query: %s\n", query)
	if len(terms) == 0 {
		fmt.Println("no inhabitants")
		return
	}
	for i, t := range terms {
		fmt.Printf("%d: %s (size %d)\n", i+1, t, t.Size)
	}
}
