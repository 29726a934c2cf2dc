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

// Package repository turns a combinator's type into the ladder of
// multi-arrows inhabitation searches over, and normalizes intersections of
// nullary constructors into synthetic tags.
package repository

import "github.com/opencombinators/fcl/types"

// MultiArrow represents ([sigma_1, ..., sigma_n], tau), i.e.
// sigma_1 -> ... -> sigma_n -> tau.
type MultiArrow struct {
	Args   []*types.Type
	Target *types.Type
}

// FunctionTypes presents ty as the ladder L0, L1, ... of 0-ary, 1-ary, ...
// multi-arrow views of ty, stopping once no further unary split exists.
func FunctionTypes(ty *types.Type) [][]MultiArrow {
	var ladder [][]MultiArrow
	current := []MultiArrow{{Target: ty}}
	for len(current) != 0 {
		ladder = append(ladder, current)
		var next []MultiArrow
		for _, m := range current {
			for _, split := range unarySplits(m.Target) {
				args := make([]*types.Type, len(m.Args), len(m.Args)+1)
				copy(args, m.Args)
				args = append(args, split.source)
				next = append(next, MultiArrow{Args: args, Target: split.target})
			}
		}
		current = next
	}
	return ladder
}

type unarySplit struct {
	source *types.Type
	target *types.Type
}

// unarySplits walks any intersection layer of ty, yielding each underlying
// arrow whose target is not omega-equivalent.
func unarySplits(ty *types.Type) []unarySplit {
	var out []unarySplit
	for _, a := range ty.Atoms() {
		if a.Kind() == types.ArrowKind && !a.Target().IsOmega() {
			out = append(out, unarySplit{source: a.Source(), target: a.Target()})
		}
	}
	return out
}
