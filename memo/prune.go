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

package memo

import (
	"github.com/opencombinators/fcl/types"

	"github.com/opencombinators/fcl/internal/combinatorics"
)

// prune keeps only productive grammar rules: a target is productive iff
// some alternative's arguments are all themselves productive targets. The
// fixed point is computed by repeatedly partitioning candidate targets into
// newly-ground and still-pending, mirroring the teacher's memo-collapse
// passes that iterate analyzer rules to a fixed point.
func prune[C comparable](g Grammar[C]) {
	ground := make(map[*types.Type]bool)

	isGround := func(args []*types.Type) bool {
		for _, a := range args {
			if !ground[a] {
				return false
			}
		}
		return true
	}

	candidates := make([]*types.Type, 0, len(g))
	for target := range g {
		candidates = append(candidates, target)
	}

	for {
		newlyGround, pending := combinatorics.Partition(candidates, func(target *types.Type) bool {
			for _, alt := range g[target] {
				if isGround(alt.Args) {
					return true
				}
			}
			return false
		})
		if len(newlyGround) == 0 {
			break
		}
		for _, t := range newlyGround {
			ground[t] = true
		}
		candidates = pending
	}

	for target := range g {
		if !ground[target] {
			delete(g, target)
			continue
		}
		var kept []Alternative[C]
		for _, alt := range g[target] {
			if isGround(alt.Args) {
				kept = append(kept, alt)
			}
		}
		g[target] = kept
	}
}
