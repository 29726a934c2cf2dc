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

package enum

import (
	"strconv"

	"github.com/cespare/xxhash"

	"github.com/opencombinators/fcl/memo"
	"github.com/opencombinators/fcl/types"
)

// sizeCache memoizes, per (nonterminal, size), every term of exactly that
// size derivable from the grammar. Recursion on size is strictly
// decreasing (a term of size n has children of size < n), so this cache
// never needs cycle detection: computing bucket n for a target only ever
// requests buckets < n, for that or other targets.
//
// Entries are keyed by an xxhash of the type's canonical representation
// plus size, the way a query engine hashes plan-node shapes for its own
// memo; a short slice per bucket resolves the (astronomically unlikely)
// hash collision by exact comparison.
type sizeCache[C comparable] struct {
	grammar memo.Grammar[C]
	buckets map[uint64][]sizeCacheEntry[C]
}

type sizeCacheEntry[C comparable] struct {
	target *types.Type
	size   int
	terms  []*Term[C]
}

func newSizeCache[C comparable](g memo.Grammar[C]) *sizeCache[C] {
	return &sizeCache[C]{grammar: g, buckets: make(map[uint64][]sizeCacheEntry[C])}
}

func cacheKey(target *types.Type, size int) uint64 {
	return xxhash.Sum64String(target.CanonicalKey() + "#" + strconv.Itoa(size))
}

func (c *sizeCache[C]) get(target *types.Type, size int) ([]*Term[C], bool) {
	for _, e := range c.buckets[cacheKey(target, size)] {
		if e.target == target && e.size == size {
			return e.terms, true
		}
	}
	return nil, false
}

func (c *sizeCache[C]) put(target *types.Type, size int, terms []*Term[C]) {
	key := cacheKey(target, size)
	c.buckets[key] = append(c.buckets[key], sizeCacheEntry[C]{target: target, size: size, terms: terms})
}

// termsOfSize returns every term of exactly size n inhabiting target,
// computing and memoizing it on first request. It implements the spec's
// size-bucketed dynamic program: a term of size n from alternative
// combinator(args...) decomposes n-1 across len(args) children, and the
// terms of size n for this alternative are the cross product, over every
// composition of n-1 into len(args) non-negative-but-at-least-one parts,
// of the children's own size buckets.
func (c *sizeCache[C]) termsOfSize(target *types.Type, n int) []*Term[C] {
	if n < 1 {
		return nil
	}
	if cached, ok := c.get(target, n); ok {
		return cached
	}

	var out []*Term[C]
	for _, alt := range c.grammar[target] {
		if len(alt.Args) == 0 {
			if n == 1 {
				out = append(out, newTerm[C](alt.Combinator, nil))
			}
			continue
		}
		for _, combo := range c.compositions(n-1, len(alt.Args)) {
			out = append(out, c.crossProduct(alt.Combinator, alt.Args, combo)...)
		}
	}

	c.put(target, n, out)
	return out
}

// compositions enumerates every way to write total as a sum of k strictly
// positive integers, in deterministic (lexicographic) order.
func (c *sizeCache[C]) compositions(total, k int) [][]int {
	if k == 0 {
		if total == 0 {
			return [][]int{{}}
		}
		return nil
	}
	if total < k {
		return nil
	}
	var out [][]int
	for first := 1; first <= total-(k-1); first++ {
		for _, rest := range c.compositions(total-first, k-1) {
			combo := make([]int, 0, k)
			combo = append(combo, first)
			combo = append(combo, rest...)
			out = append(out, combo)
		}
	}
	return out
}

// upperBound returns a hard ceiling on term sizes derivable for target, and
// whether such a ceiling exists. The reachable alternative graph restricted
// to target is either a DAG — in which case the longest derivation has a
// computable finite size, and enumeration can terminate cleanly once past
// it — or contains a cycle, meaning the inhabitant set may be infinite; the
// spec leaves exhausting an infinite set to the caller (via max_count or
// loop break), so no bound is reported in that case.
func (c *sizeCache[C]) upperBound(target *types.Type) (bound int, finite bool) {
	if _, ok := c.grammar[target]; !ok {
		return 0, true
	}

	reachable := map[*types.Type]bool{target: true}
	stack := []*types.Type{target}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, alt := range c.grammar[n] {
			for _, a := range alt.Args {
				if !reachable[a] {
					reachable[a] = true
					stack = append(stack, a)
				}
			}
		}
	}

	const (white = iota
		gray
		black
	)
	color := make(map[*types.Type]int, len(reachable))
	cyclic := false
	var visit func(n *types.Type)
	visit = func(n *types.Type) {
		if cyclic {
			return
		}
		color[n] = gray
		for _, alt := range c.grammar[n] {
			for _, a := range alt.Args {
				if !reachable[a] {
					continue
				}
				switch color[a] {
				case gray:
					cyclic = true
					return
				case white:
					visit(a)
					if cyclic {
						return
					}
				}
			}
		}
		color[n] = black
	}
	for n := range reachable {
		if color[n] == white {
			visit(n)
		}
		if cyclic {
			break
		}
	}
	if cyclic {
		return 0, false
	}

	maxSize := make(map[*types.Type]int, len(reachable))
	var compute func(n *types.Type) int
	compute = func(n *types.Type) int {
		if v, ok := maxSize[n]; ok {
			return v
		}
		best := 0
		for _, alt := range c.grammar[n] {
			total := 1
			for _, a := range alt.Args {
				total += compute(a)
			}
			if total > best {
				best = total
			}
		}
		maxSize[n] = best
		return best
	}
	return compute(target), true
}

// crossProduct builds every term combinator(t0, t1, ...) where ti ranges
// over the size-sizes[i] bucket of argTypes[i].
func (c *sizeCache[C]) crossProduct(combinator C, argTypes []*types.Type, sizes []int) []*Term[C] {
	choices := make([][]*Term[C], len(argTypes))
	for i, at := range argTypes {
		choices[i] = c.termsOfSize(at, sizes[i])
		if len(choices[i]) == 0 {
			return nil
		}
	}

	var out []*Term[C]
	acc := make([]*Term[C], len(choices))
	var build func(idx int)
	build = func(idx int) {
		if idx == len(choices) {
			args := make([]*Term[C], len(acc))
			copy(args, acc)
			out = append(out, newTerm[C](combinator, args))
			return
		}
		for _, t := range choices[idx] {
			acc[idx] = t
			build(idx + 1)
		}
	}
	build(0)
	return out
}
