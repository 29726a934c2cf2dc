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
	"io"

	"github.com/opencombinators/fcl/memo"
	"github.com/opencombinators/fcl/types"
)

// TermIter is a pull-based producer of terms inhabiting a fixed target, in
// non-decreasing size order. Advancing it performs bounded work per step,
// the way sql.RowIter advances one row at a time; Next returns io.EOF once
// the target's grammar bound (if finite) is exhausted.
type TermIter[C comparable] struct {
	cache   *sizeCache[C]
	target  *types.Type
	size    int
	bound   int
	finite  bool
	pending []*Term[C]
	idx     int
}

// EnumerateTermsIter returns a lazy, deterministic, size-ordered iterator
// of every term inhabiting target under g. It never materializes the full
// inhabitant set; callers cap consumption themselves (via EnumerateTerms'
// maxCount, or by simply stopping the loop), exactly as the spec's
// enumerate_terms_iter contract requires for potentially infinite sets.
func EnumerateTermsIter[C comparable](target *types.Type, g memo.Grammar[C]) *TermIter[C] {
	c := newSizeCache(g)
	bound, finite := c.upperBound(target)
	return &TermIter[C]{cache: c, target: target, size: 1, bound: bound, finite: finite}
}

// Next returns the next term in size order, or io.EOF once no further
// term exists (only possible when the reachable grammar is finite).
func (it *TermIter[C]) Next() (*Term[C], error) {
	for {
		if it.idx < len(it.pending) {
			t := it.pending[it.idx]
			it.idx++
			return t, nil
		}
		if it.finite && it.size > it.bound {
			return nil, io.EOF
		}
		it.pending = it.cache.termsOfSize(it.target, it.size)
		it.idx = 0
		it.size++
	}
}

// EnumerateTerms collects up to maxCount terms inhabiting target, in
// non-decreasing size order. maxCount must be positive; use
// EnumerateTermsIter directly for unbounded pull-based consumption.
func EnumerateTerms[C comparable](target *types.Type, g memo.Grammar[C], maxCount int) []*Term[C] {
	it := EnumerateTermsIter(target, g)
	out := make([]*Term[C], 0, maxCount)
	for len(out) < maxCount {
		t, err := it.Next()
		if err == io.EOF {
			break
		}
		out = append(out, t)
	}
	return out
}

// EnumerateTermsOfSize returns every term of exactly size n inhabiting
// target under g.
func EnumerateTermsOfSize[C comparable](target *types.Type, g memo.Grammar[C], n int) []*Term[C] {
	c := newSizeCache(g)
	return c.termsOfSize(target, n)
}
