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

package fcl

import (
	"io"

	"github.com/opencombinators/fcl/enum"
	"github.com/opencombinators/fcl/memo"
	"github.com/opencombinators/fcl/types"
)

// InterpretedIter lazily walks terms inhabiting a query type and
// interprets each as it is produced, without ever materializing the full
// (possibly infinite) term or value set. Go's lack of a generic type
// alias (pre-1.24) is why this wraps enum.TermIter instead of exposing it
// directly under a fcl-scoped name.
type InterpretedIter[C comparable, V any] struct {
	terms     *enum.TermIter[C]
	interpret func(C) V
	combine   func(C, []V) V
}

// Next returns the next interpreted value in size order, or io.EOF once
// the term iterator is exhausted.
func (it *InterpretedIter[C, V]) Next() (V, error) {
	var zero V
	t, err := it.terms.Next()
	if err != nil {
		return zero, err
	}
	return enum.InterpretTerm(t, it.interpret, it.combine), nil
}

// InhabitAndInterpret builds the pruned grammar for query against engine,
// then returns a lazy iterator of interpreted values for every term that
// inhabits it, in non-decreasing size order: the top-level "run the whole
// pipeline and evaluate" convenience the spec calls inhabit_and_interpret.
// interpret resolves a leaf combinator to a value; combine folds a
// non-leaf combinator's already-interpreted arguments into its value.
func InhabitAndInterpret[C comparable, V any](
	engine *memo.FiniteCombinatoryLogic[C],
	query *types.Type,
	interpret func(C) V,
	combine func(C, []V) V,
) *InterpretedIter[C, V] {
	grammar := engine.Inhabit(query)
	return &InterpretedIter[C, V]{
		terms:     enum.EnumerateTermsIter(query, grammar),
		interpret: interpret,
		combine:   combine,
	}
}

// InhabitAndInterpretN collects up to maxCount interpreted values the way
// the spec's optional max_count argument bounds an otherwise-infinite
// enumeration.
func InhabitAndInterpretN[C comparable, V any](
	engine *memo.FiniteCombinatoryLogic[C],
	query *types.Type,
	maxCount int,
	interpret func(C) V,
	combine func(C, []V) V,
) []V {
	it := InhabitAndInterpret(engine, query, interpret, combine)
	out := make([]V, 0, maxCount)
	for len(out) < maxCount {
		v, err := it.Next()
		if err == io.EOF {
			break
		}
		out = append(out, v)
	}
	return out
}
