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

package fcl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencombinators/fcl/enum"
	"github.com/opencombinators/fcl/fcl"
)

func TestScenarioE1(t *testing.T) {
	cA := fcl.Constructor("c", fcl.Constructor("A", nil))
	dB := fcl.Constructor("d", fcl.Constructor("B", nil))

	withTaxonomy := fcl.NewSubtypes(map[string][]string{"c": {"d"}, "A": {"B"}})
	require.True(t, withTaxonomy.CheckSubtype(cA, dB))

	empty := fcl.NewSubtypes(nil)
	require.False(t, empty.CheckSubtype(cA, dB))
}

func TestScenarioE2(t *testing.T) {
	sub := fcl.NewSubtypes(nil)
	a, b, c := fcl.Constructor("A", nil), fcl.Constructor("B", nil), fcl.Constructor("C", nil)
	lhs := fcl.Intersection(fcl.Constructor("c", a), fcl.Constructor("c", b))

	require.True(t, sub.CheckSubtype(lhs, fcl.Constructor("c", fcl.Intersection(a, b))))
	require.False(t, sub.CheckSubtype(lhs, fcl.Constructor("c", fcl.Intersection(a, c))))
}

func TestScenarioE3(t *testing.T) {
	sub := fcl.NewSubtypes(nil)
	a, b1, b2, b3 := fcl.Constructor("a", nil), fcl.Constructor("b1", nil), fcl.Constructor("b2", nil), fcl.Constructor("b3", nil)
	lhs := fcl.Intersection(fcl.Arrow(a, b1), fcl.Arrow(a, b2))

	require.True(t, sub.CheckSubtype(lhs, fcl.Arrow(a, fcl.Intersection(b1, b2))))
	require.False(t, sub.CheckSubtype(lhs, fcl.Arrow(a, fcl.Intersection(b1, b3))))
}

func TestScenarioE4(t *testing.T) {
	a1, a2 := fcl.Constructor("A1", nil), fcl.Constructor("A2", nil)
	b1, b2 := fcl.Constructor("B1", nil), fcl.Constructor("B2", nil)

	withTaxonomy := fcl.NewSubtypes(map[string][]string{"B1": {"A1"}, "A2": {"B2"}})
	require.True(t, withTaxonomy.CheckSubtype(fcl.Arrow(a1, a2), fcl.Arrow(b1, b2)))

	empty := fcl.NewSubtypes(nil)
	require.False(t, empty.CheckSubtype(fcl.Arrow(a1, a2), fcl.Arrow(b1, b2)))
}

func TestScenarioE5EndToEnd(t *testing.T) {
	a := fcl.Constructor("a", nil)
	b := fcl.Constructor("b", nil)
	repo := map[string]*fcl.Type{
		"K": fcl.Arrow(a, fcl.Arrow(b, a)),
		"I": fcl.Arrow(a, a),
	}

	engine, err := fcl.NewFiniteCombinatoryLogic(repo, nil)
	require.NoError(t, err)

	target := fcl.Arrow(a, a)
	grammar := engine.Inhabit(target)
	terms := enum.EnumerateTerms(target, grammar, 3)
	require.NotEmpty(t, terms)
	require.Equal(t, "I", terms[0].Combinator)
}

func TestScenarioE6EndToEnd(t *testing.T) {
	a := fcl.Constructor("A", nil)
	b := fcl.Constructor("B", nil)
	repo := map[string]*fcl.Type{
		"c": fcl.Constructor("c", fcl.Intersection(a, b)),
	}

	engine, err := fcl.NewFiniteCombinatoryLogic(repo, nil)
	require.NoError(t, err)

	grammar := engine.Inhabit(fcl.Constructor("c", a), fcl.Constructor("c", b))
	require.NotEmpty(t, grammar[fcl.Constructor("c", a)])
	require.NotEmpty(t, grammar[fcl.Constructor("c", b)])
}

func TestInhabitAndInterpret(t *testing.T) {
	a := fcl.Constructor("a", nil)
	repo := map[string]*fcl.Type{"I": fcl.Arrow(a, a)}
	engine, err := fcl.NewFiniteCombinatoryLogic(repo, nil)
	require.NoError(t, err)

	interpret := func(c string) string { return c }
	combine := func(c string, args []string) string {
		out := c + "("
		for i, arg := range args {
			if i > 0 {
				out += ", "
			}
			out += arg
		}
		return out + ")"
	}

	values := fcl.InhabitAndInterpretN(engine, fcl.Arrow(a, a), 1, interpret, combine)
	require.Equal(t, []string{"I"}, values)
}
