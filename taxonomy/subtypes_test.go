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

package taxonomy_test

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/opencombinators/fcl/taxonomy"
	"github.com/opencombinators/fcl/types"
)

func TestReflexivity(t *testing.T) {
	g := gomega.NewWithT(t)
	sub := taxonomy.New(nil)

	for _, ty := range []*types.Type{
		types.Omega(),
		types.Constructor("A", nil),
		types.Arrow(types.Constructor("A", nil), types.Constructor("B", nil)),
	} {
		g.Expect(sub.CheckSubtype(ty, ty)).To(gomega.BeTrue(), "%s <= %s", ty, ty)
	}
}

func TestIdempotence(t *testing.T) {
	g := gomega.NewWithT(t)
	sub := taxonomy.New(nil)
	ty := types.Constructor("A", nil)
	self := types.Intersection(ty, ty)

	g.Expect(sub.CheckSubtype(ty, self)).To(gomega.BeTrue())
	g.Expect(sub.CheckSubtype(self, ty)).To(gomega.BeTrue())
}

func TestOmegaTop(t *testing.T) {
	g := gomega.NewWithT(t)
	sub := taxonomy.New(nil)
	ty := types.Constructor("A", nil)

	g.Expect(sub.CheckSubtype(ty, types.Omega())).To(gomega.BeTrue())
	g.Expect(sub.CheckSubtype(types.Omega(), ty)).To(gomega.BeFalse())
	g.Expect(sub.CheckSubtype(types.Omega(), types.Omega())).To(gomega.BeTrue())
}

func TestOmegaUnderArrow(t *testing.T) {
	g := gomega.NewWithT(t)
	sub := taxonomy.New(nil)
	ty := types.Constructor("A", nil)
	s := types.Constructor("S", nil)

	g.Expect(sub.CheckSubtype(ty, types.Arrow(s, types.Omega()))).To(gomega.BeTrue())
}

func TestConstructorCovariance(t *testing.T) {
	g := gomega.NewWithT(t)
	sub := taxonomy.New(map[string][]string{"C1": {"C2"}})

	a := types.Constructor("A", nil)
	b := types.Constructor("B", nil)

	g.Expect(sub.CheckSubtype(types.Constructor("C1", a), types.Constructor("C2", a))).To(gomega.BeTrue())
	g.Expect(sub.CheckSubtype(types.Constructor("C1", a), types.Constructor("C2", b))).To(gomega.BeFalse())
}

func TestArrowDistribution(t *testing.T) {
	g := gomega.NewWithT(t)
	sub := taxonomy.New(nil)
	s := types.Constructor("S", nil)
	t1 := types.Constructor("T1", nil)
	t2 := types.Constructor("T2", nil)

	lhs := types.Intersection(types.Arrow(s, t1), types.Arrow(s, t2))
	rhs := types.Arrow(s, types.Intersection(t1, t2))

	g.Expect(sub.CheckSubtype(lhs, rhs)).To(gomega.BeTrue())
	g.Expect(sub.CheckSubtype(rhs, lhs)).To(gomega.BeTrue())
}

func TestConstructorDistribution(t *testing.T) {
	g := gomega.NewWithT(t)
	sub := taxonomy.New(nil)
	a := types.Constructor("A", nil)
	b := types.Constructor("B", nil)

	lhs := types.Intersection(types.Constructor("C", a), types.Constructor("C", b))
	rhs := types.Constructor("C", types.Intersection(a, b))

	g.Expect(sub.CheckSubtype(lhs, rhs)).To(gomega.BeTrue())
}

func TestMinimizeDropsDominatedElements(t *testing.T) {
	g := gomega.NewWithT(t)
	sub := taxonomy.New(map[string][]string{"Dog": {"Animal"}})

	dog := types.Constructor("Dog", nil)
	animal := types.Constructor("Animal", nil)

	minimized := sub.Minimize([]*types.Type{dog, animal})
	g.Expect(minimized).To(gomega.HaveLen(1))
	g.Expect(minimized[0]).To(gomega.Equal(dog))
}

// E1: Taxonomy {c: {d}, A: {B}}; c(A) <= d(B) is true; with empty taxonomy,
// false.
func TestScenarioE1(t *testing.T) {
	g := gomega.NewWithT(t)

	withTaxonomy := taxonomy.New(map[string][]string{"c": {"d"}, "A": {"B"}})
	cA := types.Constructor("c", types.Constructor("A", nil))
	dB := types.Constructor("d", types.Constructor("B", nil))
	g.Expect(withTaxonomy.CheckSubtype(cA, dB)).To(gomega.BeTrue())

	empty := taxonomy.New(nil)
	g.Expect(empty.CheckSubtype(cA, dB)).To(gomega.BeFalse())
}

// E2: with empty taxonomy, c(A) & c(B) <= c(A & B) is true;
// c(A) & c(B) <= c(A & C) is false.
func TestScenarioE2(t *testing.T) {
	g := gomega.NewWithT(t)
	sub := taxonomy.New(nil)

	a := types.Constructor("A", nil)
	b := types.Constructor("B", nil)
	c := types.Constructor("C", nil)

	lhs := types.Intersection(types.Constructor("c", a), types.Constructor("c", b))
	g.Expect(sub.CheckSubtype(lhs, types.Constructor("c", types.Intersection(a, b)))).To(gomega.BeTrue())
	g.Expect(sub.CheckSubtype(lhs, types.Constructor("c", types.Intersection(a, c)))).To(gomega.BeFalse())
}

// E3: with empty taxonomy, (a -> b1) & (a -> b2) <= a -> (b1 & b2) is true;
// <= a -> (b1 & b3) is false.
func TestScenarioE3(t *testing.T) {
	g := gomega.NewWithT(t)
	sub := taxonomy.New(nil)

	a := types.Constructor("a", nil)
	b1 := types.Constructor("b1", nil)
	b2 := types.Constructor("b2", nil)
	b3 := types.Constructor("b3", nil)

	lhs := types.Intersection(types.Arrow(a, b1), types.Arrow(a, b2))
	g.Expect(sub.CheckSubtype(lhs, types.Arrow(a, types.Intersection(b1, b2)))).To(gomega.BeTrue())
	g.Expect(sub.CheckSubtype(lhs, types.Arrow(a, types.Intersection(b1, b3)))).To(gomega.BeFalse())
}

// E4: Taxonomy {B1: {A1}, A2: {B2}}: (A1 -> A2) <= (B1 -> B2) is true;
// with empty taxonomy, false.
func TestScenarioE4(t *testing.T) {
	g := gomega.NewWithT(t)

	withTaxonomy := taxonomy.New(map[string][]string{"B1": {"A1"}, "A2": {"B2"}})
	a1 := types.Constructor("A1", nil)
	a2 := types.Constructor("A2", nil)
	b1 := types.Constructor("B1", nil)
	b2 := types.Constructor("B2", nil)

	g.Expect(withTaxonomy.CheckSubtype(types.Arrow(a1, a2), types.Arrow(b1, b2))).To(gomega.BeTrue())

	empty := taxonomy.New(nil)
	g.Expect(empty.CheckSubtype(types.Arrow(a1, a2), types.Arrow(b1, b2))).To(gomega.BeFalse())
}

func TestUnknownConstructorIsOnlyItsOwnSupertype(t *testing.T) {
	g := gomega.NewWithT(t)
	sub := taxonomy.New(nil)

	unknown := types.Constructor("Mystery", nil)
	g.Expect(sub.CheckSubtype(unknown, unknown)).To(gomega.BeTrue())
	g.Expect(sub.CheckSubtype(unknown, types.Constructor("Other", nil))).To(gomega.BeFalse())
}
