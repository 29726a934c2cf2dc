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

// Package fcl is the top-level facade over the type algebra, taxonomy,
// inhabitation engine and term enumeration: a thin package that wires the
// others together, the way the teacher's root sqle package is a thin
// facade over its lower sql/... packages.
package fcl

import (
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/opencombinators/fcl/memo"
	"github.com/opencombinators/fcl/taxonomy"
	"github.com/opencombinators/fcl/types"
)

// Type re-exports, so callers of this package need not import the
// lower-level types package directly for the common constructors.
type Type = types.Type

var (
	Omega        = types.Omega
	Constructor  = types.Constructor
	Arrow        = types.Arrow
	Product      = types.Product
	Arrows       = types.Arrows
	Intersection = types.Intersection
)

// Subtypes is the taxonomy-backed subtyping relation.
type Subtypes = taxonomy.Subtypes

// NewSubtypes builds the reflexive-transitive closure of env and returns
// the resulting subtyping relation.
func NewSubtypes(env map[string][]string) *Subtypes {
	return taxonomy.New(env)
}

// FiniteCombinatoryLogic and Option are not re-exported under fcl-scoped
// names: a generic type alias (type X[T any] = other.X[T]) needs Go 1.24,
// which this module does not require, so callers that need the engine
// type by name import memo directly (NewFiniteCombinatoryLogic below
// returns *memo.FiniteCombinatoryLogic[C] without requiring that import
// for the common case of just building and querying an engine).

// WithLogger overrides the engine's default logger.
func WithLogger[C comparable](log logrus.FieldLogger) memo.Option[C] {
	return memo.WithLogger[C](log)
}

// WithTracer reports a span per top-level CheckSubtype call to tracer, in
// place of the default opentracing.NoopTracer{}.
func WithTracer[C comparable](tracer opentracing.Tracer) memo.Option[C] {
	return memo.WithTracer[C](tracer)
}

// NewFiniteCombinatoryLogic normalizes repo, builds its subtyping relation
// from env and decomposes every entry into its multi-arrow ladder.
func NewFiniteCombinatoryLogic[C comparable](repo map[C]*types.Type, env map[string][]string, opts ...memo.Option[C]) (*memo.FiniteCombinatoryLogic[C], error) {
	return memo.New(repo, env, opts...)
}
