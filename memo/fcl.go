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
	"fmt"
	"sort"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/opencombinators/fcl/internal/combinatorics"
	"github.com/opencombinators/fcl/repository"
	"github.com/opencombinators/fcl/taxonomy"
	"github.com/opencombinators/fcl/types"
)

// FiniteCombinatoryLogic is the inhabitation engine for a fixed repository
// and taxonomy: it decomposes each combinator's type into a multi-arrow
// ladder once, then answers Inhabit queries against it.
type FiniteCombinatoryLogic[C comparable] struct {
	ladders  map[C][][]repository.MultiArrow
	order    []C // combinators, sorted by their %v form for deterministic iteration
	subtypes *taxonomy.Subtypes
	log      logrus.FieldLogger
}

// Option configures a FiniteCombinatoryLogic at construction time.
type Option[C comparable] func(*FiniteCombinatoryLogic[C])

// WithLogger overrides the default logrus.StandardLogger().
func WithLogger[C comparable](log logrus.FieldLogger) Option[C] {
	return func(e *FiniteCombinatoryLogic[C]) { e.log = log }
}

// WithTracer reports a span per top-level Subtypes.CheckSubtype call to
// the given tracer, in place of the default opentracing.NoopTracer{}.
func WithTracer[C comparable](tracer opentracing.Tracer) Option[C] {
	return func(e *FiniteCombinatoryLogic[C]) { e.subtypes = e.subtypes.WithTracer(tracer) }
}

// New normalizes repo (tag-optimizing intersections of nullary
// constructors), extends env with the resulting taxonomy edges, builds the
// subtyping relation, and decomposes every normalized entry into its
// multi-arrow ladder.
func New[C comparable](repo map[C]*types.Type, env map[string][]string, opts ...Option[C]) (*FiniteCombinatoryLogic[C], error) {
	normalized, mergedEnv, err := repository.NormalizeRepository(repo, env)
	if err != nil {
		return nil, err
	}

	ladders := make(map[C][][]repository.MultiArrow, len(normalized))
	order := make([]C, 0, len(normalized))
	for c, ty := range normalized {
		ladders[c] = repository.FunctionTypes(ty)
		order = append(order, c)
	}
	sort.Slice(order, func(i, j int) bool {
		return fmt.Sprintf("%v", order[i]) < fmt.Sprintf("%v", order[j])
	})

	e := &FiniteCombinatoryLogic[C]{
		ladders:  ladders,
		order:    order,
		subtypes: taxonomy.New(mergedEnv),
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Inhabit builds the tree grammar of every term reachable from targets,
// pruned to productive rules.
func (e *FiniteCombinatoryLogic[C]) Inhabit(targets ...*types.Type) Grammar[C] {
	grammar := make(Grammar[C])
	seen := make(map[*types.Type]bool)
	queue := append([]*types.Type{}, targets...)

	for len(queue) > 0 {
		current := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if seen[current] {
			continue
		}
		seen[current] = true
		if current.IsOmega() {
			continue
		}

		e.log.WithField("target", current.String()).Debug("fcl: expanding worklist target")
		paths := current.PathTypes()

		for _, combinator := range e.order {
			for _, level := range e.ladders[combinator] {
				for _, args := range e.subqueries(level, paths) {
					grammar[current] = append(grammar[current], Alternative[C]{Combinator: combinator, Args: args})
					e.log.WithFields(logrus.Fields{
						"target":     current.String(),
						"combinator": combinator,
						"subquery":   len(args),
					}).Debug("fcl: recorded alternative")
					for i := len(args) - 1; i >= 0; i-- {
						queue = append(queue, args[i])
					}
				}
			}
		}
	}

	before := len(grammar)
	prune(grammar)
	e.log.WithFields(logrus.Fields{
		"targets_before_pruning": before,
		"targets_after_pruning":  len(grammar),
	}).Info("fcl: inhabitation grammar built")

	return grammar
}

// subqueries implements FCL's cover/intersect/maximal-filter pipeline for
// one arity level of one combinator against the current target's paths.
func (e *FiniteCombinatoryLogic[C]) subqueries(level []repository.MultiArrow, paths []*types.Type) [][]*types.Type {
	if len(level) == 0 {
		return nil
	}
	arity := len(level[0].Args)

	covers := combinatorics.MinimalCovers(level, paths, func(m repository.MultiArrow, p *types.Type) bool {
		return e.subtypes.CheckSubtype(m.Target, p)
	})
	if len(covers) == 0 {
		return nil
	}

	vectors := make([][]*types.Type, 0, len(covers))
	for _, cover := range covers {
		vec := make([]*types.Type, arity)
		for j := 0; j < arity; j++ {
			parts := make([]*types.Type, len(cover))
			for k, m := range cover {
				parts[k] = m.Args[j]
			}
			vec[j] = types.Intersection(parts...)
		}
		vectors = append(vectors, vec)
	}

	return combinatorics.MaximalElements(vectors, e.subtypes.CheckSubtype)
}
