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

// Package taxonomy decides subtyping over a nominal constructor hierarchy.
package taxonomy

import (
	"github.com/opentracing/opentracing-go"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/opencombinators/fcl/types"
)

// ErrMalformedType mirrors types.ErrMalformedType for atoms that reach the
// subtyping engine in a shape it does not recognize.
var ErrMalformedType = errors.NewKind("malformed type atom in subtyping: %v")

// Subtypes decides sigma <= tau under the reflexive-transitive closure of a
// user-supplied taxonomy of nominal constructor names.
type Subtypes struct {
	closure map[string]map[string]bool
	tracer  opentracing.Tracer
}

// New builds a Subtypes relation from an environment mapping each
// constructor name to its set of immediate supertype names. The reflexive
// and transitive closures are computed eagerly.
func New(env map[string][]string) *Subtypes {
	return &Subtypes{
		closure: transitiveClosure(reflexiveClosure(env)),
		tracer:  opentracing.NoopTracer{},
	}
}

// WithTracer returns a copy of s that reports a span per top-level
// CheckSubtype call to the given tracer.
func (s *Subtypes) WithTracer(tracer opentracing.Tracer) *Subtypes {
	cp := *s
	cp.tracer = tracer
	return &cp
}

// isSupertype reports whether name2 is name1 or a recorded (transitive)
// supertype of name1. An unknown name has only itself as a supertype.
func (s *Subtypes) isSupertype(name1, name2 string) bool {
	if name1 == name2 {
		return true
	}
	supers, ok := s.closure[name1]
	if !ok {
		return false
	}
	return supers[name2]
}

// CheckSubtype decides whether subtype <= supertype.
func (s *Subtypes) CheckSubtype(subtype, supertype *types.Type) bool {
	span := s.tracer.StartSpan("fcl.CheckSubtype")
	defer span.Finish()
	return s.checkSubtypeRec(subtype, supertype)
}

func (s *Subtypes) checkSubtypeRec(subtype, supertype *types.Type) bool {
	if supertype.IsOmega() {
		return true
	}

	for _, sup := range supertype.Atoms() {
		switch sup.Kind() {
		case types.ConstructorKind:
			var args []*types.Type
			for _, sub := range subtype.Atoms() {
				if sub.Kind() == types.ConstructorKind && s.isSupertype(sub.Name(), sup.Name()) {
					args = append(args, sub.Arg())
				}
			}
			if len(args) == 0 {
				return false
			}
			if !s.checkSubtypeRec(types.Intersection(args...), sup.Arg()) {
				return false
			}

		case types.ArrowKind:
			var targets []*types.Type
			for _, sub := range subtype.Atoms() {
				if sub.Kind() == types.ArrowKind && s.checkSubtypeRec(sup.Source(), sub.Source()) {
					targets = append(targets, sub.Target())
				}
			}
			if len(targets) == 0 {
				return false
			}
			if !s.checkSubtypeRec(types.Intersection(targets...), sup.Target()) {
				return false
			}

		default:
			panic(ErrMalformedType.New(sup))
		}
	}
	return true
}

// Minimize removes dominated elements from a set of types, keeping only
// those not themselves a supertype of some other member (ties keep one
// representative).
func (s *Subtypes) Minimize(tys []*types.Type) []*types.Type {
	var result []*types.Type
	for _, ty := range tys {
		dominated := false
		for _, kept := range result {
			if s.CheckSubtype(kept, ty) {
				dominated = true
				break
			}
		}
		if dominated {
			continue
		}
		filtered := result[:0]
		for _, kept := range result {
			if !s.CheckSubtype(ty, kept) {
				filtered = append(filtered, kept)
			}
		}
		result = append(filtered, ty)
	}
	return result
}

func reflexiveClosure(env map[string][]string) map[string][]string {
	all := make(map[string]bool)
	for name, supers := range env {
		all[name] = true
		for _, s := range supers {
			all[s] = true
		}
	}
	result := make(map[string][]string, len(all))
	for name := range all {
		set := map[string]bool{name: true}
		for _, s := range env[name] {
			set[s] = true
		}
		for s := range set {
			result[name] = append(result[name], s)
		}
	}
	return result
}

func transitiveClosure(env map[string][]string) map[string]map[string]bool {
	result := make(map[string]map[string]bool, len(env))
	for name, supers := range env {
		set := make(map[string]bool, len(supers))
		for _, s := range supers {
			set[s] = true
		}
		result[name] = set
	}

	changed := true
	for changed {
		changed = false
		for _, supers := range result {
			for sup := range cloneSet(supers) {
				for transitive := range result[sup] {
					if !supers[transitive] {
						supers[transitive] = true
						changed = true
					}
				}
			}
		}
	}
	return result
}

func cloneSet(s map[string]bool) map[string]bool {
	out := make(map[string]bool, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
