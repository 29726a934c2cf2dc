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

// Package types implements the intersection-type algebra: constructors,
// arrows, products (as sugar), omega, and intersection, represented as
// canonical, interned, immutable sets of atoms.
package types

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/src-d/go-errors.v1"
)

// ErrMalformedType is returned when an operation encounters an atom shape
// it does not recognize. It signals an engine bug, not a user error.
var ErrMalformedType = errors.NewKind("malformed type atom: %v")

// Kind distinguishes the two atom shapes a Type can be built from.
type Kind int

const (
	// ConstructorKind is a nominal constructor applied to an argument type.
	ConstructorKind Kind = iota
	// ArrowKind is a function type from a source to a target type.
	ArrowKind
)

func (k Kind) String() string {
	switch k {
	case ConstructorKind:
		return "Constructor"
	case ArrowKind:
		return "Arrow"
	default:
		return "Unknown"
	}
}

// Atom is one member of the set a Type canonically represents. Atoms are
// immutable and always reachable through an interned, canonical Type.
type Atom struct {
	kind   Kind
	name   string
	arg    *Type
	source *Type
	target *Type
	key    string
	omega  bool
	size   int
}

// Kind reports whether the atom is a constructor or an arrow.
func (a *Atom) Kind() Kind { return a.kind }

// Name is the constructor name. Only meaningful when Kind() == ConstructorKind.
func (a *Atom) Name() string { return a.name }

// Arg is the constructor argument. Only meaningful when Kind() == ConstructorKind.
func (a *Atom) Arg() *Type { return a.arg }

// Source is the arrow source. Only meaningful when Kind() == ArrowKind.
func (a *Atom) Source() *Type { return a.source }

// Target is the arrow target. Only meaningful when Kind() == ArrowKind.
func (a *Atom) Target() *Type { return a.target }

// IsOmega reports whether this single atom is omega-equivalent in isolation
// (only possible for an arrow whose target is omega-equivalent).
func (a *Atom) IsOmega() bool { return a.omega }

func (a *Atom) String() string {
	switch a.kind {
	case ConstructorKind:
		if a.arg.IsOmega() {
			return a.name
		}
		return fmt.Sprintf("%s(%s)", a.name, a.arg)
	case ArrowKind:
		return fmt.Sprintf("(%s -> %s)", a.source, a.target)
	default:
		return "<malformed atom>"
	}
}

// Type is a canonical, immutable, interned intersection of atoms. The empty
// Type is omega; a one-atom Type is that atom; a multi-atom Type is their
// intersection. Two structurally-equal Types are the same *Type value.
type Type struct {
	atoms     []*Atom
	key       string
	omega     bool
	size      int
	organized *Type
}

// Atoms returns the canonical, sorted atoms of this type. The returned
// slice must not be mutated.
func (t *Type) Atoms() []*Atom { return t.atoms }

// IsOmega reports whether this type is omega-equivalent: the empty
// intersection, or an intersection of arrows all of whose targets are
// (recursively) omega-equivalent.
func (t *Type) IsOmega() bool { return t.omega }

// Size is the structural size of the type: the sum, over its atoms, of
// 1 + the sizes of each atom's children.
func (t *Type) Size() int { return t.size }

// Organized is the path decomposition of this type: a canonical Type whose
// atoms are atomic "paths" such that their intersection is equivalent,
// under subtyping, to the original type.
func (t *Type) Organized() *Type { return t.organized }

// PathTypes returns each path of Organized as its own singleton Type, ready
// to be used as a subtyping target.
func (t *Type) PathTypes() []*Type {
	org := t.organized
	out := make([]*Type, len(org.atoms))
	for i, a := range org.atoms {
		out[i] = internAtoms([]*Atom{a})
	}
	return out
}

// CanonicalKey is the canonical string key used for interning, ordering and
// downstream hashing; it uniquely identifies the type's structure.
func (t *Type) CanonicalKey() string { return t.key }

func (t *Type) String() string {
	if len(t.atoms) == 0 {
		return "omega"
	}
	parts := make([]string, len(t.atoms))
	for i, a := range t.atoms {
		parts[i] = a.String()
	}
	return strings.Join(parts, " & ")
}

// Omega is the top type: the empty intersection.
func Omega() *Type { return internAtoms(nil) }

// Constructor builds C(arg). A nil arg means the nullary constructor C.
func Constructor(name string, arg *Type) *Type {
	if arg == nil {
		arg = Omega()
	}
	a := &Atom{
		kind: ConstructorKind,
		name: name,
		arg:  arg,
		size: 1 + arg.size,
	}
	a.key = fmt.Sprintf("C:%s(%s)", name, arg.key)
	return internAtoms([]*Atom{a})
}

// Arrow builds source -> target.
func Arrow(source, target *Type) *Type {
	a := &Atom{
		kind:   ArrowKind,
		source: source,
		target: target,
		omega:  target.omega,
		size:   1 + source.size + target.size,
	}
	a.key = fmt.Sprintf("A:%s=>%s", source.key, target.key)
	return internAtoms([]*Atom{a})
}

// Product builds the sugared pair type: Constructor("Pi1", a) & Constructor("Pi2", b).
// A direct product atom is not represented separately: the two-constructor
// encoding already yields identical subtyping outcomes (see DESIGN.md).
func Product(a, b *Type) *Type {
	return Intersection(Constructor("Pi1", a), Constructor("Pi2", b))
}

// Arrows curries a sequence of source types onto a final target:
// Arrows([s1, s2], t) == Arrow(s1, Arrow(s2, t)).
func Arrows(sources []*Type, target *Type) *Type {
	result := target
	for i := len(sources) - 1; i >= 0; i-- {
		result = Arrow(sources[i], result)
	}
	return result
}

// Intersection builds the set-union of every operand's atoms, deduplicated
// and canonically ordered.
func Intersection(ts ...*Type) *Type {
	var atoms []*Atom
	for _, t := range ts {
		atoms = append(atoms, t.atoms...)
	}
	return internAtoms(atoms)
}

func sortDedupAtoms(atoms []*Atom) []*Atom {
	sort.Slice(atoms, func(i, j int) bool { return atoms[i].key < atoms[j].key })
	out := atoms[:0]
	var prevKey string
	first := true
	for _, a := range atoms {
		if first || a.key != prevKey {
			out = append(out, a)
			prevKey = a.key
			first = false
		}
	}
	return out
}
