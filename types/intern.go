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

package types

import (
	"strings"
	"sync"

	"github.com/mitchellh/hashstructure"
)

// internTable interns canonical atom sets so that structurally-equal types
// share one *Type value: equality and hashing become pointer comparison.
// Read-mostly, write-on-first-construction, like a package-level registry.
type internTable struct {
	mu      sync.RWMutex
	buckets map[uint64][]*Type
}

var interned = &internTable{buckets: make(map[uint64][]*Type)}

func buildKey(atoms []*Atom) string {
	if len(atoms) == 0 {
		return "omega"
	}
	keys := make([]string, len(atoms))
	for i, a := range atoms {
		keys[i] = a.key
	}
	return strings.Join(keys, "&")
}

func structuralHash(key string) uint64 {
	h, err := hashstructure.Hash(key, nil)
	if err != nil {
		// hashstructure only fails on unsupported kinds; a string never does.
		panic(err)
	}
	return h
}

func allOmega(atoms []*Atom) bool {
	for _, a := range atoms {
		if !a.omega {
			return false
		}
	}
	return true
}

func sumSizes(atoms []*Atom) int {
	total := 0
	for _, a := range atoms {
		total += a.size
	}
	return total
}

// internAtoms canonicalizes, interns and returns the Type for the given
// atom set, computing and caching its organized form along the way.
func internAtoms(atoms []*Atom) *Type {
	atoms = sortDedupAtoms(atoms)
	key := buildKey(atoms)
	h := structuralHash(key)

	interned.mu.RLock()
	for _, cand := range interned.buckets[h] {
		if cand.key == key {
			interned.mu.RUnlock()
			return cand
		}
	}
	interned.mu.RUnlock()

	interned.mu.Lock()
	for _, cand := range interned.buckets[h] {
		if cand.key == key {
			interned.mu.Unlock()
			return cand
		}
	}
	t := &Type{
		atoms: atoms,
		key:   key,
		omega: allOmega(atoms),
		size:  sumSizes(atoms),
	}
	interned.buckets[h] = append(interned.buckets[h], t)
	interned.mu.Unlock()

	var orgAtoms []*Atom
	for _, a := range atoms {
		orgAtoms = append(orgAtoms, atomOrganized(a)...)
	}
	orgAtoms = sortDedupAtoms(orgAtoms)
	if buildKey(orgAtoms) == key {
		t.organized = t
	} else {
		t.organized = internAtoms(orgAtoms)
	}
	return t
}

// atomOrganized distributes intersection through a single atom, producing
// the path atoms whose intersection is equivalent to the atom alone.
func atomOrganized(a *Atom) []*Atom {
	switch a.kind {
	case ConstructorKind:
		if len(a.arg.atoms) <= 1 {
			return []*Atom{a}
		}
		var out []*Atom
		for _, p := range a.arg.organized.atoms {
			out = append(out, Constructor(a.name, internAtoms([]*Atom{p})).atoms[0])
		}
		return out
	case ArrowKind:
		switch len(a.target.atoms) {
		case 0:
			return nil
		case 1:
			return []*Atom{a}
		default:
			var out []*Atom
			for _, p := range a.target.organized.atoms {
				out = append(out, Arrow(a.source, internAtoms([]*Atom{p})).atoms[0])
			}
			return out
		}
	default:
		panic(ErrMalformedType.New(a))
	}
}
