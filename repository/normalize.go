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

package repository

import (
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/opencombinators/fcl/types"
)

// ErrMalformedType signals a repository type containing an atom the
// normalizer does not recognize.
var ErrMalformedType = errors.NewKind("malformed type atom while normalizing repository entry %v: %v")

// TaxonomyEdges accumulates the supertype edges tag optimization must add
// to a taxonomy environment for substituted synthetic tags to preserve
// subtyping.
type TaxonomyEdges map[string][]string

func (e TaxonomyEdges) add(name, super string) {
	for _, existing := range e[name] {
		if existing == super {
			return
		}
	}
	e[name] = append(e[name], super)
}

// Normalize replaces every intersection of nullary constructors within ty
// by a single synthetic tag constructor, recording the taxonomy edges
// needed to preserve subtyping, per SPEC_FULL.md 4.2.
func Normalize(ty *types.Type, edges TaxonomyEdges) (*types.Type, error) {
	var simpleNames []string
	var complex []*types.Type

	for _, a := range ty.Atoms() {
		switch a.Kind() {
		case types.ConstructorKind:
			if a.Arg().IsOmega() {
				simpleNames = append(simpleNames, a.Name())
				continue
			}
			normArg, err := Normalize(a.Arg(), edges)
			if err != nil {
				return nil, err
			}
			complex = append(complex, types.Constructor(a.Name(), normArg))
		case types.ArrowKind:
			normSrc, err := Normalize(a.Source(), edges)
			if err != nil {
				return nil, err
			}
			normTgt, err := Normalize(a.Target(), edges)
			if err != nil {
				return nil, err
			}
			complex = append(complex, types.Arrow(normSrc, normTgt))
		default:
			return nil, ErrMalformedType.New(ty, a)
		}
	}

	if len(simpleNames) == 0 {
		return types.Intersection(complex...), nil
	}

	sort.Strings(simpleNames)
	simpleNames = dedupeStrings(simpleNames)
	if len(simpleNames) == 1 {
		complex = append(complex, types.Constructor(simpleNames[0], nil))
		return types.Intersection(complex...), nil
	}
	tagName := syntheticTagName(simpleNames)
	recordTagEdges(simpleNames, edges)
	complex = append(complex, types.Constructor(tagName, nil))
	return types.Intersection(complex...), nil
}

func syntheticTagName(names []string) string {
	return "__" + strings.Join(names, "_") + "__"
}

// recordTagEdges adds, for the full name set S: tag(S) <= tag(S') for every
// non-empty subset S' of S, and tag({n}) <= n for every original name n.
func recordTagEdges(names []string, edges TaxonomyEdges) {
	full := syntheticTagName(names)
	for _, subset := range nonEmptySubsets(names) {
		edges.add(full, syntheticTagName(subset))
	}
	for _, n := range names {
		edges.add(syntheticTagName([]string{n}), n)
	}
}

func nonEmptySubsets(names []string) [][]string {
	n := len(names)
	var out [][]string
	for mask := 1; mask < (1 << uint(n)); mask++ {
		var subset []string
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, names[i])
			}
		}
		out = append(out, subset)
	}
	return out
}

func dedupeStrings(sorted []string) []string {
	out := sorted[:0]
	var prev string
	first := true
	for _, s := range sorted {
		if first || s != prev {
			out = append(out, s)
			prev = s
			first = false
		}
	}
	return out
}

// NormalizeRepository normalizes every entry of repo, merging the recorded
// tag edges into env and returning the extended environment. Errors across
// every entry are aggregated rather than returned on the first failure, so
// a caller assembling a large, externally-built repository sees them all.
func NormalizeRepository[C comparable](repo map[C]*types.Type, env map[string][]string) (map[C]*types.Type, map[string][]string, error) {
	edges := make(TaxonomyEdges)
	normalized := make(map[C]*types.Type, len(repo))

	var errs *multierror.Error
	for c, ty := range repo {
		n, err := Normalize(ty, edges)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		normalized[c] = n
	}
	if errs != nil {
		return nil, nil, errs.ErrorOrNil()
	}

	mergedEnv := make(map[string][]string, len(env)+len(edges))
	for k, v := range env {
		mergedEnv[k] = append([]string{}, v...)
	}
	for tag, supers := range edges {
		mergedEnv[tag] = append(mergedEnv[tag], supers...)
	}
	return normalized, mergedEnv, nil
}
