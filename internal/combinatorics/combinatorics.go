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

// Package combinatorics holds the small set-combinatorics helpers the
// inhabitation engine needs: minimal covers, maximal elements and
// partitioning. It is private to the engine packages, the way the teacher
// keeps internal/regex and internal/similartext private helper packages.
package combinatorics

// MinimalCovers returns every inclusion-minimal subset of candidates whose
// targets jointly "cover" every element of paths, where covers(c, p)
// decides whether candidate c covers path p.
func MinimalCovers[C any, P any](candidates []C, paths []P, covers func(C, P) bool) [][]C {
	if len(paths) == 0 {
		return nil
	}

	coverage := make([]map[int]bool, len(candidates))
	var useful []int
	for i, c := range candidates {
		set := map[int]bool{}
		for j, p := range paths {
			if covers(c, p) {
				set[j] = true
			}
		}
		if len(set) > 0 {
			coverage[i] = set
			useful = append(useful, i)
		}
	}

	full := len(paths)
	var results [][]int

	var search func(idx int, remaining []int, uncovered map[int]bool, acc []int)
	search = func(idx int, remaining []int, uncovered map[int]bool, acc []int) {
		if len(uncovered) == 0 {
			picked := make([]int, len(acc))
			copy(picked, acc)
			results = append(results, picked)
			return
		}
		if idx >= len(remaining) {
			return
		}
		i := remaining[idx]
		if overlaps(coverage[i], uncovered) {
			picked := make([]int, len(acc), len(acc)+1)
			copy(picked, acc)
			picked = append(picked, i)
			search(idx+1, remaining, subtract(uncovered, coverage[i]), picked)
		}
		search(idx+1, remaining, uncovered, acc)
	}

	initialUncovered := make(map[int]bool, full)
	for j := 0; j < full; j++ {
		initialUncovered[j] = true
	}
	search(0, useful, initialUncovered, nil)

	minimal := make([][]int, 0, len(results))
	for _, r := range results {
		if isMinimal(r, results) {
			minimal = append(minimal, r)
		}
	}

	out := make([][]C, len(minimal))
	for i, r := range minimal {
		group := make([]C, len(r))
		for j, idx := range r {
			group[j] = candidates[idx]
		}
		out[i] = group
	}
	return out
}

func overlaps(set, other map[int]bool) bool {
	for j := range other {
		if set[j] {
			return true
		}
	}
	return false
}

func subtract(a, b map[int]bool) map[int]bool {
	out := make(map[int]bool, len(a))
	for j := range a {
		if !b[j] {
			out[j] = true
		}
	}
	return out
}

func isSubsetOf(a, b []int) bool {
	set := make(map[int]bool, len(b))
	for _, x := range b {
		set[x] = true
	}
	for _, x := range a {
		if !set[x] {
			return false
		}
	}
	return true
}

func isMinimal(candidate []int, all [][]int) bool {
	for _, other := range all {
		if len(other) < len(candidate) && isSubsetOf(other, candidate) {
			return false
		}
	}
	return true
}

// MaximalElements keeps the elements of vectors not pointwise-dominated by
// another: v is dominated by v' iff v'[j] <= v[j] for every component j
// (per leq). Among mutually-dominating (equivalent) vectors, one survives.
func MaximalElements[T any](vectors [][]T, leq func(a, b T) bool) [][]T {
	allLeq := func(v1, v2 []T) bool {
		for j := range v1 {
			if !leq(v1[j], v2[j]) {
				return false
			}
		}
		return true
	}

	var kept [][]T
	for _, v := range vectors {
		add := true
		next := kept[:0:0]
		for _, k := range kept {
			kDominatesV := allLeq(k, v)
			vDominatesK := allLeq(v, k)
			switch {
			case kDominatesV && vDominatesK:
				// equivalent: keep the existing representative.
				next = append(next, k)
				add = false
			case kDominatesV:
				next = append(next, k)
				add = false
			case vDominatesK:
				// v dominates k: drop k.
			default:
				next = append(next, k)
			}
		}
		kept = next
		if add {
			kept = append(kept, v)
		}
	}
	return kept
}

// Partition splits items into those satisfying pred and those that don't,
// preserving order.
func Partition[T any](items []T, pred func(T) bool) (yes, no []T) {
	for _, item := range items {
		if pred(item) {
			yes = append(yes, item)
		} else {
			no = append(no, item)
		}
	}
	return yes, no
}
