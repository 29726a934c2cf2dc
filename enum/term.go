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

// Package enum walks a pruned inhabitation grammar to produce concrete
// term trees, lazily and in non-decreasing size order.
package enum

import (
	"fmt"
	"strings"
)

// Term is one concrete inhabitant: applying Combinator to Arguments, each
// itself a Term of the type the grammar alternative demanded.
type Term[C comparable] struct {
	Combinator C
	Arguments  []*Term[C]
	Size       int
}

// String renders a term as combinator(arg1, arg2, ...), or bare combinator
// for a nullary application.
func (t *Term[C]) String() string {
	if len(t.Arguments) == 0 {
		return fmt.Sprintf("%v", t.Combinator)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v(", t.Combinator)
	for i, a := range t.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString(")")
	return b.String()
}

func newTerm[C comparable](combinator C, args []*Term[C]) *Term[C] {
	size := 1
	for _, a := range args {
		size += a.Size
	}
	return &Term[C]{Combinator: combinator, Arguments: args, Size: size}
}

// InterpretTerm evaluates a term bottom-up: interpret resolves what a leaf
// combinator means, and combine folds a combinator's already-interpreted
// arguments into a result. This mirrors the spec's "combinator identifiers
// themselves are callables" contract without requiring C to be a function
// type: the caller supplies the two halves of "callable" explicitly.
func InterpretTerm[C comparable, V any](t *Term[C], interpret func(C) V, combine func(C, []V) V) V {
	if len(t.Arguments) == 0 {
		return interpret(t.Combinator)
	}
	values := make([]V, len(t.Arguments))
	for i, a := range t.Arguments {
		values[i] = InterpretTerm(a, interpret, combine)
	}
	return combine(t.Combinator, values)
}
