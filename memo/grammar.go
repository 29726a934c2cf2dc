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

// Package memo builds and prunes the tree grammar of inhabitants: a search
// structure of alternatives keyed by goal type, the way sql/memo in the
// teacher builds a search structure of plan alternatives keyed by goal
// properties. Here the goals are types, not join orders.
package memo

import (
	"fmt"
	"strings"

	"github.com/opencombinators/fcl/types"
)

// Alternative is one way to inhabit a type: apply combinator to a list of
// argument types, each of which must itself be inhabited.
type Alternative[C comparable] struct {
	Combinator C
	Args       []*types.Type
}

// Grammar maps a target type to every alternative that inhabits it.
type Grammar[C comparable] map[*types.Type][]Alternative[C]

// String renders the grammar the way the teacher's show_grammar helper
// renders a query plan: one "lhs => alt; alt; ..." line per nonterminal.
func (g Grammar[C]) String() string {
	var b strings.Builder
	for target, alts := range g {
		fmt.Fprintf(&b, "%s =>", target)
		for i, alt := range alts {
			if i > 0 {
				b.WriteString(";")
			}
			fmt.Fprintf(&b, " %v(", alt.Combinator)
			for j, arg := range alt.Args {
				if j > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%s", arg)
			}
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return b.String()
}
