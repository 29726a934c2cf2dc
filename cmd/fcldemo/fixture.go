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

package main

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"gopkg.in/yaml.v2"

	"github.com/opencombinators/fcl/types"
)

// CombinatorID is an opaque combinator identifier: a human label paired
// with a stable UUID, demonstrating that the engine treats combinator
// identifiers as fully opaque, comparable values, never inspecting their
// shape.
type CombinatorID struct {
	Label string
	UUID  uuid.UUID
}

func (c CombinatorID) String() string { return c.Label }

// fixture is the YAML input format: a named repository of type
// expressions plus a taxonomy (name -> immediate supertypes) and a query
// type to inhabit. It is the CLI's own input format, not something the
// engine packages parse.
type fixture struct {
	Combinators map[string]typeExpr `yaml:"combinators"`
	Taxonomy    map[string][]string `yaml:"taxonomy"`
	Query       typeExpr            `yaml:"query"`
}

// typeExpr is a tagged-union YAML encoding of types.Type: exactly one of
// its fields is populated per node, mirroring the algebra's closed shape
// set (omega, constructor, arrow, product, intersection).
type typeExpr struct {
	Omega        bool             `yaml:"omega,omitempty"`
	Constructor  *constructorExpr `yaml:"constructor,omitempty"`
	Arrow        *arrowExpr       `yaml:"arrow,omitempty"`
	Product      *productExpr     `yaml:"product,omitempty"`
	Intersection []typeExpr       `yaml:"intersection,omitempty"`
}

type constructorExpr struct {
	Name string    `yaml:"name"`
	Arg  *typeExpr `yaml:"arg,omitempty"`
}

type arrowExpr struct {
	Source typeExpr `yaml:"source"`
	Target typeExpr `yaml:"target"`
}

type productExpr struct {
	A typeExpr `yaml:"a"`
	B typeExpr `yaml:"b"`
}

func (e typeExpr) build() *types.Type {
	switch {
	case e.Constructor != nil:
		arg := types.Omega()
		if e.Constructor.Arg != nil {
			arg = e.Constructor.Arg.build()
		}
		return types.Constructor(e.Constructor.Name, arg)
	case e.Arrow != nil:
		return types.Arrow(e.Arrow.Source.build(), e.Arrow.Target.build())
	case e.Product != nil:
		return types.Product(e.Product.A.build(), e.Product.B.build())
	case len(e.Intersection) > 0:
		parts := make([]*types.Type, len(e.Intersection))
		for i, p := range e.Intersection {
			parts[i] = p.build()
		}
		return types.Intersection(parts...)
	default:
		return types.Omega()
	}
}

// loadFixture reads and parses a combinator/taxonomy/query fixture, and
// assigns each combinator a stable UUID-backed identifier in
// deterministic (label-sorted) order so repeated runs over the same file
// produce the same IDs.
func loadFixture(path string) (map[CombinatorID]*types.Type, map[string][]string, *types.Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, errors.Wrapf(err, "reading fixture %q", path)
	}
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, nil, errors.Wrapf(err, "parsing fixture %q", path)
	}

	labels := make([]string, 0, len(f.Combinators))
	for label := range f.Combinators {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	repo := make(map[CombinatorID]*types.Type, len(labels))
	for _, label := range labels {
		id := CombinatorID{Label: label, UUID: uuid.NewV5(uuid.NamespaceOID, label)}
		repo[id] = f.Combinators[label].build()
	}

	return repo, f.Taxonomy, f.Query.build(), nil
}
