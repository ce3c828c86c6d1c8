// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package rewrite

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
)

// untypedDefault maps untyped constant kinds to the name of their default type.
var untypedDefault = map[types.BasicKind]string{
	types.UntypedBool:    "bool",
	types.UntypedInt:     "int",
	types.UntypedRune:    "rune",
	types.UntypedFloat:   "float64",
	types.UntypedComplex: "complex128",
	types.UntypedString:  "string",
}

// typeName returns the source text naming the type of a variable with initializer value at pos.
func (p Planner) typeName(t types.Type, value ast.Expr, pos token.Pos) (string, error) {
	if tv, ok := p.Info.Types[value]; ok {
		if b, ok := tv.Type.(*types.Basic); ok && b.Info()&types.IsUntyped != 0 {
			name, ok := untypedDefault[b.Kind()]
			if !ok {
				return "", fmt.Errorf("%w: untyped %s", ErrNotExpressible, b)
			}

			return p.universeName(name, pos)
		}
	}

	switch t := t.(type) {
	case *types.Basic:
		return p.universeName(t.Name(), pos)

	case *types.Alias:
		return p.objectName(t.Obj(), pos)

	case *types.Named:
		if t.TypeArgs().Len() > 0 {
			return "", fmt.Errorf("%w: instantiated type %s", ErrNotExpressible, t)
		}

		return p.objectName(t.Obj(), pos)

	default:
		return "", fmt.Errorf("%w: type %s", ErrNotExpressible, t)
	}
}

// universeName checks that a predeclared type name is not shadowed at pos.
func (p Planner) universeName(name string, pos token.Pos) (string, error) {
	obj := types.Universe.Lookup(name)
	if obj == nil {
		return "", fmt.Errorf("%w: unknown type %s", ErrNotExpressible, name)
	}

	if found := p.lookup(name, pos); found != nil && found != obj {
		return "", fmt.Errorf("%w: %s is shadowed", ErrNotExpressible, name)
	}

	return name, nil
}

// objectName returns the, possibly qualified, name referring to the type name obj at pos.
func (p Planner) objectName(obj *types.TypeName, pos token.Pos) (string, error) {
	switch pkg := obj.Pkg(); {
	case pkg == nil:
		return p.universeName(obj.Name(), pos)

	case pkg == p.Pkg:
		if p.lookup(obj.Name(), pos) != obj {
			return "", fmt.Errorf("%w: %s is not in scope", ErrNotExpressible, obj.Name())
		}

		return obj.Name(), nil

	case !obj.Exported():
		return "", fmt.Errorf("%w: %s is unexported", ErrNotExpressible, types.TypeString(obj.Type(), nil))

	default:
		qualifier, ok := p.importName(pkg, pos)
		if !ok {
			return "", fmt.Errorf("%w: package %s is not imported", ErrNotExpressible, pkg.Path())
		}

		if qualifier == "" { // dot import
			if p.lookup(obj.Name(), pos) != obj {
				return "", fmt.Errorf("%w: %s is shadowed", ErrNotExpressible, obj.Name())
			}

			return obj.Name(), nil
		}

		return qualifier + "." + obj.Name(), nil
	}
}

// importName returns the name under which the file imports pkg, empty for dot imports.
func (p Planner) importName(pkg *types.Package, pos token.Pos) (string, bool) {
	for _, spec := range p.File.Imports {
		pkgName := p.Info.PkgNameOf(spec)
		if pkgName == nil || pkgName.Imported() != pkg {
			continue
		}

		switch name := pkgName.Name(); name {
		case "_":
			continue

		case ".":
			return "", true

		default:
			if p.lookup(name, pos) != pkgName {
				continue // shadowed
			}

			return name, true
		}
	}

	return "", false
}

// lookup resolves name at pos the way the type checker does.
func (p Planner) lookup(name string, pos token.Pos) types.Object {
	scope := p.Pkg.Scope().Innermost(pos)
	if scope == nil {
		return types.Universe.Lookup(name)
	}

	_, obj := scope.LookupParent(name, pos)

	return obj
}
