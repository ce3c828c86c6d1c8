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

package verify

import (
	"fmt"
	"go/types"
)

// importer resolves imports from the dependencies of an already type-checked package.
type importer map[string]*types.Package

func newImporter(pkg *types.Package) importer {
	imports := pkg.Imports()

	imp := make(importer, len(imports)+1)
	imp["unsafe"] = types.Unsafe

	for _, dep := range imports {
		imp[dep.Path()] = dep
	}

	return imp
}

func (imp importer) Import(path string) (*types.Package, error) {
	if pkg, ok := imp[path]; ok {
		return pkg, nil
	}

	return nil, fmt.Errorf("package %q not found in dependencies", path)
}
