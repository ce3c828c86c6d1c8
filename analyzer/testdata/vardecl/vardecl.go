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

package vardecl

import "fmt"

func mixed() {
	x := 1
	var y = 2 // want "Can be made constant"
	fmt.Println(x, y)
}

func grouped() {
	var ( // want "Can be made constant"
		a = 1.5
		b = 2
	)
	fmt.Println(a, b)
}
