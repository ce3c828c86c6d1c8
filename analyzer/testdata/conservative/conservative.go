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

package conservative

import (
	"fmt"
	"sync"
)

func deferred() {
	msg := "done"
	defer func() {
		fmt.Println(msg)
	}()
}

func goroutine() {
	var wg sync.WaitGroup

	n := 3
	wg.Add(1)
	go func() {
		defer wg.Done()
		fmt.Println(n)
	}()
	wg.Wait()
}

func direct() {
	msg := "now" // want "Can be made constant"
	func() {
		fmt.Println(msg)
	}()
}

func deferredCall() {
	msg := "later" // want "Can be made constant"
	defer fmt.Println(msg)
}

func goroutineVar() {
	var wg sync.WaitGroup

	n := 4
	worker := func() {
		defer wg.Done()
		fmt.Println(n)
	}

	wg.Add(1)
	go worker()
	wg.Wait()
}
