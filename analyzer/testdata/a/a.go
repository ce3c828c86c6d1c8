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

package a

import (
	"fmt"
	"time"
)

type Celsius float64

func (c *Celsius) Raise() {
	*c++
}

func (c Celsius) String() string {
	return fmt.Sprintf("%.1f°C", float64(c))
}

func shortDeclaration() {
	x := 5 // want "Can be made constant"
	fmt.Println(x)
}

func folded() {
	size := 4 * 1024 // want "Can be made constant"
	fmt.Println(size)
}

func varDeclaration() {
	var greeting = "hello, " + "world" // want "Can be made constant"
	fmt.Println(greeting)
}

func typedVar() {
	var ratio float32 = 0.5 // want "Can be made constant"
	fmt.Println(ratio)
}

func multipleNames() {
	lo, hi := 1, 10 // want "Can be made constant"
	fmt.Println(lo, hi)
}

func group() {
	var ( // want "Can be made constant"
		name = "gopher"
		age  = 13
	)
	fmt.Println(name, age)
}

func namedType() {
	limit := 5 * time.Second // want "Can be made constant"
	fmt.Println(limit)
}

func localType() {
	temp := Celsius(21.5) // want "Can be made constant"
	fmt.Println(temp)
}

func withComment() {
	// the answer
	answer := 42 // want "Can be made constant"
	fmt.Println(answer)
}

func closure() {
	f := func() {
		inner := "inner" // want "Can be made constant"
		fmt.Println(inner)
	}
	f()
}

func deferred() {
	msg := "done" // want "Can be made constant"
	defer func() {
		fmt.Println(msg)
	}()
}

func loop() {
	for i := 0; i < 3; i++ {
		step := 2 // want "Can be made constant"
		fmt.Println(i * step)
	}
}

func mixedTypes() {
	r, f := 'a', 1.5
	fmt.Println(r, f)
}

func reassigned() {
	x, y := 1, 2
	x = 5
	fmt.Println(x, y)
}

func incremented() {
	n := 0
	n++
	fmt.Println(n)
}

func addressTaken() {
	v := 3
	p := &v
	fmt.Println(*p)
}

func pointerMethod() {
	c := Celsius(20)
	c.Raise()
	fmt.Println(c)
}

func alreadyConstant() {
	const c = 1
	fmt.Println(c)
}

func nonConstant() {
	now := time.Now()
	fmt.Println(now)
}

func pair() (int, int) {
	return 1, 2
}

func tuple() {
	a, b := pair()
	fmt.Println(a, b)
}

func noInitializer() {
	var s string
	fmt.Println(s)
}

func interfaceType() {
	var e any = 1
	fmt.Println(e)
}

func overflow() {
	x := 300
	b := byte(x)
	fmt.Println(b)
}

func nolint() {
	x := 1 //nolint:makeconst
	fmt.Println(x)
}

//nolint:makeconst
func skipped() {
	x := 1
	fmt.Println(x)
}

var handler = func() {
	limit := 10 // want "Can be made constant"
	fmt.Println(limit)
}

var counter = func() func() int {
	n := 0

	return func() int {
		n++

		return n
	}
}()
