// Code generated by hand. DO NOT EDIT.

package generated

import "fmt"

func generated() {
	x := 1
	var y = "s"
	fmt.Println(x, y)
}
