package convert_test

import (
	"fmt"

	"github.com/c360/semports/convert"
)

func ExampleFromString() {
	speed, err := convert.FromString[int]("55")
	if err != nil {
		fmt.Println(err)
		return
	}
	waypoints, _ := convert.FromString[[]float64]("1.5;2;3.25")
	fmt.Println(speed, waypoints)
	// Output: 55 [1.5 2 3.25]
}

func ExampleToStr() {
	text, _ := convert.ToStr([]int{1, 2, 3})
	fmt.Println(text)
	// Output: 1;2;3
}
