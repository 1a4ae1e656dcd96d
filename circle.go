package textbook

import (
	"fmt"
	"math"
)

// Circle is a circle described by its radius.
type Circle struct {
	Radius float64
}

// Area returns π×r² for the circle's radius.
func (c Circle) Area() float64 {
	return CircleArea(c.Radius)
}

// CircleArea returns the area of a circle with the given radius.
func CircleArea(radius float64) float64 {
	return math.Pi * radius * radius
}

// FormatCircle renders the result line, both values fixed to two decimals.
func FormatCircle(radius, area float64) string {
	return fmt.Sprintf("The area of a circle with a radius %.2f is %.2f", radius, area)
}
